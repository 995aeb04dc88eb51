package wm

// Point is a location in the logical coordinate space shared by all outputs.
type Point struct {
	X, Y float64
}

// Add returns the componentwise sum of the two points.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns the componentwise difference of the two points.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Rect is an axis-aligned rectangle in the logical coordinate space.
type Rect struct {
	X, Y, W, H float64
}

// Loc returns the top-left corner of the rectangle.
func (r Rect) Loc() Point {
	return Point{r.X, r.Y}
}

// Contains returns whether the point lies within the rectangle.
// The left and top edges are inclusive, the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
