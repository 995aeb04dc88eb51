package comp

import (
	"math"

	"github.com/emberwm/ember/internal/wm"
)

// ClampCoords keeps a pointer location inside the primary output. With no
// output bound the location is unconstrained. Secondary outputs do not
// constrain motion; multi-output spanning is not modeled.
func (c *State) ClampCoords(pos wm.Point) wm.Point {
	return c.clampCoords(pos)
}

func (c *State) clampCoords(pos wm.Point) wm.Point {
	outputs := c.workspaces.Outputs()
	if len(outputs) == 0 {
		return pos
	}
	geo := c.workspaces.OutputGeometry(outputs[0])
	return wm.Point{
		X: math.Min(math.Max(pos.X, 0), geo.W),
		Y: math.Min(math.Max(pos.Y, 0), geo.H),
	}
}
