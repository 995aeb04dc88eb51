// Package wm implements the workspace, window and output bookkeeping that
// the input core operates on.
package wm

// Output represents a single display output with a fixed place in the
// logical coordinate space.
type Output struct {
	name     string
	geometry Rect
}

// NewOutput creates an output with the given name and geometry.
func NewOutput(name string, geometry Rect) *Output {
	return &Output{name: name, geometry: geometry}
}

// Name returns the output's name.
func (o *Output) Name() string {
	return o.name
}

// Geometry returns the output's rectangle in the logical coordinate space.
func (o *Output) Geometry() Rect {
	return o.geometry
}

// Window represents a single mapped client window.
type Window struct {
	title   string
	rect    Rect
	onClose func()
}

// NewWindow creates a window with the given title and geometry.
func NewWindow(title string, rect Rect) *Window {
	return &Window{title: title, rect: rect}
}

// Title returns the window's title.
func (w *Window) Title() string {
	return w.title
}

// Rect returns the window's rectangle in the logical coordinate space.
func (w *Window) Rect() Rect {
	return w.rect
}

// SetRect moves and resizes the window.
func (w *Window) SetRect(rect Rect) {
	w.rect = rect
}

// OnClose sets the handler invoked when a close is requested. The protocol
// layer uses this to ask the owning client to close the window.
func (w *Window) OnClose(fn func()) {
	w.onClose = fn
}

// RequestClose asks the client owning the window to close it. The window is
// never destroyed forcibly; a client may ignore the request.
func (w *Window) RequestClose() {
	if w.onClose != nil {
		w.onClose()
	}
}

// Workspace holds an ordered set of windows. The window order is the
// stacking order, from bottom to top.
type Workspace struct {
	id      int
	windows []*Window
}

// Id returns the workspace id.
func (ws *Workspace) Id() int {
	return ws.id
}

// Windows returns the workspace's windows in stacking order, bottom first.
func (ws *Workspace) Windows() []*Window {
	return ws.windows
}

// Add inserts the window at the top of the stacking order. Adding a window
// that is already present raises it instead.
func (ws *Workspace) Add(win *Window) {
	ws.Remove(win)
	ws.windows = append(ws.windows, win)
}

// Remove takes the window out of the workspace, if present.
func (ws *Workspace) Remove(win *Window) {
	for i, w := range ws.windows {
		if w == win {
			ws.windows = append(ws.windows[:i], ws.windows[i+1:]...)
			return
		}
	}
}

// WindowUnder returns the topmost window containing the given point along
// with the point in window-local coordinates.
func (ws *Workspace) WindowUnder(p Point) (*Window, Point, bool) {
	for i := len(ws.windows) - 1; i >= 0; i-- {
		win := ws.windows[i]
		if win.Rect().Contains(p) {
			return win, p.Sub(win.Rect().Loc()), true
		}
	}
	return nil, Point{}, false
}

// Workspaces holds every workspace along with the outputs they are shown on.
// Exactly one workspace is active at any time.
type Workspaces struct {
	workspaces []*Workspace
	active     int
	outputs    []*Output
}

// NewWorkspaces creates the given number of empty workspaces. Workspace ids
// start at 1, matching how they are written in keybind configuration.
func NewWorkspaces(count int) *Workspaces {
	if count < 1 {
		count = 1
	}
	w := &Workspaces{}
	w.grow(count)
	return w
}

// grow ensures that workspaces up to the given id exist.
func (w *Workspaces) grow(id int) {
	for len(w.workspaces) < id {
		w.workspaces = append(w.workspaces, &Workspace{id: len(w.workspaces) + 1})
	}
}

// Current returns the active workspace.
func (w *Workspaces) Current() *Workspace {
	return w.workspaces[w.active]
}

// All returns every workspace in id order.
func (w *Workspaces) All() []*Workspace {
	return w.workspaces
}

// Get returns the workspace with the given id, creating it if necessary.
func (w *Workspaces) Get(id int) *Workspace {
	if id < 1 {
		id = 1
	}
	w.grow(id)
	return w.workspaces[id-1]
}

// Activate switches the view to the workspace with the given id, creating
// it if necessary.
func (w *Workspaces) Activate(id int) {
	if id < 1 {
		id = 1
	}
	w.grow(id)
	w.active = id - 1
}

// MoveWindowToWorkspace reassigns the window's workspace membership. The
// active workspace does not change.
func (w *Workspaces) MoveWindowToWorkspace(win *Window, id int) {
	for _, ws := range w.workspaces {
		ws.Remove(win)
	}
	w.Get(id).Add(win)
}

// AddOutput binds an output. The first output added is the primary output
// which constrains pointer motion.
func (w *Workspaces) AddOutput(o *Output) {
	w.outputs = append(w.outputs, o)
}

// Outputs returns the bound outputs, primary first.
func (w *Workspaces) Outputs() []*Output {
	return w.outputs
}

// OutputGeometry returns the rectangle the output occupies in the logical
// coordinate space.
func (w *Workspaces) OutputGeometry(o *Output) Rect {
	return o.Geometry()
}
