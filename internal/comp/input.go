package comp

import (
	"errors"

	"github.com/emberwm/ember/internal/input"
	"github.com/emberwm/ember/internal/wm"
)

// ErrNoOutput is returned when an absolute motion event arrives with no
// bound output. Absolute positioning has no defined meaning without a
// reference output, so this is a setup bug rather than a runtime fault.
var ErrNoOutput = errors.New("no output bound to the workspaces")

// ProcessEvent drives the full pipeline for a single raw input event. The
// returned error, if any, is fatal.
func (c *State) ProcessEvent(ev input.Event) error {
	switch ev := ev.(type) {
	case input.KeyboardEvent:
		return c.onKeyboard(ev)
	case input.PointerMotionEvent:
		c.onPointerMotion(ev)
	case input.PointerMotionAbsoluteEvent:
		return c.onPointerMotionAbsolute(ev)
	case input.PointerButtonEvent:
		c.onPointerButton(ev)
	case input.PointerAxisEvent:
		c.onPointerAxis(ev)
	}
	return nil
}

// onKeyboard updates the modifier state, asks the interceptor whether the
// key triggers a keybind and otherwise forwards it to the focused client.
func (c *State) onKeyboard(ev input.KeyboardEvent) error {
	serial := c.nextSerial()
	c.mods.Update(ev.Code, ev.State)
	syms := input.Resolve(ev.Code)
	if action, ok := Decide(c.mods.Mods(), syms, c.conf.Keybinds, ev.State); ok {
		return c.HandleAction(action)
	}
	c.seat.Keyboard().Key(ev.Code, ev.State, serial, ev.Time)
	return nil
}

// onPointerMotion applies a relative motion delta. The new location is
// clamped, focus follows the pointer, and both an absolute and a relative
// motion notification go out.
func (c *State) onPointerMotion(ev input.PointerMotionEvent) {
	serial := c.nextSerial()
	delta := wm.Point{X: ev.DX, Y: ev.DY}
	c.pointerLoc = c.clampCoords(c.pointerLoc.Add(delta))

	under := c.surfaceUnder()
	c.setInputFocusAuto()

	ptr := c.seat.Pointer()
	ptr.Motion(under, c.pointerLoc, serial, ev.TimeMsec())
	ptr.RelativeMotion(
		under,
		delta,
		wm.Point{X: ev.DXUnaccel, Y: ev.DYUnaccel},
		ev.TimeUsec(),
	)
}

// onPointerMotionAbsolute maps a device-normalized position into the logical
// space using the primary output's geometry. Only an absolute motion
// notification goes out.
func (c *State) onPointerMotionAbsolute(ev input.PointerMotionAbsoluteEvent) error {
	outputs := c.workspaces.Outputs()
	if len(outputs) == 0 {
		return ErrNoOutput
	}
	geo := c.workspaces.OutputGeometry(outputs[0])
	pos := wm.Point{
		X: geo.X + ev.X*geo.W,
		Y: geo.Y + ev.Y*geo.H,
	}

	serial := c.nextSerial()
	c.pointerLoc = c.clampCoords(pos)

	under := c.surfaceUnder()
	c.setInputFocusAuto()

	c.seat.Pointer().Motion(under, c.pointerLoc, serial, ev.Time)
	return nil
}

// onPointerButton focuses the surface under the pointer before dispatching,
// so a click on an unfocused surface focuses it first.
func (c *State) onPointerButton(ev input.PointerButtonEvent) {
	serial := c.nextSerial()
	c.setInputFocusAuto()
	c.seat.Pointer().Button(ev.Button, ev.State, serial, ev.Time)
}

// onPointerAxis combines both axes' outcomes into one frame and dispatches
// it atomically.
func (c *State) onPointerAxis(ev input.PointerAxisEvent) {
	frame := AxisFrame{
		Time:       ev.Time,
		Source:     ev.Source,
		Horizontal: axisEntry(ev.Horizontal, ev.Source),
		Vertical:   axisEntry(ev.Vertical, ev.Source),
	}
	c.seat.Pointer().Axis(frame)
}

// surfaceUnder resolves the surface under the current pointer location. It
// is always computed fresh; caching a target here would risk delivering to a
// window that has since been closed.
func (c *State) surfaceUnder() *Target {
	win, loc, ok := c.workspaces.Current().WindowUnder(c.pointerLoc)
	if !ok {
		return nil
	}
	return &Target{Window: win, Loc: loc}
}
