package comp

import "github.com/emberwm/ember/internal/wm"

// setInputFocus assigns keyboard focus to the given window under a fresh
// serial.
func (c *State) setInputFocus(win *wm.Window) {
	serial := c.nextSerial()
	c.seat.Keyboard().SetFocus(win, serial)
}

// setInputFocusAuto focuses the window under the current pointer location.
// Over empty desktop the focus is left as it is; it is never cleared
// implicitly.
func (c *State) setInputFocusAuto() {
	if under := c.surfaceUnder(); under != nil {
		c.setInputFocus(under.Window)
	}
}
