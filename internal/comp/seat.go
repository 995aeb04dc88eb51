package comp

import (
	"github.com/emberwm/ember/internal/input"
	"github.com/emberwm/ember/internal/log"
	"github.com/emberwm/ember/internal/wm"
)

// Target is the surface a pointer notification is delivered to: the window
// under the pointer and the pointer location in window-local coordinates.
type Target struct {
	Window *wm.Window
	Loc    wm.Point
}

// Seat is the boundary to the protocol/session layer. It delivers normalized
// notifications to clients in order, keyed by serial. Implementations must
// not block; a stalled client is the protocol layer's problem.
type Seat interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Keyboard delivers key and focus notifications.
type Keyboard interface {
	// Key forwards a key event to the focused client unchanged.
	Key(code uint32, state input.State, serial uint32, timeMsec uint32)

	// SetFocus assigns keyboard focus. Stale focus requests are superseded
	// downstream by serial ordering.
	SetFocus(target *wm.Window, serial uint32)
}

// Pointer delivers motion, button and scroll notifications.
type Pointer interface {
	// Motion reports the absolute pointer location.
	Motion(target *Target, loc wm.Point, serial uint32, timeMsec uint32)

	// RelativeMotion reports the raw motion delta alongside Motion.
	RelativeMotion(target *Target, delta wm.Point, deltaUnaccel wm.Point, timeUsec uint64)

	// Button reports a button press or release.
	Button(button uint32, state input.State, serial uint32, timeMsec uint32)

	// Axis reports one scroll frame. The whole frame is delivered
	// atomically.
	Axis(frame AxisFrame)
}

// TraceSeat is a Seat which logs every delivery. It stands in for the
// session layer when ember runs without clients attached.
type TraceSeat struct {
	keyboard traceKeyboard
	pointer  tracePointer
}

// NewTraceSeat creates a TraceSeat.
func NewTraceSeat() *TraceSeat {
	return &TraceSeat{}
}

func (s *TraceSeat) Keyboard() Keyboard {
	return &s.keyboard
}

func (s *TraceSeat) Pointer() Pointer {
	return &s.pointer
}

type traceKeyboard struct{}

func (traceKeyboard) Key(code uint32, state input.State, serial uint32, timeMsec uint32) {
	log.Verbose("key: code=%d state=%s serial=%d time=%d", code, state, serial, timeMsec)
}

func (traceKeyboard) SetFocus(target *wm.Window, serial uint32) {
	title := "<none>"
	if target != nil {
		title = target.Title()
	}
	log.Verbose("focus: window=%q serial=%d", title, serial)
}

type tracePointer struct{}

func (tracePointer) Motion(target *Target, loc wm.Point, serial uint32, timeMsec uint32) {
	log.Verbose("motion: loc=(%.1f, %.1f) serial=%d time=%d", loc.X, loc.Y, serial, timeMsec)
}

func (tracePointer) RelativeMotion(target *Target, delta wm.Point, deltaUnaccel wm.Point, timeUsec uint64) {
	log.Verbose("relative motion: delta=(%.1f, %.1f) utime=%d", delta.X, delta.Y, timeUsec)
}

func (tracePointer) Button(button uint32, state input.State, serial uint32, timeMsec uint32) {
	log.Verbose("button: code=%#x state=%s serial=%d time=%d", button, state, serial, timeMsec)
}

func (tracePointer) Axis(frame AxisFrame) {
	log.Verbose("axis: h=%+v v=%+v source=%d time=%d",
		frame.Horizontal, frame.Vertical, frame.Source, frame.Time)
}
