// Package input defines the raw input events produced by backends and the
// keyboard state needed to interpret them.
package input

// State is the press state carried by keyboard and pointer button events.
type State int

const (
	StateReleased State = iota
	StatePressed
)

// String implements Stringer.
func (s State) String() string {
	if s == StatePressed {
		return "pressed"
	}
	return "released"
}

// AxisSource describes the kind of device a scroll event came from.
type AxisSource int

const (
	SourceWheel AxisSource = iota
	SourceFinger
	SourceContinuous
	SourceWheelTilt
)

// Event is a single raw input event. Events carry the millisecond timestamp
// reported by the device they came from.
type Event interface {
	TimeMsec() uint32
}

// KeyboardEvent is a single key press or release.
type KeyboardEvent struct {
	Code  uint32 // evdev keycode
	State State
	Time  uint32 // milliseconds
}

func (e KeyboardEvent) TimeMsec() uint32 {
	return e.Time
}

// PointerMotionEvent is a relative pointer motion, as produced by mice and
// other relative devices.
type PointerMotionEvent struct {
	DX, DY               float64 // accelerated delta
	DXUnaccel, DYUnaccel float64 // raw device delta
	Time                 uint64  // microseconds
}

func (e PointerMotionEvent) TimeMsec() uint32 {
	return uint32(e.Time / 1000)
}

// TimeUsec returns the event time in microseconds.
func (e PointerMotionEvent) TimeUsec() uint64 {
	return e.Time
}

// PointerMotionAbsoluteEvent is an absolute pointer position in
// device-normalized [0, 1] coordinates. Mapping it into the logical space
// requires a bound output.
type PointerMotionAbsoluteEvent struct {
	X, Y float64
	Time uint32 // milliseconds
}

func (e PointerMotionAbsoluteEvent) TimeMsec() uint32 {
	return e.Time
}

// PointerButtonEvent is a pointer button press or release.
type PointerButtonEvent struct {
	Button uint32 // linux BTN_* code
	State  State
	Time   uint32 // milliseconds
}

func (e PointerButtonEvent) TimeMsec() uint32 {
	return e.Time
}

// AxisValue is the scroll measurement for one axis. Devices report a
// continuous amount, a number of discrete steps, both, or neither.
type AxisValue struct {
	Amount   *float64 // continuous amount, if any
	Discrete *float64 // discrete steps, if any
}

// PointerAxisEvent is a scroll event covering both axes.
type PointerAxisEvent struct {
	Horizontal AxisValue
	Vertical   AxisValue
	Source     AxisSource
	Time       uint32 // milliseconds
}

func (e PointerAxisEvent) TimeMsec() uint32 {
	return e.Time
}
