// Package x11 implements an input source for running ember nested inside an
// X session. A plain window is mapped and the key, button and motion events
// it receives are converted into raw input events.
package x11

import (
	"errors"

	"github.com/emberwm/ember/internal/input"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const (
	CHANNEL_SIZE       = 256
	ERROR_CHANNEL_SIZE = 8
)

// ErrDied is sent when the connection with the X server closes.
var ErrDied = errors.New("connection with X server closed")

// X keycodes are offset from evdev keycodes by 8.
const keycodeOffset = 8

// The events the nested window asks the X server for.
const eventMask uint32 = xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

// X core buttons mapped to linux BTN_* codes. Buttons 4-7 are the scroll
// buttons and are handled separately.
var buttonCodes = map[xproto.Button]uint32{
	1: input.BtnLeft,
	2: input.BtnMiddle,
	3: input.BtnRight,
	8: input.BtnBack,
	9: input.BtnForward,
}

// Source is an input source backed by a nested X window.
type Source struct {
	conn   *xgb.Conn
	win    xproto.Window
	width  uint16
	height uint16

	events chan input.Event
	errors chan error
	stop   chan struct{}
}

// NewSource connects to the X server, maps a window covering the screen and
// starts polling it for input.
func NewSource() (*Source, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)

	win, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		win,
		screen.Root,
		0, 0,
		screen.WidthInPixels, screen.HeightInPixels,
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwEventMask,
		[]uint32{eventMask},
	).Check()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err = xproto.MapWindowChecked(conn, win).Check(); err != nil {
		conn.Close()
		return nil, err
	}

	s := &Source{
		conn:   conn,
		win:    win,
		width:  screen.WidthInPixels,
		height: screen.HeightInPixels,
		events: make(chan input.Event, CHANNEL_SIZE),
		errors: make(chan error, ERROR_CHANNEL_SIZE),
		stop:   make(chan struct{}),
	}
	go s.poll()
	return s, nil
}

// Events implements backend.Source.
func (s *Source) Events() <-chan input.Event {
	return s.events
}

// Errors implements backend.Source.
func (s *Source) Errors() <-chan error {
	return s.errors
}

// Close stops polling and disconnects from the X server.
func (s *Source) Close() {
	close(s.stop)
	s.conn.Close()
}

// ScreenSize returns the size of the screen the nested window covers, in
// pixels. Used to size the primary output when none is configured.
func (s *Source) ScreenSize() (int, int) {
	return int(s.width), int(s.height)
}

// poll waits for X events and forwards the user inputs among them.
func (s *Source) poll() {
	defer close(s.events)
	defer close(s.errors)
	for {
		select {
		case <-s.stop:
			return
		default:
		}

		evt, err := s.conn.WaitForEvent()
		if evt == nil && err == nil {
			s.errors <- ErrDied
			return
		}
		if err != nil {
			s.errors <- err
			continue
		}

		switch evt := evt.(type) {
		case xproto.KeyPressEvent:
			s.events <- input.KeyboardEvent{
				Code:  uint32(evt.Detail) - keycodeOffset,
				State: input.StatePressed,
				Time:  uint32(evt.Time),
			}
		case xproto.KeyReleaseEvent:
			s.events <- input.KeyboardEvent{
				Code:  uint32(evt.Detail) - keycodeOffset,
				State: input.StateReleased,
				Time:  uint32(evt.Time),
			}
		case xproto.ButtonPressEvent:
			if ev, ok := s.convertButton(evt.Detail, input.StatePressed, evt.Time); ok {
				s.events <- ev
			}
		case xproto.ButtonReleaseEvent:
			// Wheel buttons produce one axis event per press; their
			// releases carry no information.
			if isWheelButton(evt.Detail) {
				continue
			}
			if ev, ok := s.convertButton(evt.Detail, input.StateReleased, evt.Time); ok {
				s.events <- ev
			}
		case xproto.MotionNotifyEvent:
			s.events <- input.PointerMotionAbsoluteEvent{
				X:    float64(evt.EventX) / float64(s.width),
				Y:    float64(evt.EventY) / float64(s.height),
				Time: uint32(evt.Time),
			}
		}
	}
}

// isWheelButton reports whether an X button is one of the scroll buttons.
func isWheelButton(button xproto.Button) bool {
	return button >= 4 && button <= 7
}

// convertButton turns an X button event into either a pointer button event
// or, for the scroll buttons 4-7, a discrete axis event.
func (s *Source) convertButton(button xproto.Button, state input.State, time xproto.Timestamp) (input.Event, bool) {
	if isWheelButton(button) {
		var h, v float64
		switch button {
		case 4:
			v = -1 // scroll up
		case 5:
			v = 1 // scroll down
		case 6:
			h = -1 // scroll left
		case 7:
			h = 1 // scroll right
		}
		ev := input.PointerAxisEvent{
			Source: input.SourceWheel,
			Time:   uint32(time),
		}
		if h != 0 {
			ev.Horizontal.Discrete = &h
		}
		if v != 0 {
			ev.Vertical.Discrete = &v
		}
		return ev, true
	}
	code, ok := buttonCodes[button]
	if !ok {
		return nil, false
	}
	return input.PointerButtonEvent{
		Button: code,
		State:  state,
		Time:   uint32(time),
	}, true
}
