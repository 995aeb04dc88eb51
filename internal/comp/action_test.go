package comp_test

import (
	"errors"
	"testing"
	"time"

	"github.com/emberwm/ember/internal/cfg"
	"github.com/emberwm/ember/internal/comp"
	"github.com/emberwm/ember/internal/input"
	"github.com/emberwm/ember/internal/wm"
)

func mustAction(t *testing.T, str string) cfg.Action {
	t.Helper()
	action, err := cfg.ParseAction(str)
	if err != nil {
		t.Fatal(err)
	}
	return action
}

func TestActionQuit(t *testing.T) {
	c, _ := newState(nil)
	if err := c.HandleAction(mustAction(t, "quit")); err != nil {
		t.Fatal(err)
	}

	// The event loop must notice the stop request and return cleanly.
	done := make(chan error, 1)
	go func() {
		done <- c.Run(make(chan input.Event), make(chan error))
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(time.Second):
		t.Fatal("event loop did not stop")
	}
}

func TestActionNotImplemented(t *testing.T) {
	c, _ := newState(nil)
	for _, str := range []string{"debug", "toggle_floating", "vt_switch(2)"} {
		err := c.HandleAction(mustAction(t, str))
		if !errors.Is(err, comp.ErrNotImplemented) {
			t.Fatalf("%s: got %v, want ErrNotImplemented", str, err)
		}
	}
}

func TestActionClose(t *testing.T) {
	c, _ := newState(nil)
	win := wm.NewWindow("w", wm.Rect{W: 100, H: 100})
	var closed int
	win.OnClose(func() { closed++ })
	c.Workspaces().Current().Add(win)

	if err := c.HandleAction(mustAction(t, "close")); err != nil {
		t.Fatal(err)
	}
	if closed != 1 {
		t.Fatalf("got %d close requests, want 1", closed)
	}
	// The window is asked, not destroyed.
	if got := len(c.Workspaces().Current().Windows()); got != 1 {
		t.Fatalf("got %d windows, want 1", got)
	}
}

func TestActionCloseEmptyDesktop(t *testing.T) {
	c, _ := newState(nil)
	if err := c.HandleAction(mustAction(t, "close")); err != nil {
		t.Fatal(err)
	}
}

func TestActionWorkspace(t *testing.T) {
	c, seat := newState(nil)
	win := wm.NewWindow("w", wm.Rect{W: 100, H: 100})
	c.Workspaces().Get(3).Add(win)

	if err := c.HandleAction(mustAction(t, "workspace(3)")); err != nil {
		t.Fatal(err)
	}
	if got := c.Workspaces().Current().Id(); got != 3 {
		t.Fatalf("got active workspace %d, want 3", got)
	}
	// The window now under the pointer picks up focus.
	focuses := seat.only("focus")
	if len(focuses) != 1 || focuses[0].window != win {
		t.Fatalf("got %d focus changes, want 1 onto the window", len(focuses))
	}
}

func TestActionMoveWindow(t *testing.T) {
	c, _ := newState(nil)
	win := wm.NewWindow("w", wm.Rect{W: 100, H: 100})
	c.Workspaces().Current().Add(win)

	if err := c.HandleAction(mustAction(t, "move_window(2)")); err != nil {
		t.Fatal(err)
	}
	if got := len(c.Workspaces().Get(1).Windows()); got != 0 {
		t.Fatal("window still on workspace 1")
	}
	if got := c.Workspaces().Get(2).Windows(); len(got) != 1 || got[0] != win {
		t.Fatal("window not on workspace 2")
	}
	// The view stays put.
	if got := c.Workspaces().Current().Id(); got != 1 {
		t.Fatalf("got active workspace %d, want 1", got)
	}
}

func TestActionMoveWindowEmptyDesktop(t *testing.T) {
	c, _ := newState(nil)
	if err := c.HandleAction(mustAction(t, "move_window(2)")); err != nil {
		t.Fatal(err)
	}
	if got := c.Workspaces().Current().Id(); got != 1 {
		t.Fatalf("got active workspace %d, want 1", got)
	}
}

func TestActionMoveAndSwitch(t *testing.T) {
	c, _ := newState(nil)
	win := wm.NewWindow("w", wm.Rect{W: 100, H: 100})
	c.Workspaces().Current().Add(win)

	if err := c.HandleAction(mustAction(t, "move_and_switch(2)")); err != nil {
		t.Fatal(err)
	}

	// Equivalent to move_window(2) followed by workspace(2).
	want, _ := newState(nil)
	want.Workspaces().Current().Add(win)
	if err := want.HandleAction(mustAction(t, "move_window(2)")); err != nil {
		t.Fatal(err)
	}
	if err := want.HandleAction(mustAction(t, "workspace(2)")); err != nil {
		t.Fatal(err)
	}

	if got := c.Workspaces().Current().Id(); got != want.Workspaces().Current().Id() {
		t.Fatalf("got active workspace %d, want %d", got, want.Workspaces().Current().Id())
	}
	for _, ws := range want.Workspaces().All() {
		if got := len(c.Workspaces().Get(ws.Id()).Windows()); got != len(ws.Windows()) {
			t.Fatalf("workspace %d: got %d windows, want %d", ws.Id(), got, len(ws.Windows()))
		}
	}
}

func TestActionSpawnFailure(t *testing.T) {
	restore := comp.SetShellPath(t.TempDir() + "/noshell")
	defer restore()

	c, seat := newState(nil)
	before := c.Serial()
	if err := c.HandleAction(mustAction(t, "spawn(true)")); err != nil {
		t.Fatal(err)
	}
	// A failed launch changes nothing.
	if c.Serial() != before {
		t.Fatalf("got serial %d, want %d", c.Serial(), before)
	}
	if len(seat.calls) != 0 {
		t.Fatalf("got %d notifications, want 0", len(seat.calls))
	}
}
