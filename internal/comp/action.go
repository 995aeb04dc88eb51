package comp

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/emberwm/ember/internal/cfg"
	"github.com/emberwm/ember/internal/log"
)

// ErrNotImplemented is returned when a keybind invokes an action that is an
// acknowledged gap. The caller decides what to do with it; the event loop
// treats it as fatal.
var ErrNotImplemented = errors.New("action not implemented")

// Actions compose through the same dispatch entry point, so a depth cap
// guards against a cyclic configuration ever becoming expressible.
const maxActionDepth = 4

// The shell used to launch spawn commands.
var shellPath = "/bin/sh"

// HandleAction executes a single keybind action. Execution is synchronous
// and never suspends; spawned processes are fire-and-forget.
func (c *State) HandleAction(action cfg.Action) error {
	return c.executeAction(action, 0)
}

func (c *State) executeAction(action cfg.Action, depth int) error {
	if depth >= maxActionDepth {
		log.Error("Action %q nested too deeply, ignoring.", action)
		return nil
	}
	switch action.Type {
	case cfg.ActionQuit:
		c.requestStop()
	case cfg.ActionDebug, cfg.ActionToggleFloating, cfg.ActionVTSwitch:
		return fmt.Errorf("%w: %s", ErrNotImplemented, action)
	case cfg.ActionClose:
		// No window under the pointer is a normal no-op.
		if win, _, ok := c.workspaces.Current().WindowUnder(c.pointerLoc); ok {
			win.RequestClose()
		}
	case cfg.ActionWorkspace:
		c.workspaces.Activate(action.ID)
		c.setInputFocusAuto()
	case cfg.ActionMoveWindow:
		if win, _, ok := c.workspaces.Current().WindowUnder(c.pointerLoc); ok {
			c.workspaces.MoveWindowToWorkspace(win, action.ID)
		}
	case cfg.ActionMoveAndSwitch:
		if err := c.executeAction(cfg.Action{Type: cfg.ActionMoveWindow, ID: action.ID}, depth+1); err != nil {
			return err
		}
		return c.executeAction(cfg.Action{Type: cfg.ActionWorkspace, ID: action.ID}, depth+1)
	case cfg.ActionSpawn:
		c.spawn(action.Command)
	}
	return nil
}

// spawn launches a command through the shell. The process lifetime is
// untracked: no join, no cancellation. Failure to launch is logged and
// otherwise ignored.
func (c *State) spawn(command string) {
	cmd := exec.Command(shellPath, "-c", command)
	if err := cmd.Start(); err != nil {
		log.Error("Failed to spawn %q: %s", command, err)
		return
	}
	go func() {
		_ = cmd.Wait()
	}()
}
