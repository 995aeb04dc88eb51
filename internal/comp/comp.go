// Package comp implements the compositor core: it normalizes raw input
// events into protocol notifications for the focused client, intercepts
// configured key combinations and executes the bound actions.
package comp

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emberwm/ember/internal/cfg"
	"github.com/emberwm/ember/internal/input"
	"github.com/emberwm/ember/internal/log"
	"github.com/emberwm/ember/internal/wm"
)

// State owns every piece of mutable compositor state the input pipeline
// touches: the pointer location, the keyboard modifier state and the serial
// counter. It is driven by a single goroutine; nothing here locks.
type State struct {
	conf       *cfg.Profile
	seat       Seat
	workspaces *wm.Workspaces

	pointerLoc wm.Point
	mods       *input.ModifierState
	serial     uint32

	stop    chan struct{}
	stopped bool
}

// New creates the compositor state. The pointer starts at the logical
// origin.
func New(conf *cfg.Profile, seat Seat, workspaces *wm.Workspaces) *State {
	return &State{
		conf:       conf,
		seat:       seat,
		workspaces: workspaces,
		mods:       input.NewModifierState(),
		stop:       make(chan struct{}),
	}
}

// nextSerial issues the next protocol serial. Clients use serial ordering to
// resolve which of several in-flight requests is current, so serials must be
// issued in dispatch order; the single event-loop goroutine guarantees that.
func (c *State) nextSerial() uint32 {
	c.serial += 1
	return c.serial
}

// Serial returns the last issued serial.
func (c *State) Serial() uint32 {
	return c.serial
}

// PointerLocation returns the current pointer location in the logical
// coordinate space.
func (c *State) PointerLocation() wm.Point {
	return c.pointerLoc
}

// Workspaces returns the workspace collaborator.
func (c *State) Workspaces() *wm.Workspaces {
	return c.workspaces
}

// requestStop asks the event loop to terminate.
func (c *State) requestStop() {
	if !c.stopped {
		c.stopped = true
		close(c.stop)
	}
}

// Run drives the pipeline until the event source dies, a fatal condition is
// hit, a quit action runs or a termination signal arrives. Every event is
// processed to completion before the next is drawn. SIGUSR1 dumps the
// compositor state to the log.
func (c *State) Run(events <-chan input.Event, errs <-chan error) error {
	signals := make(chan os.Signal, 8)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(signals)

	for {
		select {
		case <-c.stop:
			log.Info("Quit requested.")
			return nil
		case sig := <-signals:
			switch sig {
			case syscall.SIGINT, syscall.SIGTERM:
				log.Info("Shutting down.")
				return nil
			case syscall.SIGUSR1:
				c.dumpState()
			}
		case err, ok := <-errs:
			if !ok {
				return fmt.Errorf("input source died")
			}
			log.Error("Input error: %s", err)
		case ev := <-events:
			if err := c.ProcessEvent(ev); err != nil {
				return err
			}
		}
	}
}
