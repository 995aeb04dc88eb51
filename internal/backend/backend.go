// Package backend provides the sources of raw input events the compositor
// core consumes.
package backend

import (
	"fmt"
	"os"

	"github.com/emberwm/ember/internal/backend/evdev"
	"github.com/emberwm/ember/internal/backend/x11"
	"github.com/emberwm/ember/internal/cfg"
	"github.com/emberwm/ember/internal/input"
	"github.com/emberwm/ember/internal/log"
)

// Source produces raw input events. The error channel closing means the
// source has died for good.
type Source interface {
	Events() <-chan input.Event
	Errors() <-chan error
	Close()
}

// New creates the input source named by the profile. With "auto", the
// nested X11 source is used when a DISPLAY is available and evdev
// otherwise.
func New(conf *cfg.Profile) (Source, error) {
	backend := conf.Input.Backend
	if backend == "" || backend == "auto" {
		if _, ok := os.LookupEnv("DISPLAY"); ok {
			backend = "x11"
		} else {
			backend = "evdev"
		}
	}
	switch backend {
	case "x11":
		log.Info("Using nested X11 input backend.")
		return x11.NewSource()
	case "evdev":
		log.Info("Using evdev input backend.")
		return evdev.NewSource()
	default:
		return nil, fmt.Errorf("unknown input backend %q", backend)
	}
}
