// Package evdev implements an input source reading Linux evdev devices
// directly from /dev/input. Devices are picked up and dropped at runtime as
// they appear and disappear.
package evdev

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/emberwm/ember/internal/input"
	"github.com/emberwm/ember/internal/log"
	"github.com/fsnotify/fsnotify"
)

const (
	CHANNEL_SIZE       = 256
	ERROR_CHANNEL_SIZE = 8
)

const devInput = "/dev/input"

// Source is an input source backed by the kernel's evdev devices.
type Source struct {
	events  chan input.Event
	errors  chan error
	watcher *fsnotify.Watcher
	stop    chan struct{}

	mu      sync.Mutex
	devices map[string]*device
}

// NewSource opens every present evdev device and starts watching /dev/input
// for hotplug.
func NewSource() (*Source, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err = watcher.Add(devInput); err != nil {
		watcher.Close()
		return nil, err
	}

	s := &Source{
		events:  make(chan input.Event, CHANNEL_SIZE),
		errors:  make(chan error, ERROR_CHANNEL_SIZE),
		watcher: watcher,
		stop:    make(chan struct{}),
		devices: make(map[string]*device),
	}

	entries, err := os.ReadDir(devInput)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "event") {
			s.openDevice(filepath.Join(devInput, entry.Name()))
		}
	}

	go s.watch()
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

// Close stops the hotplug watcher and closes every open device.
func (s *Source) Close() {
	close(s.stop)
	s.watcher.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	for path, dev := range s.devices {
		dev.close()
		delete(s.devices, path)
	}
}

// openDevice opens an evdev device and starts a reader goroutine for it.
// Devices which report neither keys nor relative axes are skipped.
func (s *Source) openDevice(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.devices[path]; ok {
		return
	}
	dev, err := openDevice(path)
	if err != nil {
		// Permission errors are routine here (non-root runs); skip quietly.
		if !os.IsPermission(err) {
			log.Warn("Failed to open %s: %s", path, err)
		}
		return
	}
	if dev == nil {
		return
	}
	s.devices[path] = dev
	log.Info("Reading input device %s.", path)
	go s.readDevice(dev)
}

// closeDevice drops a device, if open.
func (s *Source) closeDevice(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dev, ok := s.devices[path]; ok {
		dev.close()
		delete(s.devices, path)
		log.Info("Dropped input device %s.", path)
	}
}

// readDevice pumps one device's event stream into the shared channel until
// the device goes away.
func (s *Source) readDevice(dev *device) {
	for {
		events, err := dev.next()
		if err != nil {
			select {
			case <-s.stop:
			default:
				s.closeDevice(dev.path)
			}
			return
		}
		for _, ev := range events {
			select {
			case s.events <- ev:
			case <-s.stop:
				return
			}
		}
	}
}

// watch reacts to devices appearing and disappearing under /dev/input.
func (s *Source) watch() {
	for {
		select {
		case <-s.stop:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasPrefix(filepath.Base(event.Name), "event") {
				continue
			}
			switch event.Op {
			case fsnotify.Create:
				s.openDevice(event.Name)
			case fsnotify.Remove:
				s.closeDevice(event.Name)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			select {
			case s.errors <- fmt.Errorf("watch %s: %w", devInput, err):
			case <-s.stop:
				return
			}
		}
	}
}
