package evdev

import (
	"encoding/binary"
	"os"
	"unsafe"

	"github.com/emberwm/ember/internal/input"
	"golang.org/x/sys/unix"
)

// Event types
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
)

// SYN codes
const synReport = 0x00

// REL axes
const (
	relX           = 0x00
	relY           = 0x01
	relHWheel      = 0x06
	relWheel       = 0x08
	relWheelHiRes  = 0x0b
	relHWheelHiRes = 0x0c
)

// Key repeat value for EV_KEY events.
const keyRepeat = 2

// Pointer buttons occupy this code range.
const (
	btnRangeLow  = 0x110 // BTN_LEFT
	btnRangeHigh = 0x117 // BTN_TASK
)

// One hi-res wheel notch is 1/120th of a click; a click is worth 15 units
// of continuous scroll.
const (
	hiResNotch    = 120.0
	amountPerStep = 15.0
)

// The size of struct input_event with 64-bit timevals.
const eventSize = 24

// ioctl request encoding (the kernel's _IOC macro).
const (
	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	iocRead = 2
)

// evioCGBit builds the EVIOCGBIT(ev, len) ioctl request, which reads the
// bitmask of event codes a device supports.
func evioCGBit(ev uint32, size uint32) uintptr {
	return uintptr(iocRead<<iocDirShift |
		uint32('E')<<iocTypeShift |
		(0x20+ev)<<iocNRShift |
		size<<iocSizeShift)
}

// device is a single open evdev device along with the state of its current
// event frame. Relative motion and scrolling accumulate between SYN_REPORT
// markers and flush as one event each.
type device struct {
	path string
	file *os.File

	dx, dy    float64
	vSteps    float64
	hSteps    float64
	vAmount   float64
	hAmount   float64
	sawSteps  bool
	sawAmount bool
	buf       []byte
	pending   []input.Event
}

// openDevice opens an evdev device node. Devices which support neither keys
// nor relative axes (e.g. switches, accelerometers) return nil.
func openDevice(path string) (*device, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var types [4]byte // bitmask of supported event types
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		file.Fd(),
		evioCGBit(0, uint32(unsafe.Sizeof(types))),
		uintptr(unsafe.Pointer(&types)),
	)
	if errno != 0 {
		file.Close()
		return nil, errno
	}
	hasKeys := types[evKey/8]&(1<<(evKey%8)) != 0
	hasRel := types[evRel/8]&(1<<(evRel%8)) != 0
	if !hasKeys && !hasRel {
		file.Close()
		return nil, nil
	}
	return &device{
		path: path,
		file: file,
		buf:  make([]byte, eventSize*64),
	}, nil
}

// close closes the device node, unblocking the reader goroutine.
func (d *device) close() {
	_ = d.file.Close()
}

// next blocks until the device produces at least one raw input event.
func (d *device) next() ([]input.Event, error) {
	for {
		n, err := d.file.Read(d.buf)
		if err != nil {
			return nil, err
		}
		d.pending = d.pending[:0]
		for off := 0; off+eventSize <= n; off += eventSize {
			d.decode(d.buf[off : off+eventSize])
		}
		if len(d.pending) > 0 {
			return d.pending, nil
		}
	}
}

// decode handles a single struct input_event.
func (d *device) decode(b []byte) {
	sec := int64(binary.LittleEndian.Uint64(b[0:8]))
	usec := int64(binary.LittleEndian.Uint64(b[8:16]))
	typ := binary.LittleEndian.Uint16(b[16:18])
	code := binary.LittleEndian.Uint16(b[18:20])
	value := int32(binary.LittleEndian.Uint32(b[20:24]))

	timeMsec := uint32(sec*1000 + usec/1000)
	timeUsec := uint64(sec)*1_000_000 + uint64(usec)

	switch typ {
	case evKey:
		if value == keyRepeat {
			return
		}
		state := input.StateReleased
		if value != 0 {
			state = input.StatePressed
		}
		if code >= btnRangeLow && code <= btnRangeHigh {
			d.pending = append(d.pending, input.PointerButtonEvent{
				Button: uint32(code),
				State:  state,
				Time:   timeMsec,
			})
		} else {
			d.pending = append(d.pending, input.KeyboardEvent{
				Code:  uint32(code),
				State: state,
				Time:  timeMsec,
			})
		}
	case evRel:
		switch code {
		case relX:
			d.dx += float64(value)
		case relY:
			d.dy += float64(value)
		case relWheel:
			// The kernel's wheel axis points away from the user; protocol
			// scroll values point the other way.
			d.vSteps -= float64(value)
			d.sawSteps = true
		case relHWheel:
			d.hSteps += float64(value)
			d.sawSteps = true
		case relWheelHiRes:
			d.vAmount -= float64(value) / hiResNotch * amountPerStep
			d.sawAmount = true
		case relHWheelHiRes:
			d.hAmount += float64(value) / hiResNotch * amountPerStep
			d.sawAmount = true
		}
	case evSyn:
		if code == synReport {
			d.flush(timeMsec, timeUsec)
		}
	}
}

// flush emits the accumulated frame state as raw input events.
func (d *device) flush(timeMsec uint32, timeUsec uint64) {
	if d.dx != 0 || d.dy != 0 {
		d.pending = append(d.pending, input.PointerMotionEvent{
			DX:        d.dx,
			DY:        d.dy,
			DXUnaccel: d.dx,
			DYUnaccel: d.dy,
			Time:      timeUsec,
		})
		d.dx, d.dy = 0, 0
	}
	if d.sawSteps || d.sawAmount {
		ev := input.PointerAxisEvent{
			Source: input.SourceWheel,
			Time:   timeMsec,
		}
		if d.sawAmount {
			h, v := d.hAmount, d.vAmount
			if h != 0 {
				ev.Horizontal.Amount = &h
			}
			if v != 0 {
				ev.Vertical.Amount = &v
			}
		}
		if d.sawSteps {
			h, v := d.hSteps, d.vSteps
			if h != 0 {
				ev.Horizontal.Discrete = &h
			}
			if v != 0 {
				ev.Vertical.Discrete = &v
			}
		}
		d.pending = append(d.pending, ev)
		d.hSteps, d.vSteps = 0, 0
		d.hAmount, d.vAmount = 0, 0
		d.sawSteps, d.sawAmount = false, false
	}
}
