package comp_test

import (
	"testing"

	"github.com/emberwm/ember/internal/comp"
	"github.com/emberwm/ember/internal/input"
)

func fp(v float64) *float64 {
	return &v
}

func TestAxisFrames(t *testing.T) {
	cases := []struct {
		name string
		ev   input.PointerAxisEvent
		want comp.AxisFrame
	}{
		{
			name: "continuous",
			ev: input.PointerAxisEvent{
				Vertical: input.AxisValue{Amount: fp(7.5)},
				Source:   input.SourceContinuous,
			},
			want: comp.AxisFrame{
				Source:   input.SourceContinuous,
				Vertical: comp.AxisEntry{Value: 7.5, HasValue: true},
			},
		},
		{
			name: "discrete fallback",
			ev: input.PointerAxisEvent{
				Vertical: input.AxisValue{Discrete: fp(2)},
				Source:   input.SourceWheel,
			},
			want: comp.AxisFrame{
				Source:   input.SourceWheel,
				Vertical: comp.AxisEntry{Value: 6, HasValue: true, Discrete: 2, HasDiscrete: true},
			},
		},
		{
			name: "continuous preferred over discrete",
			ev: input.PointerAxisEvent{
				Vertical: input.AxisValue{Amount: fp(15), Discrete: fp(1)},
				Source:   input.SourceWheel,
			},
			want: comp.AxisFrame{
				Source:   input.SourceWheel,
				Vertical: comp.AxisEntry{Value: 15, HasValue: true, Discrete: 1, HasDiscrete: true},
			},
		},
		{
			name: "finger lift stops both axes",
			ev: input.PointerAxisEvent{
				Source: input.SourceFinger,
			},
			want: comp.AxisFrame{
				Source:     input.SourceFinger,
				Horizontal: comp.AxisEntry{Stop: true},
				Vertical:   comp.AxisEntry{Stop: true},
			},
		},
		{
			name: "idle wheel axis stays silent",
			ev: input.PointerAxisEvent{
				Horizontal: input.AxisValue{Discrete: fp(-1)},
				Source:     input.SourceWheel,
			},
			want: comp.AxisFrame{
				Source:     input.SourceWheel,
				Horizontal: comp.AxisEntry{Value: -3, HasValue: true, Discrete: -1, HasDiscrete: true},
			},
		},
		{
			name: "finger scroll on one axis stops the other",
			ev: input.PointerAxisEvent{
				Vertical: input.AxisValue{Amount: fp(4)},
				Source:   input.SourceFinger,
			},
			want: comp.AxisFrame{
				Source:     input.SourceFinger,
				Horizontal: comp.AxisEntry{Stop: true},
				Vertical:   comp.AxisEntry{Value: 4, HasValue: true},
			},
		},
	}
	for _, c := range cases {
		state, seat := newState(nil)
		process(t, state, c.ev)
		frames := seat.only("axis")
		if len(frames) != 1 {
			t.Fatalf("%s: got %d frames, want 1", c.name, len(frames))
		}
		if got := frames[0].frame; got != c.want {
			t.Fatalf("%s: got %+v, want %+v", c.name, got, c.want)
		}
	}
}
