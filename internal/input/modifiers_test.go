package input_test

import (
	"testing"

	"github.com/emberwm/ember/internal/input"
)

func TestModifierFromName(t *testing.T) {
	cases := []struct {
		name string
		mod  input.Modifiers
		ok   bool
	}{
		{"shift", input.ModShift, true},
		{"ctrl", input.ModCtrl, true},
		{"control", input.ModCtrl, true},
		{"alt", input.ModAlt, true},
		{"mod1", input.ModAlt, true},
		{"logo", input.ModLogo, true},
		{"super", input.ModLogo, true},
		{"win", input.ModLogo, true},
		{"mod4", input.ModLogo, true},
		{"CTRL", input.ModCtrl, true},
		{"hyper", 0, false},
	}
	for _, c := range cases {
		mod, ok := input.ModifierFromName(c.name)
		if ok != c.ok {
			t.Fatalf("%q: got ok=%v, want %v", c.name, ok, c.ok)
		}
		if ok && mod != c.mod {
			t.Fatalf("%q: got %s, want %s", c.name, mod, c.mod)
		}
	}
}

func TestModifiersString(t *testing.T) {
	cases := []struct {
		mods input.Modifiers
		want string
	}{
		{input.ModNone, "none"},
		{input.ModCtrl, "ctrl"},
		{input.ModCtrl | input.ModAlt, "ctrl-alt"},
		{input.ModShift | input.ModLogo, "shift-logo"},
	}
	for _, c := range cases {
		if got := c.mods.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

func TestModifierState(t *testing.T) {
	state := input.NewModifierState()
	if state.Mods() != input.ModNone {
		t.Fatalf("got %s, want none", state.Mods())
	}

	state.Update(input.KeyLeftCtrl, input.StatePressed)
	if state.Mods() != input.ModCtrl {
		t.Fatalf("got %s, want ctrl", state.Mods())
	}

	// Both shift keys held: releasing one must not release the modifier.
	state.Update(input.KeyLeftShift, input.StatePressed)
	state.Update(input.KeyRightShift, input.StatePressed)
	state.Update(input.KeyLeftShift, input.StateReleased)
	if state.Mods() != input.ModCtrl|input.ModShift {
		t.Fatalf("got %s, want ctrl-shift", state.Mods())
	}

	state.Update(input.KeyRightShift, input.StateReleased)
	state.Update(input.KeyLeftCtrl, input.StateReleased)
	if state.Mods() != input.ModNone {
		t.Fatalf("got %s, want none", state.Mods())
	}

	// Non-modifier keys leave the state alone.
	state.Update(input.KeyQ, input.StatePressed)
	if state.Mods() != input.ModNone {
		t.Fatalf("got %s, want none", state.Mods())
	}

	// Releasing a key that was never tracked is a no-op.
	state.Update(input.KeyLeftAlt, input.StateReleased)
	if state.Mods() != input.ModNone {
		t.Fatalf("got %s, want none", state.Mods())
	}
}
