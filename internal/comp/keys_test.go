package comp_test

import (
	"testing"

	"github.com/emberwm/ember/internal/cfg"
	"github.com/emberwm/ember/internal/comp"
	"github.com/emberwm/ember/internal/input"
)

func TestDecide(t *testing.T) {
	binds := []cfg.Keybind{
		mustKeybind(t, "ctrl-alt-q", "quit"),
		mustKeybind(t, "q", "workspace(1)"),
		mustKeybind(t, "q", "workspace(2)"),
		mustKeybind(t, "logo-shift-1", "move_and_switch(1)"),
	}
	cases := []struct {
		name  string
		mods  input.Modifiers
		syms  []input.Keysym
		state input.State
		want  string
		ok    bool
	}{
		{
			name: "bare key", mods: input.ModNone,
			syms: []input.Keysym{"q"}, state: input.StatePressed,
			want: "workspace(1)", ok: true,
		},
		{
			name: "modified chord", mods: input.ModCtrl | input.ModAlt,
			syms: []input.Keysym{"q"}, state: input.StatePressed,
			want: "quit", ok: true,
		},
		{
			name: "release never matches", mods: input.ModCtrl | input.ModAlt,
			syms: []input.Keysym{"q"}, state: input.StateReleased,
		},
		{
			name: "extra modifier breaks the match", mods: input.ModCtrl | input.ModAlt | input.ModShift,
			syms: []input.Keysym{"q"}, state: input.StatePressed,
		},
		{
			name: "missing modifier breaks the match", mods: input.ModCtrl,
			syms: []input.Keysym{"q"}, state: input.StatePressed,
		},
		{
			name: "containment in the symbol set", mods: input.ModLogo | input.ModShift,
			syms: []input.Keysym{"exclam", "1"}, state: input.StatePressed,
			want: "move_and_switch(1)", ok: true,
		},
		{
			name: "unbound key", mods: input.ModNone,
			syms: []input.Keysym{"w"}, state: input.StatePressed,
		},
		{
			name: "no symbols", mods: input.ModNone,
			syms: nil, state: input.StatePressed,
		},
	}
	for _, c := range cases {
		action, ok := comp.Decide(c.mods, c.syms, binds, c.state)
		if ok != c.ok {
			t.Fatalf("%s: got ok=%v, want %v", c.name, ok, c.ok)
		}
		if ok && action.String() != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, action, c.want)
		}
	}
}

func TestDecideEmptyTable(t *testing.T) {
	_, ok := comp.Decide(input.ModNone, []input.Keysym{"q"}, nil, input.StatePressed)
	if ok {
		t.Fatal("matched against an empty binding table")
	}
}
