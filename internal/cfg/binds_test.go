package cfg_test

import (
	"testing"

	"github.com/emberwm/ember/internal/cfg"
	"github.com/emberwm/ember/internal/input"
)

func TestParseBind(t *testing.T) {
	cases := []struct {
		str  string
		mods input.Modifiers
		sym  input.Keysym
		ok   bool
	}{
		{"q", input.ModNone, "q", true},
		{"ctrl-alt-q", input.ModCtrl | input.ModAlt, "q", true},
		{"logo-return", input.ModLogo, "return", true},
		{"Logo-Shift-1", input.ModLogo | input.ModShift, "1", true},
		{"super-w", input.ModLogo, "w", true},
		{"mod1-f4", input.ModAlt, "f4", true},
		{"", 0, "", false},
		{"ctrl-ctrl-q", 0, "", false},
		{"ctrl-alt", 0, "", false},
		{"q-w", 0, "", false},
		{"ctrl-noexist", 0, "", false},
	}
	for _, c := range cases {
		bind, err := cfg.ParseBind(c.str)
		if c.ok != (err == nil) {
			t.Fatalf("%q: got error %v, want ok=%v", c.str, err, c.ok)
		}
		if !c.ok {
			continue
		}
		if bind.Mods != c.mods {
			t.Fatalf("%q: got mods %s, want %s", c.str, bind.Mods, c.mods)
		}
		if bind.Sym != c.sym {
			t.Fatalf("%q: got sym %q, want %q", c.str, bind.Sym, c.sym)
		}
	}
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		str     string
		typ     int
		id      int
		command string
		ok      bool
	}{
		{"quit", cfg.ActionQuit, 0, "", true},
		{"debug", cfg.ActionDebug, 0, "", true},
		{"close", cfg.ActionClose, 0, "", true},
		{"toggle_floating", cfg.ActionToggleFloating, 0, "", true},
		{"workspace(3)", cfg.ActionWorkspace, 3, "", true},
		{"move_window(2)", cfg.ActionMoveWindow, 2, "", true},
		{"move_and_switch(4)", cfg.ActionMoveAndSwitch, 4, "", true},
		{"vt_switch(1)", cfg.ActionVTSwitch, 1, "", true},
		{"spawn(foot)", cfg.ActionSpawn, 0, "foot", true},
		{"spawn(sh -c 'echo hi')", cfg.ActionSpawn, 0, "sh -c 'echo hi'", true},
		{"workspace", 0, 0, "", false},
		{"workspace(0)", 0, 0, "", false},
		{"quit(2)", 0, 0, "", false},
		{"spawn", 0, 0, "", false},
		{"noexist", 0, 0, "", false},
		{"noexist(3)", 0, 0, "", false},
	}
	for _, c := range cases {
		action, err := cfg.ParseAction(c.str)
		if c.ok != (err == nil) {
			t.Fatalf("%q: got error %v, want ok=%v", c.str, err, c.ok)
		}
		if !c.ok {
			continue
		}
		if action.Type != c.typ {
			t.Fatalf("%q: got type %d, want %d", c.str, action.Type, c.typ)
		}
		if action.ID != c.id {
			t.Fatalf("%q: got id %d, want %d", c.str, action.ID, c.id)
		}
		if action.Command != c.command {
			t.Fatalf("%q: got command %q, want %q", c.str, action.Command, c.command)
		}
		if action.String() != c.str {
			t.Fatalf("%q: got string %q", c.str, action.String())
		}
	}
}
