package cfg

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/emberwm/ember/internal/input"
)

// Keybind action types
const (
	ActionQuit int = iota
	ActionDebug
	ActionClose
	ActionWorkspace
	ActionMoveWindow
	ActionMoveAndSwitch
	ActionToggleFloating
	ActionSpawn
	ActionVTSwitch
)

// Mapping of action names -> action types
var actionNames = map[string]int{
	"quit":            ActionQuit,
	"debug":           ActionDebug,
	"close":           ActionClose,
	"workspace":       ActionWorkspace,
	"move_window":     ActionMoveWindow,
	"move_and_switch": ActionMoveAndSwitch,
	"toggle_floating": ActionToggleFloating,
	"spawn":           ActionSpawn,
	"vt_switch":       ActionVTSwitch,
}

// Actions which take a numeric argument.
var numberedActions = map[int]bool{
	ActionWorkspace:     true,
	ActionMoveWindow:    true,
	ActionMoveAndSwitch: true,
	ActionVTSwitch:      true,
}

// Action parsing regexes
var numRegexp = regexp.MustCompile(`^([a-z_]+)\((\d+)\)$`)
var spawnRegexp = regexp.MustCompile(`^spawn\((.+)\)$`)

// Action represents a single keybind action.
type Action struct {
	// The type of action.
	Type int

	// The workspace or VT number for actions that take one.
	ID int

	// The command to run for spawn actions.
	Command string

	// String representation.
	str string
}

// String implements Stringer.
func (a Action) String() string {
	return a.str
}

// UnmarshalTOML implements toml.Unmarshaler.
func (a *Action) UnmarshalTOML(value any) error {
	str, ok := value.(string)
	if !ok {
		return errors.New("action value was not a string")
	}
	action, err := ParseAction(str)
	if err != nil {
		return err
	}
	*a = action
	return nil
}

// ParseAction parses an action from its configuration string, e.g. "quit",
// "workspace(3)" or "spawn(foot)".
func ParseAction(str string) (Action, error) {
	if typ, ok := actionNames[str]; ok {
		if numberedActions[typ] {
			return Action{}, fmt.Errorf("action %q requires a number", str)
		}
		if typ == ActionSpawn {
			return Action{}, fmt.Errorf("action %q requires a command", str)
		}
		return Action{Type: typ, str: str}, nil
	}
	if m := spawnRegexp.FindStringSubmatch(str); m != nil {
		return Action{Type: ActionSpawn, Command: m[1], str: str}, nil
	}
	if m := numRegexp.FindStringSubmatch(str); m != nil {
		typ, ok := actionNames[m[1]]
		if !ok {
			return Action{}, fmt.Errorf("invalid action %q", str)
		}
		if !numberedActions[typ] {
			return Action{}, fmt.Errorf("action %q cannot have a number", str)
		}
		num, err := strconv.Atoi(m[2])
		if err != nil {
			return Action{}, fmt.Errorf("failed to parse number in %q", str)
		}
		if num < 1 {
			return Action{}, fmt.Errorf("invalid number in %q", str)
		}
		return Action{Type: typ, ID: num, str: str}, nil
	}
	return Action{}, fmt.Errorf("invalid action %q", str)
}

// Bind represents a single keybinding: a set of modifiers plus one keysym.
type Bind struct {
	Mods input.Modifiers
	Sym  input.Keysym

	// String representation.
	str string
}

// String implements Stringer.
func (b Bind) String() string {
	return b.str
}

// UnmarshalTOML implements toml.Unmarshaler.
func (b *Bind) UnmarshalTOML(value any) error {
	str, ok := value.(string)
	if !ok {
		return errors.New("bind value was not a string")
	}
	bind, err := ParseBind(str)
	if err != nil {
		return err
	}
	*b = bind
	return nil
}

// ParseBind parses a keybinding from its configuration string, e.g.
// "ctrl-alt-q" or "logo-return". Modifier names come first; the final
// component must be a keysym.
func ParseBind(str string) (Bind, error) {
	if str == "" {
		return Bind{}, errors.New("empty bind")
	}
	b := Bind{str: str}
	var haveSym bool
	for _, split := range strings.Split(str, "-") {
		split = strings.ToLower(split)
		if mod, ok := input.ModifierFromName(split); ok {
			if b.Mods.Has(mod) {
				return Bind{}, fmt.Errorf("duplicate modifier %q", split)
			}
			b.Mods |= mod
		} else if sym, ok := input.KeysymFromName(split); ok {
			if haveSym {
				return Bind{}, errors.New("more than one key")
			}
			b.Sym = sym
			haveSym = true
		} else {
			return Bind{}, fmt.Errorf("unrecognized keybind element %q", split)
		}
	}
	if !haveSym {
		return Bind{}, errors.New("bind has no key")
	}
	return b, nil
}

// Keybind associates a Bind with the Action it triggers. The order of
// keybinds in the configuration is their priority order; the first matching
// keybind wins.
type Keybind struct {
	Bind   Bind   `toml:"bind"`
	Action Action `toml:"action"`
}
