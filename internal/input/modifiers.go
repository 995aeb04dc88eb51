package input

import "strings"

// Modifiers is a bitmask of the modifier keys held on the keyboard.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << 0
	ModCtrl  Modifiers = 1 << 1
	ModAlt   Modifiers = 1 << 2
	ModLogo  Modifiers = 1 << 3
	ModNone  Modifiers = 0
)

var modifierNames = map[string]Modifiers{
	"shift":   ModShift,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"mod1":    ModAlt,
	"logo":    ModLogo,
	"super":   ModLogo,
	"win":     ModLogo,
	"mod4":    ModLogo,
}

// ModifierFromName returns the modifier with the given name, if any.
func ModifierFromName(name string) (Modifiers, bool) {
	mod, ok := modifierNames[strings.ToLower(name)]
	return mod, ok
}

// Has returns whether m contains the given modifier.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// String implements Stringer.
func (m Modifiers) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModLogo) {
		parts = append(parts, "logo")
	}
	return strings.Join(parts, "-")
}

// Keycodes which act as modifiers.
var modifierCodes = map[uint32]Modifiers{
	KeyLeftShift:  ModShift,
	KeyRightShift: ModShift,
	KeyLeftCtrl:   ModCtrl,
	KeyRightCtrl:  ModCtrl,
	KeyLeftAlt:    ModAlt,
	KeyRightAlt:   ModAlt,
	KeyLeftLogo:   ModLogo,
	KeyRightLogo:  ModLogo,
}

// ModifierState tracks which modifiers are currently depressed. Latched and
// locked modifier semantics are not modeled.
type ModifierState struct {
	held map[uint32]Modifiers
}

// NewModifierState creates an empty modifier tracker.
func NewModifierState() *ModifierState {
	return &ModifierState{held: make(map[uint32]Modifiers)}
}

// Update feeds a single key press or release into the tracker.
func (s *ModifierState) Update(code uint32, state State) {
	mod, ok := modifierCodes[code]
	if !ok {
		return
	}
	if state == StatePressed {
		s.held[code] = mod
	} else {
		delete(s.held, code)
	}
}

// Mods returns the set of modifiers currently depressed.
func (s *ModifierState) Mods() Modifiers {
	mods := ModNone
	for _, mod := range s.held {
		mods |= mod
	}
	return mods
}
