package input

import "strings"

// Keysym is the name of a symbol a key resolves to. Symbols are lowercase
// and layout-independent (unshifted).
type Keysym string

// keysyms maps each keycode to its resolved symbol set for the built-in US
// layout. Binding matches test for containment in this set.
var keysyms = map[uint32][]Keysym{
	KeyEscape:    {"escape"},
	Key1:         {"1"},
	Key2:         {"2"},
	Key3:         {"3"},
	Key4:         {"4"},
	Key5:         {"5"},
	Key6:         {"6"},
	Key7:         {"7"},
	Key8:         {"8"},
	Key9:         {"9"},
	Key0:         {"0"},
	KeyMinus:     {"minus"},
	KeyEqual:     {"equal"},
	KeyBackspace: {"backspace"},
	KeyTab:       {"tab"},
	KeyQ:         {"q"},
	KeyW:         {"w"},
	KeyE:         {"e"},
	KeyR:         {"r"},
	KeyT:         {"t"},
	KeyY:         {"y"},
	KeyU:         {"u"},
	KeyI:         {"i"},
	KeyO:         {"o"},
	KeyP:         {"p"},
	KeyReturn:    {"return"},
	KeyLeftCtrl:  {"ctrl"},
	KeyA:         {"a"},
	KeyS:         {"s"},
	KeyD:         {"d"},
	KeyF:         {"f"},
	KeyG:         {"g"},
	KeyH:         {"h"},
	KeyJ:         {"j"},
	KeyK:         {"k"},
	KeyL:         {"l"},
	KeyLeftShift: {"shift"},
	KeyZ:         {"z"},
	KeyX:         {"x"},
	KeyC:         {"c"},
	KeyV:         {"v"},
	KeyB:         {"b"},
	KeyN:         {"n"},
	KeyM:         {"m"},
	KeyLeftAlt:   {"alt"},
	KeySpace:     {"space"},
	KeyF1:        {"f1"},
	KeyF2:        {"f2"},
	KeyF3:        {"f3"},
	KeyF4:        {"f4"},
	KeyF5:        {"f5"},
	KeyF6:        {"f6"},
	KeyF7:        {"f7"},
	KeyF8:        {"f8"},
	KeyF9:        {"f9"},
	KeyF10:       {"f10"},
	KeyF11:       {"f11"},
	KeyF12:       {"f12"},
	KeyUp:        {"up"},
	KeyLeft:      {"left"},
	KeyRight:     {"right"},
	KeyDown:      {"down"},
	KeyLeftLogo:  {"logo"},
}

// knownSyms is the set of symbol names a keybind may reference. Built from
// the keymap once at startup.
var knownSyms = func() map[Keysym]bool {
	known := make(map[Keysym]bool)
	for _, syms := range keysyms {
		for _, sym := range syms {
			known[sym] = true
		}
	}
	return known
}()

// Resolve returns the symbol set for a keycode. Unknown keycodes resolve to
// an empty set; their events are still forwarded, they just cannot match a
// keybind.
func Resolve(code uint32) []Keysym {
	return keysyms[code]
}

// KeysymFromName returns the keysym with the given name, if the built-in
// layout can produce it.
func KeysymFromName(name string) (Keysym, bool) {
	sym := Keysym(strings.ToLower(name))
	return sym, knownSyms[sym]
}
