package comp

import (
	"github.com/emberwm/ember/internal/cfg"
	"github.com/emberwm/ember/internal/input"
	"golang.org/x/exp/slices"
)

// Decide is the keybinding interceptor. Given the active modifiers, the
// resolved symbols of the key and the press state, it scans the keybinds in
// priority order and returns the action of the first match. A keybind
// matches iff its modifier set equals the active modifiers exactly and its
// keysym is among the key's resolved symbols. Only presses can intercept;
// releases always forward, with no press/release pairing state kept.
func Decide(mods input.Modifiers, syms []input.Keysym, binds []cfg.Keybind, state input.State) (cfg.Action, bool) {
	if state != input.StatePressed {
		return cfg.Action{}, false
	}
	for _, kb := range binds {
		if kb.Bind.Mods != mods {
			continue
		}
		if slices.Contains(syms, kb.Bind.Sym) {
			return kb.Action, true
		}
	}
	return cfg.Action{}, false
}
