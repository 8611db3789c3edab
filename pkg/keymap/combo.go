package keymap

import "codeberg.org/miketth/keymapd/pkg/keycode"

// Combo is a chord of keys. A non-zero Output is sent directly; otherwise the
// keyboard's combo hook handles the chord by its index.
type Combo struct {
	Keys   []keycode.Keycode
	Output keycode.Keycode
}

// Matches reports whether keys is the same set as the combo's keys.
func (c Combo) Matches(keys []keycode.Keycode) bool {
	if len(keys) != len(c.Keys) {
		return false
	}

	want := make(map[keycode.Keycode]int, len(c.Keys))
	for _, kc := range c.Keys {
		want[kc]++
	}
	for _, kc := range keys {
		if want[kc] == 0 {
			return false
		}
		want[kc]--
	}
	return true
}

// FindCombo returns the index of the combo made of keys, or -1.
func (k *Keymap) FindCombo(keys []keycode.Keycode) int {
	for i, combo := range k.Combos {
		if combo.Matches(keys) {
			return i
		}
	}
	return -1
}
