package keymap

import "codeberg.org/miketth/keymapd/pkg/keycode"

// EncoderAction holds the keycodes tapped for each rotation direction.
type EncoderAction struct {
	CCW keycode.Keycode
	CW  keycode.Keycode
}

// EncoderMap lists, per layer, one action for each encoder on the board.
type EncoderMap map[uint8][]EncoderAction

// Lookup returns the keycode for encoder index turned in the given direction,
// searching from the highest enabled layer down.
func (m EncoderMap) Lookup(active LayerState, index int, clockwise bool) (keycode.Keycode, bool) {
	for layer := 31; layer >= 0; layer-- {
		if !active.On(uint8(layer)) {
			continue
		}
		actions, ok := m[uint8(layer)]
		if !ok || index < 0 || index >= len(actions) {
			continue
		}
		kc := actions[index].CCW
		if clockwise {
			kc = actions[index].CW
		}
		if kc == keycode.KC_TRNS {
			continue
		}
		return kc, true
	}
	return keycode.KC_NO, false
}
