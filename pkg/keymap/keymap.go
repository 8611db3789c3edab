package keymap

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"fmt"
	"go.uber.org/multierr"
)

// Keymap is the static configuration of one keyboard.
type Keymap struct {
	Name       string
	LayerNames []string
	Layers     []Layer
	Combos     []Combo
	Encoders   EncoderMap
}

// Resolve returns the keycode at pos from the highest enabled layer that does
// not pass through. Both the momentary and the default layer states count.
func (k *Keymap) Resolve(state, defaultState LayerState, pos Position) keycode.Keycode {
	active := state | defaultState
	for layer := len(k.Layers) - 1; layer >= 0; layer-- {
		if !active.On(uint8(layer)) {
			continue
		}
		kc := k.Layers[layer].At(pos)
		if kc != keycode.KC_TRNS {
			return kc
		}
	}
	return keycode.KC_NO
}

// LayerName returns the display name of layer, falling back to its index.
func (k *Keymap) LayerName(layer uint8) string {
	if int(layer) < len(k.LayerNames) {
		return k.LayerNames[layer]
	}
	return fmt.Sprintf("layer %d", layer)
}

// Validate checks every key on every layer, every combo and the encoder map
// against valid. All offending entries are reported together.
func (k *Keymap) Validate(valid func(keycode.Keycode) bool) error {
	var err error

	if len(k.LayerNames) != len(k.Layers) {
		err = multierr.Append(err, fmt.Errorf("%s: %d layer names for %d layers", k.Name, len(k.LayerNames), len(k.Layers)))
	}

	for i := range k.Layers {
		for row := uint8(0); row < MatrixRows; row++ {
			for col := uint8(0); col < MatrixCols; col++ {
				kc := k.Layers[i][row][col]
				if !valid(kc) {
					err = multierr.Append(err, fmt.Errorf("%s: layer %s at %s: invalid keycode %s",
						k.Name, k.LayerName(uint8(i)), Position{Row: row, Col: col}, kc))
				}
				if kc.IsMomentary() && int(kc.Layer()) >= len(k.Layers) {
					err = multierr.Append(err, fmt.Errorf("%s: layer %s at %s: %s targets a missing layer",
						k.Name, k.LayerName(uint8(i)), Position{Row: row, Col: col}, kc))
				}
			}
		}
	}

	for i, combo := range k.Combos {
		if len(combo.Keys) < 2 {
			err = multierr.Append(err, fmt.Errorf("%s: combo %d has %d keys", k.Name, i, len(combo.Keys)))
		}
		for _, kc := range combo.Keys {
			if !valid(kc) {
				err = multierr.Append(err, fmt.Errorf("%s: combo %d: invalid keycode %s", k.Name, i, kc))
			}
		}
		if combo.Output != keycode.KC_NO && !valid(combo.Output) {
			err = multierr.Append(err, fmt.Errorf("%s: combo %d: invalid output %s", k.Name, i, combo.Output))
		}
	}

	for layer, actions := range k.Encoders {
		if int(layer) >= len(k.Layers) {
			err = multierr.Append(err, fmt.Errorf("%s: encoder map for missing layer %d", k.Name, layer))
		}
		for _, action := range actions {
			if !valid(action.CCW) || !valid(action.CW) {
				err = multierr.Append(err, fmt.Errorf("%s: encoder map on layer %s: invalid keycode", k.Name, k.LayerName(layer)))
			}
		}
	}

	return err
}
