package unicorne

import (
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
)

var _ firmware.Keyboard = (*Keyboard)(nil)

type Keyboard struct {
	keymap *keymap.Keymap
}

func New() *Keyboard {
	return &Keyboard{
		keymap: &keymap.Keymap{
			Name:       Name,
			LayerNames: layerNames,
			Layers:     layers(),
			Combos:     combos(),
		},
	}
}

func (k *Keyboard) Keymap() *keymap.Keymap {
	return k.keymap
}

func (k *Keyboard) Valid(kc keycode.Keycode) bool {
	switch {
	case kc >= QWERTY && kc <= MA_WI_PSTE:
		return true
	case kc == BR_TILD, kc == BR_DQUO:
		return true
	}
	return keycode.Valid(kc)
}

func (k *Keyboard) ProcessRecord(h firmware.Host, kc keycode.Keycode, rec firmware.Record) (bool, error) {
	switch kc {
	case BR_TILD:
		if rec.Pressed && rec.TapCount > 0 {
			return false, h.TapCode16(keycode.KC_TILD)
		}
	case BR_DQUO:
		if rec.Pressed && rec.TapCount > 0 {
			return false, h.TapCode16(keycode.KC_DQUO)
		}

	case MA_WI_COPY:
		if rec.Pressed {
			return true, h.SendString(firmware.SSLCtl("c"))
		}
	case MA_WI_CUT:
		if rec.Pressed {
			return true, h.SendString(firmware.SSLCtl("x"))
		}
	case MA_WI_PSTE:
		if rec.Pressed {
			return true, h.SendString(firmware.SSLCtl("v"))
		}

	case QWERTY:
		if rec.Pressed {
			return false, h.SetSinglePersistentDefaultLayer(Qwerty)
		}
		return false, nil
	case DVORAK:
		if rec.Pressed {
			return false, h.SetSinglePersistentDefaultLayer(Dvorak)
		}
		return false, nil
	}

	return true, nil
}

func (k *Keyboard) LayerStateSet(state keymap.LayerState) keymap.LayerState {
	return keymap.UpdateTriLayer(state, Sym, Num, Adjust)
}

func (k *Keyboard) ComboEvent(h firmware.Host, index int, pressed bool) error {
	if index == CapsCombo && pressed {
		h.CapsWordOn()
	}
	return nil
}
