package planck

import (
	"codeberg.org/miketth/keymapd/pkg/audio"
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	"fmt"
)

var (
	_ firmware.Keyboard         = (*Keyboard)(nil)
	_ firmware.DipSwitchHandler = (*Keyboard)(nil)
)

// Keyboard keeps its own state between callbacks; use one per runtime.
type Keyboard struct {
	keymap *keymap.Keymap

	// playSound is false until the dip switch first changes after boot.
	playSound bool
}

func New() *Keyboard {
	return &Keyboard{
		keymap: &keymap.Keymap{
			Name:       Name,
			LayerNames: layerNames,
			Layers:     layers(),
			Combos:     combos(),
			Encoders:   encoders(),
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
		return false, setDefault(h, rec, Qwerty)
	case COLEMAK:
		return false, setDefault(h, rec, Colemak)
	case DVORAK:
		return false, setDefault(h, rec, Dvorak)

	case BACKLIT:
		if rec.Pressed {
			return false, h.RegisterCode16(keycode.KC_RSFT)
		}
		return false, h.UnregisterCode16(keycode.KC_RSFT)

	case PLOVER:
		if rec.Pressed {
			return false, enterPlover(h)
		}
		return false, nil
	case EXT_PLV:
		if rec.Pressed {
			h.PlaySong(audio.PloverGoodbyeSound)
			h.LayerOff(Plover)
		}
		return false, nil
	}

	return true, nil
}

func setDefault(h firmware.Host, rec firmware.Record, layer uint8) error {
	if !rec.Pressed {
		return nil
	}
	return h.SetSinglePersistentDefaultLayer(layer)
}

// enterPlover switches to the steno layer and makes sure NKRO is saved as on.
func enterPlover(h firmware.Host) error {
	h.StopAllNotes()
	h.PlaySong(audio.PloverSound)

	h.LayerOff(Raise)
	h.LayerOff(Lower)
	h.LayerOff(Adjust)
	h.LayerOn(Plover)

	enabled, err := h.ConfigIsEnabled()
	if err != nil {
		return fmt.Errorf("enter plover: %w", err)
	}
	if !enabled {
		if err := h.ConfigInit(); err != nil {
			return fmt.Errorf("enter plover: %w", err)
		}
	}

	cfg, err := h.ReadKeymapConfig()
	if err != nil {
		return fmt.Errorf("enter plover: %w", err)
	}
	cfg.NKRO = true
	if err := h.UpdateKeymapConfig(cfg); err != nil {
		return fmt.Errorf("enter plover: %w", err)
	}
	return nil
}

func (k *Keyboard) LayerStateSet(state keymap.LayerState) keymap.LayerState {
	return keymap.UpdateTriLayer(state, Lower, Raise, Adjust)
}

func (k *Keyboard) ComboEvent(h firmware.Host, index int, pressed bool) error {
	if index == CapsCombo && pressed {
		h.CapsWordOn()
	}
	return nil
}

// DipSwitchUpdate locks the adjust layer on while switch 0 is active. Songs
// only play from the second change after boot.
func (k *Keyboard) DipSwitchUpdate(h firmware.Host, index int, active bool) (bool, error) {
	if index != 0 {
		return true, nil
	}

	if active {
		if k.playSound {
			h.PlaySong(audio.PloverSound)
		}
		h.LockLayer(Adjust, true)
	} else {
		if k.playSound {
			h.PlaySong(audio.PloverGoodbyeSound)
		}
		h.LockLayer(Adjust, false)
	}

	k.playSound = true
	return true, nil
}
