package firmware

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/settings"
)

// press runs the default action for kc and returns what undoes it on release.
func (r *Runtime) press(kc keycode.Keycode, rec Record) (func() error, error) {
	switch {
	case kc == keycode.KC_NO, kc == keycode.KC_TRNS:
		return nil, nil

	case kc == keycode.KC_WH_U:
		return nil, r.out.Wheel(1)
	case kc == keycode.KC_WH_D:
		return nil, r.out.Wheel(-1)

	case kc.IsBasic():
		return r.pressBasic(kc)

	case kc.IsMods():
		releaseOneShot, err := r.takeOneShotMods()
		if err != nil {
			return nil, err
		}
		if err := r.RegisterCode16(kc); err != nil {
			return nil, err
		}
		return func() error {
			if err := r.UnregisterCode16(kc); err != nil {
				return err
			}
			return releaseOneShot()
		}, nil

	case kc.IsModTap():
		if rec.TapCount > 0 {
			return r.pressBasic(kc.Basic())
		}
		mods := keycode.WithMods(kc.Mods(), keycode.KC_NO)
		if err := r.RegisterCode16(mods); err != nil {
			return nil, err
		}
		return func() error { return r.UnregisterCode16(mods) }, nil

	case kc.IsMomentary():
		layer := kc.Layer()
		r.momentary[layer]++
		r.LayerOn(layer)
		return func() error {
			r.momentary[layer]--
			if r.momentary[layer] <= 0 {
				delete(r.momentary, layer)
				r.LayerOff(layer)
			}
			return nil
		}, nil

	case kc.IsOneShotMod():
		r.oneShotMods |= kc.Mods()
		return nil, nil

	case kc.IsQuantum():
		return nil, r.pressQuantum(kc)

	case kc.IsUser():
		r.log.Debugw("custom keycode left to the keymap", "keycode", kc)
		return nil, nil
	}

	r.log.Debugw("no default action", "keycode", kc)
	return nil, nil
}

// pressBasic applies pending one-shot mods and caps word to a plain key.
func (r *Runtime) pressBasic(kc keycode.Keycode) (func() error, error) {
	if keycode.IsModifier(kc) {
		if err := r.report(kc, true); err != nil {
			return nil, err
		}
		return func() error { return r.report(kc, false) }, nil
	}

	sent := kc
	if r.capsWord {
		sent = r.applyCapsWord(kc)
	}

	releaseOneShot, err := r.takeOneShotMods()
	if err != nil {
		return nil, err
	}
	if err := r.RegisterCode16(sent); err != nil {
		return nil, err
	}
	return func() error {
		if err := r.UnregisterCode16(sent); err != nil {
			return err
		}
		return releaseOneShot()
	}, nil
}

// takeOneShotMods holds the pending one-shot mods for the key being pressed
// and returns what releases them.
func (r *Runtime) takeOneShotMods() (func() error, error) {
	if r.oneShotMods == 0 {
		return func() error { return nil }, nil
	}

	mods := keycode.WithMods(r.oneShotMods, keycode.KC_NO)
	r.oneShotMods = 0
	if err := r.RegisterCode16(mods); err != nil {
		return nil, err
	}
	return func() error { return r.UnregisterCode16(mods) }, nil
}

// applyCapsWord shifts letters and the minus key while caps word is on, and
// turns it off on anything that ends a word.
func (r *Runtime) applyCapsWord(kc keycode.Keycode) keycode.Keycode {
	switch {
	case keycode.IsAlpha(kc), kc == keycode.KC_MINS:
		return keycode.LSft(kc)
	case kc >= keycode.KC_1 && kc <= keycode.KC_0,
		kc == keycode.KC_BSPC, kc == keycode.KC_DEL:
		return kc
	}

	r.capsWord = false
	r.log.Debug("caps word off")
	return kc
}

func (r *Runtime) pressQuantum(kc keycode.Keycode) error {
	switch kc {
	case keycode.DB_TOGG:
		r.toggleDebug()
	case keycode.EE_CLR:
		if err := r.ConfigInit(); err != nil {
			return err
		}
		r.log.Info("settings cleared")
	case keycode.AG_SWAP, keycode.AG_NORM:
		swap := kc == keycode.AG_SWAP
		return r.updateSettings(func(s *settings.Settings) { s.Keymap.SwapAltGui = swap })
	case keycode.AU_ON, keycode.AU_OFF, keycode.AU_TOGG:
		on := kc == keycode.AU_ON || (kc == keycode.AU_TOGG && !r.settings.Audio)
		if !on {
			r.StopAllNotes()
		}
		return r.updateSettings(func(s *settings.Settings) { s.Audio = on })
	case keycode.QK_BOOT:
		r.log.Warn("bootloader requested, nothing to reboot into")
	default:
		if keycode.IsRGB(kc) {
			r.log.Debugw("no lighting on this host", "keycode", kc)
			return nil
		}
		r.log.Debugw("feature not available", "keycode", kc)
	}
	return nil
}
