package firmware

import (
	"codeberg.org/miketth/keymapd/pkg/audio"
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	"codeberg.org/miketth/keymapd/pkg/settings"
	"fmt"
)

var _ Host = (*Runtime)(nil)

// RegisterCode16 holds kc down along with any modifiers it carries.
func (r *Runtime) RegisterCode16(kc keycode.Keycode) error {
	for _, mod := range kc.Mods().Keycodes() {
		if err := r.report(mod, true); err != nil {
			return err
		}
	}
	if kc.IsMods() || kc.IsBasic() {
		return r.report(kc.Basic(), true)
	}
	return fmt.Errorf("%s is not a key", kc)
}

// UnregisterCode16 releases kc and then its modifiers.
func (r *Runtime) UnregisterCode16(kc keycode.Keycode) error {
	if !kc.IsMods() && !kc.IsBasic() {
		return fmt.Errorf("%s is not a key", kc)
	}
	if err := r.report(kc.Basic(), false); err != nil {
		return err
	}
	mods := kc.Mods().Keycodes()
	for i := len(mods) - 1; i >= 0; i-- {
		if err := r.report(mods[i], false); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runtime) TapCode16(kc keycode.Keycode) error {
	if err := r.RegisterCode16(kc); err != nil {
		return err
	}
	return r.UnregisterCode16(kc)
}

// report sends a single basic keycode, applying the alt/gui swap.
func (r *Runtime) report(kc keycode.Keycode, pressed bool) error {
	if kc == keycode.KC_NO {
		return nil
	}
	if r.settings.Keymap.SwapAltGui {
		kc = swapAltGui(kc)
	}
	if pressed {
		return r.out.Press(kc)
	}
	return r.out.Release(kc)
}

func swapAltGui(kc keycode.Keycode) keycode.Keycode {
	switch kc {
	case keycode.KC_LALT:
		return keycode.KC_LGUI
	case keycode.KC_LGUI:
		return keycode.KC_LALT
	case keycode.KC_RALT:
		return keycode.KC_RGUI
	case keycode.KC_RGUI:
		return keycode.KC_RALT
	}
	return kc
}

func (r *Runtime) LayerOn(layer uint8) {
	r.setLayerState(r.layers.With(layer))
}

// LayerOff turns layer off, dropping a lock on it as well.
func (r *Runtime) LayerOff(layer uint8) {
	if r.locked.On(layer) {
		r.LockLayer(layer, false)
	}
	r.setLayerState(r.layers.Without(layer))
}

func (r *Runtime) LockLayer(layer uint8, locked bool) {
	if locked {
		r.locked = r.locked.With(layer)
	} else {
		r.locked = r.locked.Without(layer)
	}
	r.observer.LayerChanged(r.LayerState())
	r.log.Debugw("layer lock", "layer", r.keymap.LayerName(layer), "locked", locked)
}

// SetSinglePersistentDefaultLayer makes layer the only default layer and saves it.
func (r *Runtime) SetSinglePersistentDefaultLayer(layer uint8) error {
	if int(layer) >= len(r.keymap.Layers) {
		return fmt.Errorf("default layer %d does not exist", layer)
	}

	updated := r.settings
	updated.DefaultLayer = layer
	if err := r.store.Write(r.name, updated); err != nil {
		return fmt.Errorf("save default layer: %w", err)
	}

	r.settings = updated
	r.defaultLayer = keymap.LayerState(0).With(layer)
	r.observer.LayerChanged(r.LayerState() | r.defaultLayer)
	r.log.Infow("default layer changed", "layer", r.keymap.LayerName(layer))
	return nil
}

func (r *Runtime) ConfigIsEnabled() (bool, error) {
	return r.store.IsEnabled(r.name)
}

// ConfigInit resets the saved settings to their defaults. The active default
// layer is left alone until the next boot.
func (r *Runtime) ConfigInit() error {
	if err := r.store.Init(r.name); err != nil {
		return fmt.Errorf("init settings: %w", err)
	}
	r.settings = settings.Defaults()
	return nil
}

func (r *Runtime) ReadKeymapConfig() (settings.KeymapConfig, error) {
	stored, err := r.store.Read(r.name)
	if err != nil {
		return settings.KeymapConfig{}, err
	}
	return stored.Keymap, nil
}

func (r *Runtime) UpdateKeymapConfig(cfg settings.KeymapConfig) error {
	return r.updateSettings(func(s *settings.Settings) { s.Keymap = cfg })
}

func (r *Runtime) updateSettings(update func(s *settings.Settings)) error {
	updated := r.settings
	update(&updated)
	if err := r.store.Write(r.name, updated); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	r.settings = updated
	return nil
}

// AudioEnabled reports whether sound is both built in and switched on.
func (r *Runtime) AudioEnabled() bool {
	return r.caps.Audio && r.player != nil && r.settings.Audio
}

func (r *Runtime) PlaySong(song audio.Song) {
	if r.AudioEnabled() {
		r.player.Play(song)
	}
}

func (r *Runtime) StopAllNotes() {
	if r.AudioEnabled() {
		r.player.StopAll()
	}
}

func (r *Runtime) CapsWordOn() {
	if !r.capsWord {
		r.log.Debug("caps word on")
	}
	r.capsWord = true
}
