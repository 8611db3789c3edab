package firmware

import (
	"codeberg.org/miketth/keymapd/pkg/audio"
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	"codeberg.org/miketth/keymapd/pkg/settings"
)

// Reporter receives the HID output.
type Reporter interface {
	Press(kc keycode.Keycode) error
	Release(kc keycode.Keycode) error
	Wheel(delta int) error
}

// SettingsStore persists settings per keyboard name.
type SettingsStore interface {
	IsEnabled(keyboard string) (bool, error)
	Init(keyboard string) error
	Read(keyboard string) (settings.Settings, error)
	Write(keyboard string, s settings.Settings) error
}

type Player interface {
	Play(song audio.Song)
	StopAll()
}

// Observer is told about everything the runtime does. Used for metrics.
type Observer interface {
	KeyEvent(pressed bool)
	LayerChanged(state keymap.LayerState)
	ComboFired(index int)
}

// Keyboard is what a keymap provides to the runtime.
type Keyboard interface {
	Keymap() *keymap.Keymap

	// Valid reports whether kc may appear in the keymap, including the
	// keyboard's own keycodes.
	Valid(kc keycode.Keycode) bool

	// ProcessRecord runs before the default action for every key event.
	// Returning false skips the default action.
	ProcessRecord(h Host, kc keycode.Keycode, rec Record) (bool, error)

	// LayerStateSet may adjust the layer state after every change.
	LayerStateSet(state keymap.LayerState) keymap.LayerState

	// ComboEvent is called for combos without a direct output.
	ComboEvent(h Host, index int, pressed bool) error
}

// DipSwitchHandler is implemented by keyboards with dip switches.
type DipSwitchHandler interface {
	DipSwitchUpdate(h Host, index int, active bool) (bool, error)
}

// Host is the set of primitives keymap hooks may use.
type Host interface {
	TapCode16(kc keycode.Keycode) error
	RegisterCode16(kc keycode.Keycode) error
	UnregisterCode16(kc keycode.Keycode) error
	SendString(s string) error

	LayerOn(layer uint8)
	LayerOff(layer uint8)
	// LockLayer keeps layer on regardless of the layer-state hook until it is
	// unlocked or turned off with LayerOff.
	LockLayer(layer uint8, locked bool)
	LayerState() keymap.LayerState

	SetSinglePersistentDefaultLayer(layer uint8) error
	ConfigIsEnabled() (bool, error)
	ConfigInit() error
	ReadKeymapConfig() (settings.KeymapConfig, error)
	UpdateKeymapConfig(cfg settings.KeymapConfig) error

	AudioEnabled() bool
	PlaySong(song audio.Song)
	StopAllNotes()

	CapsWordOn()
}

// Record is a key event already classified by the scanner. TapCount is zero
// while a dual-role key is being held.
type Record struct {
	Pos      keymap.Position
	Pressed  bool
	TapCount uint8
}

// Capabilities lists the optional subsystems a build provides.
type Capabilities struct {
	Audio    bool `yaml:"audio"`
	Encoders bool `yaml:"encoders"`
}
