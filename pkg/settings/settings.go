package settings

import "errors"

// ErrNotInitialized is returned when reading settings for a keyboard that never
// had them initialized.
var ErrNotInitialized = errors.New("settings not initialized")

// KeymapConfig holds the persisted keymap flags.
type KeymapConfig struct {
	NKRO       bool `json:"nkro"`
	SwapAltGui bool `json:"swap_alt_gui"`
}

// Settings is everything a keyboard remembers across restarts.
type Settings struct {
	DefaultLayer uint8        `json:"default_layer"`
	Keymap       KeymapConfig `json:"keymap"`
	Audio        bool         `json:"audio"`
}

// Defaults is what a freshly initialized keyboard starts with.
func Defaults() Settings {
	return Settings{
		DefaultLayer: 0,
		Audio:        true,
	}
}
