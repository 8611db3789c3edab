package uinput

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"github.com/holoplot/go-evdev"
)

var evdevCodes = map[keycode.Keycode]evdev.EvCode{
	keycode.KC_A: evdev.KEY_A, keycode.KC_B: evdev.KEY_B, keycode.KC_C: evdev.KEY_C,
	keycode.KC_D: evdev.KEY_D, keycode.KC_E: evdev.KEY_E, keycode.KC_F: evdev.KEY_F,
	keycode.KC_G: evdev.KEY_G, keycode.KC_H: evdev.KEY_H, keycode.KC_I: evdev.KEY_I,
	keycode.KC_J: evdev.KEY_J, keycode.KC_K: evdev.KEY_K, keycode.KC_L: evdev.KEY_L,
	keycode.KC_M: evdev.KEY_M, keycode.KC_N: evdev.KEY_N, keycode.KC_O: evdev.KEY_O,
	keycode.KC_P: evdev.KEY_P, keycode.KC_Q: evdev.KEY_Q, keycode.KC_R: evdev.KEY_R,
	keycode.KC_S: evdev.KEY_S, keycode.KC_T: evdev.KEY_T, keycode.KC_U: evdev.KEY_U,
	keycode.KC_V: evdev.KEY_V, keycode.KC_W: evdev.KEY_W, keycode.KC_X: evdev.KEY_X,
	keycode.KC_Y: evdev.KEY_Y, keycode.KC_Z: evdev.KEY_Z,

	keycode.KC_1: evdev.KEY_1, keycode.KC_2: evdev.KEY_2, keycode.KC_3: evdev.KEY_3,
	keycode.KC_4: evdev.KEY_4, keycode.KC_5: evdev.KEY_5, keycode.KC_6: evdev.KEY_6,
	keycode.KC_7: evdev.KEY_7, keycode.KC_8: evdev.KEY_8, keycode.KC_9: evdev.KEY_9,
	keycode.KC_0: evdev.KEY_0,

	keycode.KC_ENT:  evdev.KEY_ENTER,
	keycode.KC_ESC:  evdev.KEY_ESC,
	keycode.KC_BSPC: evdev.KEY_BACKSPACE,
	keycode.KC_TAB:  evdev.KEY_TAB,
	keycode.KC_SPC:  evdev.KEY_SPACE,
	keycode.KC_MINS: evdev.KEY_MINUS,
	keycode.KC_EQL:  evdev.KEY_EQUAL,
	keycode.KC_LBRC: evdev.KEY_LEFTBRACE,
	keycode.KC_RBRC: evdev.KEY_RIGHTBRACE,
	keycode.KC_BSLS: evdev.KEY_BACKSLASH,
	keycode.KC_SCLN: evdev.KEY_SEMICOLON,
	keycode.KC_QUOT: evdev.KEY_APOSTROPHE,
	keycode.KC_GRV:  evdev.KEY_GRAVE,
	keycode.KC_COMM: evdev.KEY_COMMA,
	keycode.KC_DOT:  evdev.KEY_DOT,
	keycode.KC_SLSH: evdev.KEY_SLASH,
	keycode.KC_CAPS: evdev.KEY_CAPSLOCK,

	keycode.KC_F1: evdev.KEY_F1, keycode.KC_F2: evdev.KEY_F2, keycode.KC_F3: evdev.KEY_F3,
	keycode.KC_F4: evdev.KEY_F4, keycode.KC_F5: evdev.KEY_F5, keycode.KC_F6: evdev.KEY_F6,
	keycode.KC_F7: evdev.KEY_F7, keycode.KC_F8: evdev.KEY_F8, keycode.KC_F9: evdev.KEY_F9,
	keycode.KC_F10: evdev.KEY_F10, keycode.KC_F11: evdev.KEY_F11, keycode.KC_F12: evdev.KEY_F12,

	keycode.KC_HOME: evdev.KEY_HOME,
	keycode.KC_PGUP: evdev.KEY_PAGEUP,
	keycode.KC_DEL:  evdev.KEY_DELETE,
	keycode.KC_END:  evdev.KEY_END,
	keycode.KC_PGDN: evdev.KEY_PAGEDOWN,
	keycode.KC_RGHT: evdev.KEY_RIGHT,
	keycode.KC_LEFT: evdev.KEY_LEFT,
	keycode.KC_DOWN: evdev.KEY_DOWN,
	keycode.KC_UP:   evdev.KEY_UP,
	keycode.KC_PAST: evdev.KEY_KPASTERISK,
	keycode.KC_PPLS: evdev.KEY_KPPLUS,

	keycode.KC_VOLU: evdev.KEY_VOLUMEUP,
	keycode.KC_VOLD: evdev.KEY_VOLUMEDOWN,
	keycode.KC_MNXT: evdev.KEY_NEXTSONG,
	keycode.KC_MPRV: evdev.KEY_PREVIOUSSONG,
	keycode.KC_MPLY: evdev.KEY_PLAYPAUSE,

	keycode.KC_LCTL: evdev.KEY_LEFTCTRL,
	keycode.KC_LSFT: evdev.KEY_LEFTSHIFT,
	keycode.KC_LALT: evdev.KEY_LEFTALT,
	keycode.KC_LGUI: evdev.KEY_LEFTMETA,
	keycode.KC_RCTL: evdev.KEY_RIGHTCTRL,
	keycode.KC_RSFT: evdev.KEY_RIGHTSHIFT,
	keycode.KC_RALT: evdev.KEY_RIGHTALT,
	keycode.KC_RGUI: evdev.KEY_RIGHTMETA,
}

// EvdevCode returns the Linux input code for a basic keycode.
func EvdevCode(kc keycode.Keycode) (evdev.EvCode, bool) {
	code, ok := evdevCodes[kc]
	return code, ok
}

func capabilities() map[evdev.EvType][]evdev.EvCode {
	keys := make([]evdev.EvCode, 0, len(evdevCodes))
	for _, code := range evdevCodes {
		keys = append(keys, code)
	}

	return map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: keys,
		evdev.EV_REL: {evdev.REL_WHEEL},
	}
}
