package keycode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownName = errors.New("unknown keycode name")

var names = map[Keycode]string{
	KC_NO: "KC_NO", KC_TRNS: "KC_TRNS",

	KC_A: "KC_A", KC_B: "KC_B", KC_C: "KC_C", KC_D: "KC_D", KC_E: "KC_E", KC_F: "KC_F",
	KC_G: "KC_G", KC_H: "KC_H", KC_I: "KC_I", KC_J: "KC_J", KC_K: "KC_K", KC_L: "KC_L",
	KC_M: "KC_M", KC_N: "KC_N", KC_O: "KC_O", KC_P: "KC_P", KC_Q: "KC_Q", KC_R: "KC_R",
	KC_S: "KC_S", KC_T: "KC_T", KC_U: "KC_U", KC_V: "KC_V", KC_W: "KC_W", KC_X: "KC_X",
	KC_Y: "KC_Y", KC_Z: "KC_Z",

	KC_1: "KC_1", KC_2: "KC_2", KC_3: "KC_3", KC_4: "KC_4", KC_5: "KC_5",
	KC_6: "KC_6", KC_7: "KC_7", KC_8: "KC_8", KC_9: "KC_9", KC_0: "KC_0",

	KC_ENT: "KC_ENT", KC_ESC: "KC_ESC", KC_BSPC: "KC_BSPC", KC_TAB: "KC_TAB",
	KC_SPC: "KC_SPC", KC_MINS: "KC_MINS", KC_EQL: "KC_EQL", KC_LBRC: "KC_LBRC",
	KC_RBRC: "KC_RBRC", KC_BSLS: "KC_BSLS", KC_SCLN: "KC_SCLN", KC_QUOT: "KC_QUOT",
	KC_GRV: "KC_GRV", KC_COMM: "KC_COMM", KC_DOT: "KC_DOT", KC_SLSH: "KC_SLSH",
	KC_CAPS: "KC_CAPS",

	KC_F1: "KC_F1", KC_F2: "KC_F2", KC_F3: "KC_F3", KC_F4: "KC_F4", KC_F5: "KC_F5",
	KC_F6: "KC_F6", KC_F7: "KC_F7", KC_F8: "KC_F8", KC_F9: "KC_F9", KC_F10: "KC_F10",
	KC_F11: "KC_F11", KC_F12: "KC_F12",

	KC_HOME: "KC_HOME", KC_PGUP: "KC_PGUP", KC_DEL: "KC_DEL", KC_END: "KC_END",
	KC_PGDN: "KC_PGDN", KC_RGHT: "KC_RGHT", KC_LEFT: "KC_LEFT", KC_DOWN: "KC_DOWN",
	KC_UP: "KC_UP", KC_PAST: "KC_PAST", KC_PPLS: "KC_PPLS",

	KC_VOLU: "KC_VOLU", KC_VOLD: "KC_VOLD", KC_MNXT: "KC_MNXT", KC_MPRV: "KC_MPRV",
	KC_MPLY: "KC_MPLY", KC_WH_U: "KC_WH_U", KC_WH_D: "KC_WH_D",

	KC_LCTL: "KC_LCTL", KC_LSFT: "KC_LSFT", KC_LALT: "KC_LALT", KC_LGUI: "KC_LGUI",
	KC_RCTL: "KC_RCTL", KC_RSFT: "KC_RSFT", KC_RALT: "KC_RALT", KC_RGUI: "KC_RGUI",

	KC_TILD: "KC_TILD", KC_EXLM: "KC_EXLM", KC_AT: "KC_AT", KC_HASH: "KC_HASH",
	KC_DLR: "KC_DLR", KC_PERC: "KC_PERC", KC_CIRC: "KC_CIRC", KC_AMPR: "KC_AMPR",
	KC_ASTR: "KC_ASTR", KC_LPRN: "KC_LPRN", KC_RPRN: "KC_RPRN", KC_UNDS: "KC_UNDS",
	KC_PLUS: "KC_PLUS", KC_LCBR: "KC_LCBR", KC_RCBR: "KC_RCBR", KC_PIPE: "KC_PIPE",
	KC_COLN: "KC_COLN", KC_DQUO: "KC_DQUO", KC_LT: "KC_LT", KC_GT: "KC_GT",
	KC_QUES: "KC_QUES",

	QK_BOOT: "QK_BOOT", DB_TOGG: "DB_TOGG", EE_CLR: "EE_CLR",
	AG_SWAP: "AG_SWAP", AG_NORM: "AG_NORM",
	MI_ON: "MI_ON", MI_OFF: "MI_OFF",
	AU_ON: "AU_ON", AU_OFF: "AU_OFF", AU_TOGG: "AU_TOGG", CK_TOGG: "CK_TOGG",
	MU_ON: "MU_ON", MU_OFF: "MU_OFF", MU_TOGG: "MU_TOGG", MU_NEXT: "MU_NEXT",
	AU_NEXT: "AU_NEXT", AU_PREV: "AU_PREV",
	RGB_TOG: "RGB_TOG", RGB_MOD: "RGB_MOD", RGB_RMOD: "RGB_RMOD",
	RGB_HUI: "RGB_HUI", RGB_HUD: "RGB_HUD", RGB_SAI: "RGB_SAI",
	RGB_SAD: "RGB_SAD", RGB_VAI: "RGB_VAI", RGB_VAD: "RGB_VAD",
}

var byName map[string]Keycode

func init() {
	byName = make(map[string]Keycode, len(names))
	for kc, name := range names {
		byName[name] = kc
	}
}

// Named reports whether kc has an entry in the name table.
func Named(kc Keycode) bool {
	_, ok := names[kc]
	return ok
}

// Parse looks up a keycode by name. The KC_ prefix may be omitted, and raw
// values such as 0x2215 are accepted for keycodes without a name.
func Parse(name string) (Keycode, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if kc, ok := byName[name]; ok {
		return kc, nil
	}
	if strings.HasPrefix(name, "0X") {
		v, err := strconv.ParseUint(name[2:], 16, 16)
		if err != nil {
			return KC_NO, fmt.Errorf("%w: %q", ErrUnknownName, name)
		}
		return Keycode(v), nil
	}
	if kc, ok := byName["KC_"+name]; ok {
		return kc, nil
	}
	return KC_NO, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// Valid reports whether kc is something the runtime knows how to act on.
// Keymaps extend this with their own user keycodes.
func Valid(kc Keycode) bool {
	switch {
	case kc.IsBasic(), kc.IsQuantum():
		return Named(kc)
	case kc.IsMods(), kc.IsModTap():
		return kc.Mods() != 0 && Named(kc.Basic())
	case kc.IsMomentary(), kc.IsOneShotMod():
		return true
	}
	return false
}
