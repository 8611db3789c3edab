// Package planck is the keymap for the 4x12 grid board with a dip switch,
// an encoder and a speaker.
package planck

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
)

const Name = "planck"

const (
	Dvorak uint8 = iota
	Qwerty
	Colemak
	Lower
	Raise
	Plover
	Adjust
	Nav
)

var layerNames = []string{"dvorak", "qwerty", "colemak", "lower", "raise", "plover", "adjust", "nav"}

const (
	QWERTY keycode.Keycode = keycode.SafeRange + iota
	COLEMAK
	DVORAK
	PLOVER
	BACKLIT
	EXT_PLV
	MT_TILD
	MT_DQUO
	MA_WI_COPY
	MA_WI_CUT
	MA_WI_PSTE
)

const (
	_______ = keycode.KC_TRNS
	XXXXXXX = keycode.KC_NO
)

var (
	LOWER = keycode.MO(Lower)
	RAISE = keycode.MO(Raise)
	NAV   = keycode.MO(Nav)

	BR_SCLN = keycode.LGuiT(keycode.KC_SCLN)
	BR_Q    = keycode.LAltT(keycode.KC_Q)
	BR_J    = keycode.LSftT(keycode.KC_J)
	BR_K    = keycode.LCtlT(keycode.KC_K)
	BR_M    = keycode.RCtlT(keycode.KC_M)
	BR_W    = keycode.RSftT(keycode.KC_W)
	BR_V    = keycode.LAltT(keycode.KC_V)
	BR_Z    = keycode.RGuiT(keycode.KC_Z)

	// Tap codes sent by ProcessRecord.
	BR_TILD = keycode.LGuiT(MT_TILD)
	BR_DQUO = keycode.LSftT(MT_DQUO)
	BR_QUOT = keycode.LCtlT(keycode.KC_QUOT)
	BR_LBRC = keycode.RSftT(keycode.KC_LBRC)
	BR_RBRC = keycode.RAltT(keycode.KC_RBRC)
)

func layers() []keymap.Layer {
	g := keymap.PlanckGrid

	return []keymap.Layer{
		Dvorak: g.Build(
			keycode.KC_ESC, keycode.KC_QUOT, keycode.KC_COMM, keycode.KC_DOT, keycode.KC_P, keycode.KC_Y, keycode.KC_F, keycode.KC_G, keycode.KC_C, keycode.KC_R, keycode.KC_L, keycode.KC_BSPC,
			keycode.KC_TAB, keycode.KC_A, keycode.KC_O, keycode.KC_E, keycode.KC_U, keycode.KC_I, keycode.KC_D, keycode.KC_H, keycode.KC_T, keycode.KC_N, keycode.KC_S, keycode.KC_MINS,
			keycode.KC_LSFT, BR_SCLN, BR_Q, BR_J, BR_K, keycode.KC_X, keycode.KC_B, BR_M, BR_W, BR_V, BR_Z, keycode.KC_ENT,
			BACKLIT, keycode.KC_LGUI, keycode.KC_LCTL, NAV, LOWER, keycode.KC_ENT, keycode.KC_SPC, RAISE, keycode.KC_LEFT, keycode.KC_DOWN, keycode.KC_UP, keycode.KC_RGHT,
		),

		Qwerty: g.Build(
			keycode.KC_ESC, keycode.KC_Q, keycode.KC_W, keycode.KC_E, keycode.KC_R, keycode.KC_T, keycode.KC_Y, keycode.KC_U, keycode.KC_I, keycode.KC_O, keycode.KC_P, keycode.KC_BSPC,
			keycode.KC_TAB, keycode.KC_A, keycode.KC_S, keycode.KC_D, keycode.KC_F, keycode.KC_G, keycode.KC_H, keycode.KC_J, keycode.KC_K, keycode.KC_L, keycode.KC_SCLN, keycode.KC_QUOT,
			keycode.KC_LSFT, keycode.KC_Z, keycode.KC_X, keycode.KC_C, keycode.KC_V, keycode.KC_B, keycode.KC_N, keycode.KC_M, keycode.KC_COMM, keycode.KC_DOT, keycode.KC_SLSH, keycode.KC_ENT,
			BACKLIT, keycode.KC_LGUI, keycode.KC_LCTL, NAV, LOWER, keycode.KC_ENT, keycode.KC_SPC, RAISE, keycode.KC_LEFT, keycode.KC_DOWN, keycode.KC_UP, keycode.KC_RGHT,
		),

		Colemak: g.Build(
			keycode.KC_ESC, keycode.KC_Q, keycode.KC_W, keycode.KC_F, keycode.KC_P, keycode.KC_G, keycode.KC_J, keycode.KC_L, keycode.KC_U, keycode.KC_Y, keycode.KC_SCLN, keycode.KC_BSPC,
			keycode.KC_TAB, keycode.KC_A, keycode.KC_R, keycode.KC_S, keycode.KC_T, keycode.KC_D, keycode.KC_H, keycode.KC_N, keycode.KC_E, keycode.KC_I, keycode.KC_O, keycode.KC_QUOT,
			keycode.KC_LSFT, keycode.KC_Z, keycode.KC_X, keycode.KC_C, keycode.KC_V, keycode.KC_B, keycode.KC_K, keycode.KC_M, keycode.KC_COMM, keycode.KC_DOT, keycode.KC_SLSH, keycode.KC_ENT,
			BACKLIT, keycode.KC_LGUI, keycode.KC_LCTL, NAV, LOWER, keycode.KC_ENT, keycode.KC_SPC, RAISE, keycode.KC_LEFT, keycode.KC_DOWN, keycode.KC_UP, keycode.KC_RGHT,
		),

		Lower: g.Build(
			_______, keycode.KC_EXLM, keycode.KC_AT, keycode.KC_HASH, keycode.KC_DLR, keycode.KC_PERC, keycode.KC_CIRC, keycode.KC_AMPR, keycode.KC_LPRN, keycode.KC_RPRN, keycode.KC_QUES, keycode.KC_BSPC,
			keycode.KC_DEL, keycode.KC_GRV, keycode.KC_ASTR, keycode.KC_PLUS, keycode.KC_EQL, _______, keycode.KC_PIPE, keycode.KC_SLSH, keycode.KC_LCBR, keycode.KC_RCBR, keycode.KC_BSLS, _______,
			_______, BR_TILD, _______, BR_DQUO, BR_QUOT, _______, _______, _______, BR_LBRC, BR_RBRC, _______, _______,
			_______, _______, _______, _______, _______, _______, _______, _______, keycode.KC_MNXT, keycode.KC_VOLD, keycode.KC_VOLU, keycode.KC_MPLY,
		),

		Raise: g.Build(
			_______, keycode.KC_F1, keycode.KC_F2, keycode.KC_F3, keycode.KC_F4, keycode.KC_F5, keycode.KC_F6, keycode.KC_F7, keycode.KC_F8, keycode.KC_F9, keycode.KC_F10, keycode.KC_BSPC,
			keycode.KC_DEL, keycode.KC_1, keycode.KC_2, keycode.KC_3, keycode.KC_4, keycode.KC_5, keycode.KC_6, keycode.KC_7, keycode.KC_8, keycode.KC_9, keycode.KC_0, _______,
			_______, keycode.KC_F11, keycode.KC_F12, _______, _______, _______, _______, _______, _______, _______, _______, _______,
			_______, _______, _______, _______, _______, _______, _______, _______, keycode.KC_MNXT, keycode.KC_VOLD, keycode.KC_VOLU, keycode.KC_MPLY,
		),

		Plover: g.Build(
			keycode.KC_1, keycode.KC_1, keycode.KC_1, keycode.KC_1, keycode.KC_1, keycode.KC_1, keycode.KC_1, keycode.KC_1, keycode.KC_1, keycode.KC_1, keycode.KC_1, keycode.KC_1,
			XXXXXXX, keycode.KC_Q, keycode.KC_W, keycode.KC_E, keycode.KC_R, keycode.KC_T, keycode.KC_Y, keycode.KC_U, keycode.KC_I, keycode.KC_O, keycode.KC_P, keycode.KC_LBRC,
			XXXXXXX, keycode.KC_A, keycode.KC_S, keycode.KC_D, keycode.KC_F, keycode.KC_G, keycode.KC_H, keycode.KC_J, keycode.KC_K, keycode.KC_L, keycode.KC_SCLN, keycode.KC_QUOT,
			EXT_PLV, XXXXXXX, XXXXXXX, keycode.KC_C, keycode.KC_V, XXXXXXX, XXXXXXX, keycode.KC_N, keycode.KC_M, XXXXXXX, XXXXXXX, XXXXXXX,
		),

		Adjust: g.Build(
			_______, keycode.QK_BOOT, keycode.DB_TOGG, keycode.RGB_TOG, keycode.RGB_MOD, keycode.RGB_HUI, keycode.RGB_HUD, keycode.RGB_SAI, keycode.RGB_SAD, keycode.RGB_VAI, keycode.RGB_VAD, keycode.KC_DEL,
			_______, keycode.EE_CLR, keycode.MU_NEXT, keycode.AU_ON, keycode.AU_OFF, keycode.AG_NORM, keycode.AG_SWAP, QWERTY, COLEMAK, DVORAK, PLOVER, _______,
			_______, keycode.AU_PREV, keycode.AU_NEXT, keycode.MU_ON, keycode.MU_OFF, keycode.MI_ON, keycode.MI_OFF, _______, _______, _______, _______, _______,
			_______, _______, _______, _______, _______, _______, _______, _______, _______, _______, _______, _______,
		),

		Nav: g.Build(
			_______, _______, MA_WI_CUT, MA_WI_COPY, MA_WI_PSTE, _______, _______, _______, _______, _______, _______, keycode.KC_BSPC,
			keycode.KC_DEL, _______, keycode.KC_HOME, keycode.KC_LEFT, keycode.KC_RGHT, keycode.KC_PGUP, _______, _______, _______, _______, _______, _______,
			_______, _______, keycode.KC_END, keycode.KC_DOWN, keycode.KC_UP, keycode.KC_PGDN, _______, keycode.OSM(keycode.ModRCtl), keycode.OSM(keycode.ModRSft), keycode.OSM(keycode.ModRAlt), keycode.OSM(keycode.ModRGui), _______,
			_______, _______, _______, _______, _______, _______, _______, _______, keycode.KC_MNXT, keycode.KC_VOLD, keycode.KC_VOLU, keycode.KC_MPLY,
		),
	}
}

const (
	EscCombo = iota
	CapsCombo
)

func combos() []keymap.Combo {
	return []keymap.Combo{
		EscCombo:  {Keys: []keycode.Keycode{keycode.KC_J, keycode.KC_K}, Output: keycode.KC_ESC},
		CapsCombo: {Keys: []keycode.Keycode{BR_J, BR_W}},
	}
}

func encoders() keymap.EncoderMap {
	wheel := []keymap.EncoderAction{{CCW: keycode.KC_WH_U, CW: keycode.KC_WH_D}}

	return keymap.EncoderMap{
		Dvorak:  wheel,
		Qwerty:  wheel,
		Colemak: wheel,
		Nav:     wheel,
		Lower:   wheel,
		Plover:  wheel,
		Adjust:  wheel,
		Raise:   {{CCW: keycode.KC_VOLD, CW: keycode.KC_VOLU}},
	}
}
