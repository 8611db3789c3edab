package keycode

// Basic keycodes are USB HID keyboard usages.
const (
	KC_NO   Keycode = 0x0000
	KC_TRNS Keycode = 0x0001

	KC_A Keycode = 0x0004
	KC_B Keycode = 0x0005
	KC_C Keycode = 0x0006
	KC_D Keycode = 0x0007
	KC_E Keycode = 0x0008
	KC_F Keycode = 0x0009
	KC_G Keycode = 0x000A
	KC_H Keycode = 0x000B
	KC_I Keycode = 0x000C
	KC_J Keycode = 0x000D
	KC_K Keycode = 0x000E
	KC_L Keycode = 0x000F
	KC_M Keycode = 0x0010
	KC_N Keycode = 0x0011
	KC_O Keycode = 0x0012
	KC_P Keycode = 0x0013
	KC_Q Keycode = 0x0014
	KC_R Keycode = 0x0015
	KC_S Keycode = 0x0016
	KC_T Keycode = 0x0017
	KC_U Keycode = 0x0018
	KC_V Keycode = 0x0019
	KC_W Keycode = 0x001A
	KC_X Keycode = 0x001B
	KC_Y Keycode = 0x001C
	KC_Z Keycode = 0x001D

	KC_1 Keycode = 0x001E
	KC_2 Keycode = 0x001F
	KC_3 Keycode = 0x0020
	KC_4 Keycode = 0x0021
	KC_5 Keycode = 0x0022
	KC_6 Keycode = 0x0023
	KC_7 Keycode = 0x0024
	KC_8 Keycode = 0x0025
	KC_9 Keycode = 0x0026
	KC_0 Keycode = 0x0027

	KC_ENT  Keycode = 0x0028
	KC_ESC  Keycode = 0x0029
	KC_BSPC Keycode = 0x002A
	KC_TAB  Keycode = 0x002B
	KC_SPC  Keycode = 0x002C
	KC_MINS Keycode = 0x002D
	KC_EQL  Keycode = 0x002E
	KC_LBRC Keycode = 0x002F
	KC_RBRC Keycode = 0x0030
	KC_BSLS Keycode = 0x0031
	KC_SCLN Keycode = 0x0033
	KC_QUOT Keycode = 0x0034
	KC_GRV  Keycode = 0x0035
	KC_COMM Keycode = 0x0036
	KC_DOT  Keycode = 0x0037
	KC_SLSH Keycode = 0x0038
	KC_CAPS Keycode = 0x0039

	KC_F1  Keycode = 0x003A
	KC_F2  Keycode = 0x003B
	KC_F3  Keycode = 0x003C
	KC_F4  Keycode = 0x003D
	KC_F5  Keycode = 0x003E
	KC_F6  Keycode = 0x003F
	KC_F7  Keycode = 0x0040
	KC_F8  Keycode = 0x0041
	KC_F9  Keycode = 0x0042
	KC_F10 Keycode = 0x0043
	KC_F11 Keycode = 0x0044
	KC_F12 Keycode = 0x0045

	KC_HOME Keycode = 0x004A
	KC_PGUP Keycode = 0x004B
	KC_DEL  Keycode = 0x004C
	KC_END  Keycode = 0x004D
	KC_PGDN Keycode = 0x004E
	KC_RGHT Keycode = 0x004F
	KC_LEFT Keycode = 0x0050
	KC_DOWN Keycode = 0x0051
	KC_UP   Keycode = 0x0052

	KC_PAST Keycode = 0x0055
	KC_PPLS Keycode = 0x0057

	KC_VOLU Keycode = 0x00A9
	KC_VOLD Keycode = 0x00AA
	KC_MNXT Keycode = 0x00AB
	KC_MPRV Keycode = 0x00AC
	KC_MPLY Keycode = 0x00AE

	KC_WH_U Keycode = 0x00D9
	KC_WH_D Keycode = 0x00DA

	KC_LCTL Keycode = 0x00E0
	KC_LSFT Keycode = 0x00E1
	KC_LALT Keycode = 0x00E2
	KC_LGUI Keycode = 0x00E3
	KC_RCTL Keycode = 0x00E4
	KC_RSFT Keycode = 0x00E5
	KC_RALT Keycode = 0x00E6
	KC_RGUI Keycode = 0x00E7
)

// Shifted symbols. These need 16-bit sends since they carry a modifier.
const (
	shifted Keycode = Keycode(ModLSft) << 8

	KC_TILD = shifted | KC_GRV
	KC_EXLM = shifted | KC_1
	KC_AT   = shifted | KC_2
	KC_HASH = shifted | KC_3
	KC_DLR  = shifted | KC_4
	KC_PERC = shifted | KC_5
	KC_CIRC = shifted | KC_6
	KC_AMPR = shifted | KC_7
	KC_ASTR = shifted | KC_8
	KC_LPRN = shifted | KC_9
	KC_RPRN = shifted | KC_0
	KC_UNDS = shifted | KC_MINS
	KC_PLUS = shifted | KC_EQL
	KC_LCBR = shifted | KC_LBRC
	KC_RCBR = shifted | KC_RBRC
	KC_PIPE = shifted | KC_BSLS
	KC_COLN = shifted | KC_SCLN
	KC_DQUO = shifted | KC_QUOT
	KC_LT   = shifted | KC_COMM
	KC_GT   = shifted | KC_DOT
	KC_QUES = shifted | KC_SLSH
)

// IsAlpha reports whether kc is a letter key.
func IsAlpha(kc Keycode) bool {
	return kc >= KC_A && kc <= KC_Z
}

// IsModifier reports whether kc is one of the eight basic modifier keys.
func IsModifier(kc Keycode) bool {
	return kc >= KC_LCTL && kc <= KC_RGUI
}
