package keycode

// Quantum keycodes drive runtime features rather than HID output.
const (
	QK_BOOT Keycode = 0x7C00
	DB_TOGG Keycode = 0x7C02
	EE_CLR  Keycode = 0x7C03

	AG_SWAP Keycode = 0x7014
	AG_NORM Keycode = 0x7015

	MI_ON  Keycode = 0x7100
	MI_OFF Keycode = 0x7101

	AU_ON   Keycode = 0x7480
	AU_OFF  Keycode = 0x7481
	AU_TOGG Keycode = 0x7482
	CK_TOGG Keycode = 0x748A
	MU_ON   Keycode = 0x7490
	MU_OFF  Keycode = 0x7491
	MU_TOGG Keycode = 0x7492
	MU_NEXT Keycode = 0x7493
	AU_NEXT Keycode = 0x7494
	AU_PREV Keycode = 0x7495

	RGB_TOG  Keycode = 0x7820
	RGB_MOD  Keycode = 0x7821
	RGB_RMOD Keycode = 0x7822
	RGB_HUI  Keycode = 0x7823
	RGB_HUD  Keycode = 0x7824
	RGB_SAI  Keycode = 0x7825
	RGB_SAD  Keycode = 0x7826
	RGB_VAI  Keycode = 0x7827
	RGB_VAD  Keycode = 0x7828
)

// IsRGB reports whether kc belongs to the lighting controls.
func IsRGB(kc Keycode) bool {
	return kc >= RGB_TOG && kc <= RGB_VAD
}
