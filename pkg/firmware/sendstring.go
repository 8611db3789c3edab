package firmware

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"fmt"
)

// Control bytes understood by SendString. Each is followed by one basic keycode.
const (
	ssDown = 0x02
	ssUp   = 0x03
)

func SSDown(kc keycode.Keycode) string { return string([]byte{ssDown, byte(kc.Basic())}) }
func SSUp(kc keycode.Keycode) string   { return string([]byte{ssUp, byte(kc.Basic())}) }

// SSLCtl types s with left control held.
func SSLCtl(s string) string {
	return SSDown(keycode.KC_LCTL) + s + SSUp(keycode.KC_LCTL)
}

// SendString types s on a US host layout. Control bytes built with SSDown
// and SSUp hold and release raw keycodes instead.
func (r *Runtime) SendString(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]

		switch c {
		case ssDown, ssUp:
			if i+1 >= len(s) {
				return fmt.Errorf("send string: control byte 0x%02x at end of string", c)
			}
			i++
			kc := keycode.Keycode(s[i])

			if err := r.report(kc, c == ssDown); err != nil {
				return fmt.Errorf("send string: %w", err)
			}
			continue
		}

		kc, ok := keycode.FromASCII(c)
		if !ok {
			r.log.Debugw("send string: skipping untypeable character", "char", c)
			continue
		}
		if err := r.TapCode16(kc); err != nil {
			return fmt.Errorf("send string: %w", err)
		}
	}

	return nil
}
