package keycode

// FromASCII returns the keycode that types c on a US host layout, with the
// shift modifier folded in where needed.
func FromASCII(c byte) (Keycode, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return KC_A + Keycode(c-'a'), true
	case c >= 'A' && c <= 'Z':
		return shifted | (KC_A + Keycode(c-'A')), true
	case c >= '1' && c <= '9':
		return KC_1 + Keycode(c-'1'), true
	case c == '0':
		return KC_0, true
	}

	kc, ok := asciiSymbols[c]
	return kc, ok
}

var asciiSymbols = map[byte]Keycode{
	'\b': KC_BSPC, '\t': KC_TAB, '\n': KC_ENT, '\x1b': KC_ESC, ' ': KC_SPC,
	'!': KC_EXLM, '"': KC_DQUO, '#': KC_HASH, '$': KC_DLR, '%': KC_PERC,
	'&': KC_AMPR, '\'': KC_QUOT, '(': KC_LPRN, ')': KC_RPRN, '*': KC_ASTR,
	'+': KC_PLUS, ',': KC_COMM, '-': KC_MINS, '.': KC_DOT, '/': KC_SLSH,
	':': KC_COLN, ';': KC_SCLN, '<': KC_LT, '=': KC_EQL, '>': KC_GT,
	'?': KC_QUES, '@': KC_AT, '[': KC_LBRC, '\\': KC_BSLS, ']': KC_RBRC,
	'^': KC_CIRC, '_': KC_UNDS, '`': KC_GRV, '{': KC_LCBR, '|': KC_PIPE,
	'}': KC_RCBR, '~': KC_TILD,
}
