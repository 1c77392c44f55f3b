package hal

// runeKeyCode maps a printable rune to its HID usage on a US layout.
func runeKeyCode(r rune) (KeyCode, bool) {
	switch {
	case r == ' ':
		return KeySpace, true
	case r == '\t':
		return KeyTab, true
	case r == '0':
		return Key0, true
	case r >= '1' && r <= '9':
		return Key1 + KeyCode(r-'1'), true
	case r >= 'a' && r <= 'z':
		return KeyA + KeyCode(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + KeyCode(r-'A'), true
	case r == '=' || r == '+':
		return KeyEqual, true
	case r == '-' || r == '_':
		return KeyMinus, true
	case r == '[' || r == '{':
		return KeyLeftBrace, true
	case r == ']' || r == '}':
		return KeyRightBrace, true
	}
	return 0, false
}
