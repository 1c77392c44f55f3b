//go:build !tinygo

package hal

import "testing"

func TestRuneKeyCode(t *testing.T) {
	cases := []struct {
		r    rune
		want KeyCode
	}{
		{' ', KeySpace},
		{'1', Key1},
		{'5', Key5},
		{'0', Key0},
		{'=', KeyEqual},
		{'+', KeyEqual},
		{'-', KeyMinus},
		{'[', KeyLeftBrace},
		{']', KeyRightBrace},
		{'a', KeyA},
		{'\t', KeyTab},
	}
	for _, c := range cases {
		got, ok := runeKeyCode(c.r)
		if !ok || got != c.want {
			t.Fatalf("runeKeyCode(%q)=%#x,%v want %#x", c.r, got, ok, c.want)
		}
	}
	if _, ok := runeKeyCode('~'); ok {
		t.Fatalf("unexpected mapping for ~")
	}
}

func TestTermKeyboardOneShot(t *testing.T) {
	k := &termKeyboard{}
	k.press(KeySpace)
	s := k.KeyState()
	if !s.Down(KeySpace) {
		t.Fatalf("space not reported")
	}
	s = k.KeyState()
	if s.Any() {
		t.Fatalf("space still held on second read")
	}
	if s[0]&1 == 0 {
		t.Fatalf("no-keys flag not set")
	}
}
