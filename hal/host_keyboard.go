//go:build !tinygo && cgo

package hal

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var ebitenKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyDigit1, Key1},
	{ebiten.KeyDigit2, Key2},
	{ebiten.KeyDigit3, Key3},
	{ebiten.KeyDigit4, Key4},
	{ebiten.KeyDigit5, Key5},
	{ebiten.KeyEqual, KeyEqual},
	{ebiten.KeyMinus, KeyMinus},
	{ebiten.KeyBracketLeft, KeyLeftBrace},
	{ebiten.KeyBracketRight, KeyRightBrace},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
}

type hostKeyboard struct {
	mu    sync.Mutex
	state KeyState
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{}
}

func (k *hostKeyboard) KeyState() KeyState {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state
}

// poll must run on the ebiten update goroutine.
func (k *hostKeyboard) poll() {
	var s KeyState
	for _, m := range ebitenKeys {
		if ebiten.IsKeyPressed(m.key) {
			s.Press(m.code)
		}
	}
	if !s.Any() {
		s[0] |= 1
	}
	k.mu.Lock()
	k.state = s
	k.mu.Unlock()
}
