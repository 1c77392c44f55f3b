//go:build !tinygo

package hal

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal renders the visible buffer into the terminal with half-block
// cells and feeds key events into the keystate bitmap.
//
// Terminals report presses only, so each key reads as held for exactly one
// KeyState call and released on the next.
func RunTerminal(ctx context.Context, cfg HostConfig, run func(context.Context, HAL) error) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	kbd := &termKeyboard{}
	h := newHostHAL(ctx, cfg, kbd)

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, h)
	}()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	r := &termRenderer{screen: screen, disp: h.disp}
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			return err
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					cancel()
					continue
				}
				if code, ok := termKeyCode(ev); ok {
					kbd.press(code)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			r.draw()
		}
	}
}

func termKeyCode(ev *tcell.EventKey) (KeyCode, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return KeyEscape, true
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyTab:
		return KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, true
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyRune:
		return runeKeyCode(ev.Rune())
	}
	return 0, false
}

type termKeyboard struct {
	mu      sync.Mutex
	pending KeyState
}

func (k *termKeyboard) press(code KeyCode) {
	k.mu.Lock()
	k.pending.Press(code)
	k.mu.Unlock()
}

func (k *termKeyboard) KeyState() KeyState {
	k.mu.Lock()
	defer k.mu.Unlock()
	s := k.pending
	k.pending = KeyState{}
	if !s.Any() {
		s[0] |= 1
	}
	return s
}

type termRenderer struct {
	screen  tcell.Screen
	disp    *MemDisplay
	scratch []byte
}

// draw downsamples the visible buffer onto the terminal grid. Each cell is
// two stacked samples; a sample takes the brightest pixel of its block so
// one-pixel lines survive the reduction.
func (r *termRenderer) draw() {
	w, h := r.disp.Width(), r.disp.Height()
	if r.scratch == nil {
		r.scratch = make([]byte, w*h*2)
	}
	r.disp.Snapshot(r.scratch)

	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	bw := (w + cols - 1) / cols
	bh := (h + rows*2 - 1) / (rows * 2)
	if bh < 1 {
		bh = 1
	}
	if bw < bh {
		bw = bh
	}
	if bh < bw/2 {
		bh = (bw + 1) / 2
	}

	r.screen.Clear()
	for cy := 0; cy < rows; cy++ {
		y0 := cy * 2 * bh
		if y0 >= h {
			break
		}
		for cx := 0; cx < cols; cx++ {
			x0 := cx * bw
			if x0 >= w {
				break
			}
			top := r.sample(x0, y0, bw, bh, w, h)
			bot := r.sample(x0, y0+bh, bw, bh, w, h)
			style := tcell.StyleDefault.Foreground(top).Background(bot)
			r.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	r.screen.Show()
}

func (r *termRenderer) sample(x0, y0, bw, bh, w, h int) tcell.Color {
	var best uint16
	var bestSum int
	for y := y0; y < y0+bh && y < h; y++ {
		row := y * w * 2
		for x := x0; x < x0+bw && x < w; x++ {
			off := row + x*2
			p := uint16(r.scratch[off]) | uint16(r.scratch[off+1])<<8
			sum := int(p>>11) + int((p>>5)&0x3F)/2 + int(p&0x1F)
			if sum > bestSum {
				best, bestSum = p, sum
			}
		}
	}
	c := RGBA(best)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
