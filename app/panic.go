package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"
)

var panicInk = color.RGBA{A: 0xFF}

// showPanic logs the stack and paints it, black on white, into the hidden
// buffer, then shows that buffer. It draws as much as fits.
func (s *System) showPanic(v any, stack []byte) {
	defer func() {
		// A panic while painting the panic screen leaves the log only.
		_ = recover()
	}()

	lines := []string{"Panic:", fmt.Sprintf("panic: %v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			s.logf("%s", line)
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	id := s.swap.Inactive()
	fb := s.h.Display().Framebuffer(id)
	if fb == nil {
		return
	}
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	fw, fh := s.paint.FontSize()
	if fw <= 0 || fh <= 0 {
		_ = s.h.Display().Show(id)
		return
	}
	cols := s.width / fw
	if cols <= 0 {
		cols = 1
	}
	s.paint.SetTextScale(1)

	y := 0
wrap:
	for _, line := range lines {
		for len(line) > 0 {
			if y+fh > s.height {
				break wrap
			}
			chunk, rest := takeRunes(line, cols)
			s.paint.SetCursor(0, y)
			s.paint.DrawText(chunk, panicInk, id)
			y += fh
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = s.h.Display().Show(id)
	if led := s.h.LED(); led != nil {
		led.Low()
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
