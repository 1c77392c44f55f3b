package hal

import (
	"image/color"
	"testing"
)

func TestRGB565(t *testing.T) {
	for _, tc := range []struct {
		c    color.RGBA
		want uint16
	}{
		{color.RGBA{A: 0xFF}, 0x0000},
		{color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, 0xFFFF},
		{color.RGBA{R: 0xFF, A: 0xFF}, 0xF800},
		{color.RGBA{G: 0xFF, A: 0xFF}, 0x07E0},
		{color.RGBA{B: 0xFF, A: 0xFF}, 0x001F},
	} {
		if got := RGB565(tc.c); got != tc.want {
			t.Fatalf("RGB565(%v)=%#04x, want %#04x", tc.c, got, tc.want)
		}
		if back := RGB565(RGBA(tc.want)); back != tc.want {
			t.Fatalf("RGBA(%#04x) does not pack back: %#04x", tc.want, back)
		}
	}
}
