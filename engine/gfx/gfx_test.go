package gfx

import (
	"image/color"
	"testing"

	"spincube/hal"
)

func pixelAt(fb hal.Framebuffer, x, y int) uint16 {
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}

func countLit(fb hal.Framebuffer) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if pixelAt(fb, x, y) != 0 {
				n++
			}
		}
	}
	return n
}

func TestDrawLineEndpoints(t *testing.T) {
	d := hal.NewMemDisplay(32, 16)
	p := NewPainter(d)
	p.DrawLine(White, 2, 3, 20, 11, 1)
	fb := d.Framebuffer(1)
	if pixelAt(fb, 2, 3) != 0xFFFF || pixelAt(fb, 20, 11) != 0xFFFF {
		t.Fatalf("endpoints not drawn")
	}
	if countLit(fb) != 19 {
		t.Fatalf("lit=%d want 19", countLit(fb))
	}
	if countLit(d.Framebuffer(0)) != 0 {
		t.Fatalf("other buffer touched")
	}
}

func TestDrawClipsOffscreen(t *testing.T) {
	d := hal.NewMemDisplay(8, 8)
	p := NewPainter(d)
	p.DrawLine(White, -100, -50, 100, 60, 0)
	p.DrawCircle(White, 7, 7, 20, 0)
	p.FillRect(White, -5, -5, 3, 3, 0)
	p.DrawPixel(White, 8, 0, 0)
	p.DrawPixel(White, -1, 3, 0)
	fb := d.Framebuffer(0)
	if pixelAt(fb, 0, 1) != 0 {
		t.Fatalf("x=8 wrapped into next row")
	}
}

func TestDrawCircleSymmetric(t *testing.T) {
	d := hal.NewMemDisplay(40, 40)
	p := NewPainter(d)
	p.DrawCircle(White, 20, 20, 8, 0)
	fb := d.Framebuffer(0)
	for _, pt := range [][2]int{{28, 20}, {12, 20}, {20, 28}, {20, 12}} {
		if pixelAt(fb, pt[0], pt[1]) == 0 {
			t.Fatalf("circle missing %v", pt)
		}
	}
	if pixelAt(fb, 20, 20) != 0 {
		t.Fatalf("centre filled")
	}
}

func TestRectAndFill(t *testing.T) {
	d := hal.NewMemDisplay(20, 20)
	p := NewPainter(d)
	p.DrawRect(White, 2, 2, 5, 4, 0)
	fb := d.Framebuffer(0)
	if countLit(fb) != 14 {
		t.Fatalf("outline lit=%d", countLit(fb))
	}
	p.FillRect(White, 10, 10, 3, 3, 0)
	if countLit(fb) != 23 {
		t.Fatalf("after fill lit=%d", countLit(fb))
	}
}

func TestClearUsesBackground(t *testing.T) {
	d := hal.NewMemDisplay(4, 4)
	p := NewPainter(d)
	p.SetBackground(color.RGBA{R: 0xFF, A: 0xFF})
	p.ClearBuffer(1)
	if got := pixelAt(d.Framebuffer(1), 3, 3); got != 0xF800 {
		t.Fatalf("pixel=%04x", got)
	}
}

func TestDrawTextScales(t *testing.T) {
	d := hal.NewMemDisplay(120, 40)
	p := NewPainter(d)
	p.SetCursor(2, 2)
	p.DrawText("01", White, 0)
	small := countLit(d.Framebuffer(0))
	if small == 0 {
		t.Fatalf("text drew nothing")
	}

	p.SetCursor(2, 10)
	p.SetTextScale(2)
	p.DrawText("01", White, 1)
	big := countLit(d.Framebuffer(1))
	if big != small*4 {
		t.Fatalf("scaled text lit=%d want %d", big, small*4)
	}
}

func TestDrawTextAdvancesCursor(t *testing.T) {
	d := hal.NewMemDisplay(120, 40)
	p := NewPainter(d)
	p.SetCursor(0, 0)
	p.DrawText("A", White, 0)
	w, _ := p.FontSize()
	if p.cx <= 0 || p.cx < w {
		t.Fatalf("cursor x=%d after one glyph (font w=%d)", p.cx, w)
	}
}

func TestSwapToShows(t *testing.T) {
	d := hal.NewMemDisplay(4, 4)
	p := NewPainter(d)
	if err := p.SwapTo(1); err != nil {
		t.Fatalf("swap: %v", err)
	}
	if d.Shown() != 1 {
		t.Fatalf("shown=%d", d.Shown())
	}
}
