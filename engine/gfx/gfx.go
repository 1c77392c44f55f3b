// Package gfx rasterises lines, pixels, circles, rectangles and text into
// the RGB565 buffers of a hal.Display.
package gfx

import (
	"image/color"

	"spincube/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Primitives is the drawing surface the renderer targets. Every draw call
// names the buffer it writes.
type Primitives interface {
	ClearBuffer(id hal.BufferID)
	SwapTo(id hal.BufferID) error
	DrawLine(c color.RGBA, x0, y0, x1, y1 int, id hal.BufferID)
	DrawPixel(c color.RGBA, x, y int, id hal.BufferID)
	DrawCircle(c color.RGBA, x, y, r int, id hal.BufferID)
	DrawRect(c color.RGBA, x, y, w, h int, id hal.BufferID)
	FillRect(c color.RGBA, x, y, w, h int, id hal.BufferID)
	SetCursor(x, y int)
	SetTextScale(n int)
	DrawText(s string, c color.RGBA, id hal.BufferID)
}

var (
	Black = color.RGBA{A: 0xFF}
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Painter implements Primitives over a double-buffered display. Everything
// is clipped to the buffer.
type Painter struct {
	disp hal.Display
	bg   uint16

	font       tinyfont.Fonter
	fontHeight int16
	fontWidth  int16

	cx, cy    int
	textScale int
}

// NewPainter uses the TomThumb font; background is black.
func NewPainter(disp hal.Display) *Painter {
	p := &Painter{
		disp:      disp,
		font:      &tinyfont.TomThumb,
		textScale: 1,
	}
	p.fontHeight = 6
	_, outbox := tinyfont.LineWidth(p.font, "0")
	p.fontWidth = int16(outbox)
	return p
}

// FontSize is the cell size of one glyph at text scale 1.
func (p *Painter) FontSize() (w, h int) { return int(p.fontWidth), int(p.fontHeight) }

func (p *Painter) SetBackground(c color.RGBA) { p.bg = hal.RGB565(c) }

func (p *Painter) target(id hal.BufferID) (buf []byte, stride, w, h int, ok bool) {
	fb := p.disp.Framebuffer(id)
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, 0, 0, 0, false
	}
	buf = fb.Buffer()
	if buf == nil {
		return nil, 0, 0, 0, false
	}
	return buf, fb.StrideBytes(), fb.Width(), fb.Height(), true
}

func (p *Painter) ClearBuffer(id hal.BufferID) {
	buf, _, _, _, ok := p.target(id)
	if !ok {
		return
	}
	clearRGB565(buf, p.bg)
}

func (p *Painter) SwapTo(id hal.BufferID) error {
	return p.disp.Show(id)
}

func (p *Painter) DrawPixel(c color.RGBA, x, y int, id hal.BufferID) {
	buf, stride, w, h, ok := p.target(id)
	if !ok {
		return
	}
	setPixelRGB565(buf, stride, w, h, x, y, hal.RGB565(c))
}

func (p *Painter) DrawLine(c color.RGBA, x0, y0, x1, y1 int, id hal.BufferID) {
	buf, stride, w, h, ok := p.target(id)
	if !ok {
		return
	}
	drawLineRGB565(buf, stride, w, h, x0, y0, x1, y1, hal.RGB565(c))
}

func (p *Painter) DrawCircle(c color.RGBA, x, y, r int, id hal.BufferID) {
	buf, stride, w, h, ok := p.target(id)
	if !ok || r < 0 {
		return
	}
	drawCircleRGB565(buf, stride, w, h, x, y, r, hal.RGB565(c))
}

func (p *Painter) DrawRect(c color.RGBA, x, y, rw, rh int, id hal.BufferID) {
	buf, stride, w, h, ok := p.target(id)
	if !ok || rw <= 0 || rh <= 0 {
		return
	}
	px := hal.RGB565(c)
	drawLineRGB565(buf, stride, w, h, x, y, x+rw-1, y, px)
	drawLineRGB565(buf, stride, w, h, x, y+rh-1, x+rw-1, y+rh-1, px)
	drawLineRGB565(buf, stride, w, h, x, y, x, y+rh-1, px)
	drawLineRGB565(buf, stride, w, h, x+rw-1, y, x+rw-1, y+rh-1, px)
}

func (p *Painter) FillRect(c color.RGBA, x, y, rw, rh int, id hal.BufferID) {
	buf, stride, w, h, ok := p.target(id)
	if !ok {
		return
	}
	fillRectRGB565(buf, stride, w, h, x, y, rw, rh, hal.RGB565(c))
}

// SetCursor places the top-left corner of the next DrawText.
func (p *Painter) SetCursor(x, y int) {
	p.cx, p.cy = x, y
}

// SetTextScale multiplies glyph pixels; values below 1 mean 1.
func (p *Painter) SetTextScale(n int) {
	if n < 1 {
		n = 1
	}
	p.textScale = n
}

// DrawText writes s at the cursor and leaves the cursor after the last glyph.
func (p *Painter) DrawText(s string, c color.RGBA, id hal.BufferID) {
	fb := p.disp.Framebuffer(id)
	if fb == nil {
		return
	}
	d := &fbDisplayer{fb: fb, ox: p.cx, oy: p.cy, scale: p.textScale}
	tinyfont.WriteLine(d, p.font, 0, p.fontHeight-1, s, c)
	_, outbox := tinyfont.LineWidth(p.font, s)
	p.cx += int(outbox) * p.textScale
}

// fbDisplayer adapts one framebuffer to drivers.Displayer. Glyph pixels are
// offset by (ox, oy) and blown up to scale x scale blocks.
type fbDisplayer struct {
	fb     hal.Framebuffer
	ox, oy int
	scale  int
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	s := d.scale
	if s < 1 {
		s = 1
	}
	fillRectRGB565(buf, d.fb.StrideBytes(), d.fb.Width(), d.fb.Height(),
		d.ox+int(x)*s, d.oy+int(y)*s, s, s, hal.RGB565(c))
}

func (d *fbDisplayer) Display() error { return nil }
