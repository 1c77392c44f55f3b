package hal

import (
	"image/color"
	"sync"
)

type memFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	stride := w * 2
	return &memFramebuffer{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
	}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(color.RGBA{R: r, G: g, B: b, A: 0xFF})
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// MemDisplay is a pair of RAM framebuffers. Show optionally pushes the
// selected buffer to a panel; readers on other goroutines use Snapshot.
type MemDisplay struct {
	mu      sync.Mutex
	fbs     [BufferCount]*memFramebuffer
	shown   BufferID
	present func(buf []byte, w, h int) error
	shows   uint64
}

// NewMemDisplay allocates two w*h RGB565 buffers. Buffer 0 starts shown.
func NewMemDisplay(w, h int) *MemDisplay {
	return &MemDisplay{
		fbs: [BufferCount]*memFramebuffer{newMemFramebuffer(w, h), newMemFramebuffer(w, h)},
	}
}

func (d *MemDisplay) Width() int  { return d.fbs[0].w }
func (d *MemDisplay) Height() int { return d.fbs[0].h }

func (d *MemDisplay) Framebuffer(id BufferID) Framebuffer {
	if int(id) >= BufferCount {
		return nil
	}
	return d.fbs[id]
}

func (d *MemDisplay) Show(id BufferID) error {
	if int(id) >= BufferCount {
		return ErrBadBuffer
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.present != nil {
		fb := d.fbs[id]
		if err := d.present(fb.buf, fb.w, fb.h); err != nil {
			return err
		}
	}
	d.shown = id
	d.shows++
	return nil
}

func (d *MemDisplay) Shown() BufferID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// Shows counts successful Show calls.
func (d *MemDisplay) Shows() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shows
}

// Snapshot copies the shown buffer into dst and reports which one it was.
func (d *MemDisplay) Snapshot(dst []byte) BufferID {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(dst, d.fbs[d.shown].buf)
	return d.shown
}
