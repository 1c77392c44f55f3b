//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"

	"spincube/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing the visible buffer and runs the
// demo on its own goroutine. It blocks until the window closes or run returns.
func RunWindow(cfg HostConfig, run func(context.Context, HAL) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kbd := newHostKeyboard()
	h := newHostHAL(ctx, cfg, kbd)

	g := &hostGame{h: h, kbd: kbd, done: make(chan error, 1)}
	go func() {
		g.done <- run(ctx, h)
	}()

	ebiten.SetWindowTitle("spincube (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.disp.Width()*2, h.disp.Height()*2)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return g.err
	}
	cancel()
	return err
}

type hostGame struct {
	h       *hostHAL
	kbd     *hostKeyboard
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	done    chan error
	err     error
}

func (g *hostGame) Update() error {
	g.kbd.poll()
	select {
	case err := <-g.done:
		g.err = err
		return ebiten.Termination
	default:
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	d := g.h.disp
	w, h := d.Width(), d.Height()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, w*h*2)
		g.fbImg = ebiten.NewImage(w, h)
	}

	d.Snapshot(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		c := RGBA(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = c.A
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.Width(), g.h.disp.Height()
}
