package app

import (
	"fmt"
	"image/color"
	"strconv"

	"spincube/engine/anim"
	"spincube/engine/gfx"
	"spincube/engine/project"
	"spincube/hal"
	"spincube/internal/buildinfo"
)

var (
	helpBanner = []string{
		"Press SPACE to start/stop",
		"Press 1 or 2 to change drawing style",
	}
	pauseBanner = []string{"Press SPACE to start"}
)

var (
	hudColor   = color.RGBA{R: 0x60, G: 0xE0, B: 0x60, A: 0xFF}
	depthColor = color.RGBA{R: 0xFF, G: 0xA0, B: 0x20, A: 0xFF}
)

const (
	indicatorInset  = 20
	indicatorRadius = 8
	bannerLeft      = 10
)

// drawBootScreen replaces the screen with a title and one status line.
func (s *System) drawBootScreen(status string) error {
	s.swap.DrawIntoInactive(func(id hal.BufferID) {
		s.paint.SetTextScale(2)
		s.paint.SetCursor(bannerLeft, bannerLeft)
		s.paint.DrawText("SPINCUBE", gfx.White, id)
		s.paint.SetTextScale(1)
		_, fh := s.paint.FontSize()
		s.paint.SetCursor(bannerLeft, bannerLeft+3*fh)
		s.paint.DrawText(buildinfo.Short(), hudColor, id)
		s.drawBanner([]string{status}, id)
	})
	return s.commit()
}

// render draws the current frame into the hidden buffer and shows it.
func (s *System) render(banner []string) error {
	st := s.ctrl.State()
	pts := s.ctrl.Frame()
	s.swap.DrawIntoInactive(func(id hal.BufferID) {
		drawCube(s.paint, &pts, st, id)
		if st.ShowIndicators {
			s.drawIndicator(id)
		}
		if st.ShowCoords {
			s.drawCoords(st, &pts, id)
		}
		s.drawBanner(banner, id)
	})
	return s.commit()
}

func (s *System) commit() error {
	if err := s.swap.Commit(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

func drawCube(p gfx.Primitives, pts *[8]project.ProjectedVertex, st anim.State, id hal.BufferID) {
	switch st.Mode {
	case anim.ModePoints:
		for _, v := range pts {
			p.DrawPixel(gfx.White, v.X, v.Y, id)
		}
	case anim.ModeDepth:
		drawEdges(p, pts, id)
		for _, v := range pts {
			p.DrawCircle(depthColor, v.X, v.Y, depthRadius(v.Depth, st.Scale), id)
		}
	default:
		drawEdges(p, pts, id)
	}
}

func drawEdges(p gfx.Primitives, pts *[8]project.ProjectedVertex, id hal.BufferID) {
	for _, e := range project.CubeEdges {
		a, b := pts[e[0]], pts[e[1]]
		p.DrawLine(gfx.White, a.X, a.Y, b.X, b.Y, id)
	}
}

// depthRadius maps a vertex depth to a marker radius in 1..5, larger when
// nearer the viewer. Depth spans about ±sqrt(3)*4096/scale.
func depthRadius(depth, scale int) int {
	if scale <= 0 {
		scale = 1
	}
	span := 7095 / scale
	if span < 1 {
		span = 1
	}
	r := 1 + 4*(span-depth)/(2*span)
	return max(1, min(5, r))
}

// drawIndicator marks the buffer being drawn: buffer 1 on the left, buffer 0
// on the right, each labelled with its id.
func (s *System) drawIndicator(id hal.BufferID) {
	x := s.width - indicatorInset
	if id == 1 {
		x = indicatorInset
	}
	s.paint.DrawCircle(gfx.White, x, indicatorInset, indicatorRadius, id)
	fw, fh := s.paint.FontSize()
	s.paint.SetCursor(x-fw/2, indicatorInset-fh/2)
	s.paint.DrawText(strconv.Itoa(int(id)), gfx.White, id)
}

func (s *System) drawCoords(st anim.State, pts *[8]project.ProjectedVertex, id hal.BufferID) {
	_, fh := s.paint.FontSize()
	x, y := bannerLeft, indicatorInset+indicatorRadius+fh

	line := func(text string) {
		s.paint.SetCursor(x, y)
		s.paint.DrawText(text, hudColor, id)
		y += fh
	}
	cs := s.ctrl.Cache().Stats()
	line(fmt.Sprintf("%s pos %d/%d", st.Phase(), st.Position, s.cfg.NumPoints))
	line(fmt.Sprintf("rot %d %d %d", st.Current.X, st.Current.Y, st.Current.Z))
	line(fmt.Sprintf("scale %d dist %d", st.Scale, st.Distance))
	line(fmt.Sprintf("cache %d/%d hit %d", cs.Stored, s.ctrl.Cache().Len(), cs.Hits))
	for i, v := range pts {
		line(fmt.Sprintf("%d %d,%d %d", i, v.X, v.Y, v.Depth))
	}
}

// drawBanner writes lines upwards from the bottom edge.
func (s *System) drawBanner(lines []string, id hal.BufferID) {
	_, fh := s.paint.FontSize()
	lh := fh + fh/2
	y := s.height - lh*len(lines) - fh
	for _, l := range lines {
		s.paint.SetCursor(bannerLeft, y)
		s.paint.DrawText(l, gfx.White, id)
		y += lh
	}
}
