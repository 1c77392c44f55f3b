// Package app wires the HAL, the animation controller and the renderer into
// the tick loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"spincube/engine/anim"
	"spincube/engine/fixtrig"
	"spincube/engine/gfx"
	"spincube/engine/input"
	"spincube/engine/project"
	"spincube/engine/swap"
	"spincube/hal"
	"spincube/internal/buildinfo"
	"spincube/internal/config"
)

var ErrNoDisplay = errors.New("app: no display")

// System is one running demo.
type System struct {
	h   hal.HAL
	cfg config.Config

	paint *gfx.Painter
	swap  *swap.Swapper
	keys  *input.Dispatcher
	ctrl  *anim.Controller

	width, height int
	frames        uint64
}

// New validates cfg and prepares the display. Nothing is drawn until Run.
func New(h hal.HAL, cfg *config.Config) (*System, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	c := *cfg
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	disp := h.Display()
	if disp == nil || disp.Framebuffer(0) == nil || disp.Framebuffer(1) == nil {
		return nil, ErrNoDisplay
	}
	// The panel size wins over the configured one.
	c.Screen.Width, c.Screen.Height = disp.Width(), disp.Height()

	paint := gfx.NewPainter(disp)
	s := &System{
		h:      h,
		cfg:    c,
		paint:  paint,
		swap:   swap.New(paint, disp.Shown()),
		width:  disp.Width(),
		height: disp.Height(),
	}
	s.keys = input.NewDispatcher(s.keyboard(), nil)
	return s, nil
}

func (s *System) keyboard() hal.Keyboard {
	if in := s.h.Input(); in != nil {
		return in.Keyboard()
	}
	return nil
}

// Run starts the demo and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	sys, err := New(h, config.Default())
	if err != nil {
		h.Logger().WriteLineString("cube: " + err.Error())
		select {}
	}
	if err := sys.Run(context.Background()); err != nil {
		h.Logger().WriteLineString("cube: " + err.Error())
	}
	select {}
}

// Controller exposes the animation state, mainly for tests and reports.
func (s *System) Controller() *anim.Controller { return s.ctrl }

// Frames counts loop iterations.
func (s *System) Frames() uint64 { return s.frames }

func (s *System) logf(format string, args ...any) {
	if l := s.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// Run boots, waits for the first key if configured, then loops until ESC,
// MaxTicks or ctx cancellation. ESC and MaxTicks return nil.
func (s *System) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			s.logf("cube: panic: %v", r)
			s.showPanic(r, stack)
			err = fmt.Errorf("app: panic: %v", r)
		}
	}()

	s.logf("cube: spincube %s", buildinfo.Short())
	bootDiagStart(s.h)

	if err := s.boot(); err != nil {
		return err
	}

	if kbd := s.keyboard(); s.cfg.WaitForKey && kbd != nil {
		bootDiagSetStep("wait for key")
		s.logf("cube: waiting for a key")
		if _, err := input.WaitForKey(ctx, kbd, s.cfg.PollInterval()); err != nil {
			return err
		}
		// The start key must not also toggle pause.
		s.keys.Latch()
	}
	bootDiagSetStep("running")
	return s.loop(ctx)
}

// boot shows the precompute notice, builds the table and draws the first
// frame with the key help.
func (s *System) boot() error {
	bootDiagSetStep("trig table")
	if err := s.drawBootScreen("Precomputing sine and cosine values..."); err != nil {
		return err
	}

	start := time.Now()
	table := fixtrig.NewTable(s.cfg.NumPoints)
	s.logf("cube: trig table %d slots, phase step %d, %s", table.Len(), table.Step(), time.Since(start))

	st := anim.Initial(s.cfg.Params(), s.cfg.StartAngles(), s.cfg.Scale, s.cfg.Distance)
	st.Paused = s.cfg.StartPaused
	s.ctrl = anim.NewController(s.cfg.Params(), st, project.New(table), s.cfg.Viewport())
	s.ctrl.OnSteady = func(st anim.State) {
		s.logf("cube: cache complete after %d ticks, replaying", st.Ticks)
		if led := s.h.LED(); led != nil {
			led.High()
		}
	}
	if led := s.h.LED(); led != nil {
		led.Low()
	}

	bootDiagSetStep("first frame")
	return s.render(helpBanner)
}

func (s *System) loop(ctx context.Context) error {
	next := s.frameClock(ctx)
	for {
		if err := next(); err != nil {
			return err
		}

		if s.ctrl.Tick() {
			if err := s.render(nil); err != nil {
				return err
			}
		}

		prev := s.ctrl.State()
		for cmd := range s.keys.Poll() {
			if cmd == input.CmdExit {
				s.logf("cube: exit after %d frames", s.frames)
				return nil
			}
			s.handle(cmd)
		}
		if st := s.ctrl.State(); st.Paused && st != prev {
			if err := s.render(pauseBanner); err != nil {
				return err
			}
		}

		s.frames++
		if s.cfg.MaxTicks > 0 && s.frames >= s.cfg.MaxTicks {
			s.logf("cube: stopped after %d frames (%s)", s.frames, s.ctrl.Phase())
			return nil
		}
	}
}

func (s *System) handle(cmd input.Command) {
	s.ctrl.Handle(cmd)
	st := s.ctrl.State()
	switch cmd {
	case input.CmdPause:
		if st.Paused {
			s.logf("cube: paused at position %d", st.Position)
		} else {
			s.logf("cube: resumed (%s)", st.Phase())
		}
	case input.CmdZoomIn, input.CmdZoomOut:
		s.logf("cube: scale %d", st.Scale)
	case input.CmdDistanceDown, input.CmdDistanceUp:
		s.logf("cube: distance %d", st.Distance)
	}
}

// frameClock paces the loop on the HAL millisecond ticks, falling back to a
// wall-clock ticker when the platform has none.
func (s *System) frameClock(ctx context.Context) func() error {
	interval := s.cfg.FrameInterval()
	if t := s.h.Time(); t != nil {
		if ch := t.Ticks(); ch != nil {
			every := uint64(interval / time.Millisecond)
			if every == 0 {
				every = 1
			}
			var last uint64
			return func() error {
				for {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case seq := <-ch:
						if seq-last >= every {
							last = seq
							return nil
						}
					}
				}
			}
		}
	}
	tk := time.NewTicker(interval)
	return func() error {
		select {
		case <-ctx.Done():
			tk.Stop()
			return ctx.Err()
		case <-tk.C:
			return nil
		}
	}
}
