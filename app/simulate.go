package app

import (
	"time"

	"spincube/engine/anim"
	"spincube/engine/fixtrig"
	"spincube/engine/project"
	"spincube/engine/vcache"
	"spincube/internal/config"
)

// Report summarises a headless run of the animation.
type Report struct {
	Params        anim.Params
	Ticks         uint64
	Cycles        uint64
	TicksToSteady uint64
	Cache         vcache.Stats
	// Mismatches counts replayed frames that differ from a live projection.
	Mismatches int
	Elapsed    time.Duration
}

// PerFrame is the mean time per tick, projection included.
func (r Report) PerFrame() time.Duration {
	if r.Ticks == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Ticks)
}

// Simulate runs the controller for the given number of full cycles without a
// display and checks every replayed frame against a live projection.
func Simulate(cfg *config.Config, cycles int) (Report, error) {
	c := *cfg
	c.Normalize()
	if err := c.Validate(); err != nil {
		return Report{}, err
	}
	if cycles < 1 {
		cycles = 1
	}

	p := c.Params()
	proj := project.New(fixtrig.NewTable(c.NumPoints))
	ctrl := anim.NewController(p, anim.Initial(p, c.StartAngles(), c.Scale, c.Distance), proj, c.Viewport())

	r := Report{Params: p}
	ctrl.OnSteady = func(st anim.State) { r.TicksToSteady = st.Ticks }

	start := time.Now()
	ctrl.Frame()
	for ctrl.State().Cycles < uint64(cycles) {
		ctrl.Tick()
		got := ctrl.Frame()
		if st := ctrl.State(); st.CacheComplete {
			rot := proj.RotateAll(&project.CubeVertices, st.Current)
			if live := ctrl.Viewport().MapAll(&rot); got != live {
				r.Mismatches++
			}
		}
	}
	r.Elapsed = time.Since(start)

	st := ctrl.State()
	r.Ticks, r.Cycles = st.Ticks, st.Cycles
	r.Cache = ctrl.Cache().Stats()
	return r, nil
}
