package anim

import (
	"spincube/engine/input"
	"spincube/engine/project"
	"spincube/engine/vcache"
)

// Controller owns the state, the projector and the cache.
type Controller struct {
	p     Params
	s     State
	proj  *project.Projector
	cache *vcache.Cache
	base  project.Viewport

	// OnSteady runs once, on the tick that completes the cache.
	OnSteady func(State)
}

// NewController sizes the cache to p.NumPoints. base supplies the screen
// size and offsets; scale and distance come from the state.
func NewController(p Params, s State, proj *project.Projector, base project.Viewport) *Controller {
	return &Controller{
		p:     p,
		s:     s,
		proj:  proj,
		cache: vcache.New(proj, p.NumPoints),
		base:  base,
	}
}

func (c *Controller) State() State                  { return c.s }
func (c *Controller) Params() Params                { return c.p }
func (c *Controller) Cache() *vcache.Cache          { return c.cache }
func (c *Controller) Phase() Phase                  { return c.s.Phase() }
func (c *Controller) Projector() *project.Projector { return c.proj }

// Viewport is the base viewport with the current scale and distance.
func (c *Controller) Viewport() project.Viewport {
	vp := c.base
	vp.Scale = c.s.Scale
	vp.Distance = c.s.Distance
	return vp
}

// Tick advances one step and reports whether the state moved.
func (c *Controller) Tick() bool {
	prev := c.s
	c.s = Advance(c.p, c.s)
	if !prev.CacheComplete && c.s.CacheComplete {
		c.cache.Seal()
		if c.OnSteady != nil {
			c.OnSteady(c.s)
		}
	}
	return c.s.Ticks != prev.Ticks
}

// Handle applies a command.
func (c *Controller) Handle(cmd input.Command) {
	c.s = Apply(c.p, c.s, cmd)
}

// Frame projects the cube for the current position, through the cache.
func (c *Controller) Frame() [8]project.ProjectedVertex {
	return c.cache.GetOrCompute(c.s.Position, c.s.Current, &project.CubeVertices, c.Viewport())
}
