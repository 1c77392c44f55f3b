// Package vcache remembers the rotated cube for every cycle position seen
// during the first revolution so later revolutions skip the trig work.
package vcache

import "spincube/engine/project"

// Stats counts cache traffic.
type Stats struct {
	Hits   uint64
	Misses uint64
	Stored int
}

// Cache is a fixed arena of one slot per cycle position. Each slot is
// written at most once. Slots hold rotated vertices, not screen pixels, so
// a replay re-maps them through the current viewport and stays identical to
// a live projection after zoom changes.
type Cache struct {
	p       *project.Projector
	slots   [][8]project.Vertex3D
	written []bool
	sealed  bool
	stats   Stats
}

// New sizes the arena to n positions.
func New(p *project.Projector, n int) *Cache {
	if n < 0 {
		n = 0
	}
	return &Cache{
		p:       p,
		slots:   make([][8]project.Vertex3D, n),
		written: make([]bool, n),
	}
}

// Len is the number of positions.
func (c *Cache) Len() int { return len(c.slots) }

// Seal marks the first revolution complete; from now on written slots are
// replayed.
func (c *Cache) Seal() { c.sealed = true }

func (c *Cache) Sealed() bool { return c.sealed }

// Written reports whether slot pos holds a stored rotation.
func (c *Cache) Written(pos int) bool {
	return pos >= 0 && pos < len(c.written) && c.written[pos]
}

func (c *Cache) Stats() Stats { return c.stats }

// GetOrCompute returns the projected cube for cycle position pos.
//
// Once sealed, a written slot is replayed. Otherwise the rotation runs live
// and fills the slot if it is still empty. Positions outside the arena are
// always computed live and never stored.
func (c *Cache) GetOrCompute(pos int, a project.AngleTriple, verts *[8]project.Vertex3D, vp project.Viewport) [8]project.ProjectedVertex {
	inRange := pos >= 0 && pos < len(c.slots)
	if c.sealed && inRange && c.written[pos] {
		c.stats.Hits++
		return vp.MapAll(&c.slots[pos])
	}

	c.stats.Misses++
	rot := c.p.RotateAll(verts, a)
	if inRange && !c.written[pos] {
		c.slots[pos] = rot
		c.written[pos] = true
		c.stats.Stored++
	}
	return vp.MapAll(&rot)
}
