package vcache

import (
	"testing"

	"spincube/engine/fixtrig"
	"spincube/engine/project"
)

var vp = project.Viewport{Width: 320, Height: 240, Scale: 64}

func newCache(n int) (*Cache, *project.Projector) {
	p := project.New(fixtrig.NewTable(n))
	return New(p, n), p
}

func live(p *project.Projector, a project.AngleTriple, vp project.Viewport) [8]project.ProjectedVertex {
	var out [8]project.ProjectedVertex
	for i, v := range project.CubeVertices {
		out[i] = p.Project(v, a, vp)
	}
	return out
}

func TestFillThenReplay(t *testing.T) {
	const n = 270
	c, p := newCache(n)
	start := project.AngleTriple{X: 30, Y: 30, Z: 15}

	at := func(pos int) project.AngleTriple {
		return project.AngleTriple{X: (start.X + pos) % n, Y: (start.Y + pos) % n, Z: (start.Z + pos) % n}
	}

	for pos := 0; pos < n; pos++ {
		got := c.GetOrCompute(pos, at(pos), &project.CubeVertices, vp)
		if got != live(p, at(pos), vp) {
			t.Fatalf("warmup pos %d differs from live", pos)
		}
	}
	if s := c.Stats(); s.Stored != n || s.Hits != 0 {
		t.Fatalf("after warmup: %+v", s)
	}

	c.Seal()
	for pos := 0; pos < n; pos++ {
		got := c.GetOrCompute(pos, at(pos), &project.CubeVertices, vp)
		if got != live(p, at(pos), vp) {
			t.Fatalf("replay pos %d differs from live", pos)
		}
	}
	if s := c.Stats(); s.Hits != n || s.Misses != n {
		t.Fatalf("after replay: %+v", s)
	}
}

func TestSlotWrittenOnce(t *testing.T) {
	c, _ := newCache(10)
	a := project.AngleTriple{X: 1, Y: 2, Z: 3}
	b := project.AngleTriple{X: 4, Y: 5, Z: 6}

	c.GetOrCompute(3, a, &project.CubeVertices, vp)
	first := c.slots[3]
	c.GetOrCompute(3, b, &project.CubeVertices, vp)
	if c.slots[3] != first {
		t.Fatalf("slot 3 rewritten")
	}
	if c.Stats().Stored != 1 {
		t.Fatalf("stored=%d", c.Stats().Stored)
	}
}

func TestUnsealedAlwaysLive(t *testing.T) {
	c, p := newCache(10)
	a := project.AngleTriple{X: 1, Y: 2, Z: 3}
	b := project.AngleTriple{X: 4, Y: 5, Z: 6}
	c.GetOrCompute(0, a, &project.CubeVertices, vp)
	got := c.GetOrCompute(0, b, &project.CubeVertices, vp)
	if got != live(p, b, vp) {
		t.Fatalf("unsealed read replayed stale slot")
	}
}

func TestReplayFollowsViewport(t *testing.T) {
	c, p := newCache(10)
	a := project.AngleTriple{X: 7, Y: 2, Z: 9}
	c.GetOrCompute(4, a, &project.CubeVertices, vp)
	c.Seal()

	zoomed := vp
	zoomed.Scale = 99
	got := c.GetOrCompute(4, a, &project.CubeVertices, zoomed)
	if got != live(p, a, zoomed) {
		t.Fatalf("replay ignored viewport change")
	}
	if c.Stats().Hits != 1 {
		t.Fatalf("expected a hit, got %+v", c.Stats())
	}
}

func TestOutOfRangeNotStored(t *testing.T) {
	c, p := newCache(4)
	a := project.AngleTriple{X: 1, Y: 1, Z: 1}
	for _, pos := range []int{-1, 4, 100} {
		if got := c.GetOrCompute(pos, a, &project.CubeVertices, vp); got != live(p, a, vp) {
			t.Fatalf("pos %d: not live", pos)
		}
		if c.Written(pos) {
			t.Fatalf("pos %d reported written", pos)
		}
	}
	if c.Stats().Stored != 0 {
		t.Fatalf("stored=%d", c.Stats().Stored)
	}
}

func TestSealedEmptySlotComputesAndStores(t *testing.T) {
	c, _ := newCache(4)
	c.Seal()
	c.GetOrCompute(2, project.AngleTriple{}, &project.CubeVertices, vp)
	if !c.Written(2) || c.Stats().Misses != 1 {
		t.Fatalf("sealed miss not stored: %+v", c.Stats())
	}
}
