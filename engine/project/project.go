// Package project rotates model-space cube vertices with the fixed-point
// trig table and maps them to screen pixels.
package project

import "spincube/engine/fixtrig"

// Vertex3D is a model-space point in 2^12 fixed point.
type Vertex3D struct {
	X, Y, Z int16
}

// AngleTriple holds per-axis rotation as table slots in [0, NUM_POINTS).
type AngleTriple struct {
	X, Y, Z int
}

// ProjectedVertex is a screen pixel plus the scaled depth it came from.
// Depth only feeds display heuristics; nothing sorts or culls on it.
type ProjectedVertex struct {
	X, Y  int
	Depth int
}

// Viewport maps rotated model space to the screen.
type Viewport struct {
	Width, Height int
	// Scale divides model units down to pixels; larger is smaller on screen.
	Scale int
	// OffsetX/OffsetY shift the projection centre.
	OffsetX, OffsetY int
	// Distance is tracked for the HUD and adjustable at runtime but the
	// projection is orthographic, so it is never applied.
	Distance int
}

// Map converts a rotated vertex to screen space. Division truncates toward
// zero; a non-positive Scale is treated as 1.
func (vp Viewport) Map(v Vertex3D) ProjectedVertex {
	s := vp.Scale
	if s <= 0 {
		s = 1
	}
	return ProjectedVertex{
		X:     int(v.X)/s + vp.Width/2 + vp.OffsetX,
		Y:     int(v.Y)/s + vp.Height/2 + vp.OffsetY,
		Depth: int(v.Z) / s,
	}
}

// Projector rotates vertices using a shared trig table.
type Projector struct {
	t *fixtrig.Table
}

func New(t *fixtrig.Table) *Projector {
	return &Projector{t: t}
}

func (p *Projector) Table() *fixtrig.Table { return p.t }

// Rotate applies the X, then Y, then Z axis rotation. Each product is
// widened to 32 bits and shifted back by fixtrig.Shift.
func (p *Projector) Rotate(v Vertex3D, a AngleTriple) Vertex3D {
	v.Y, v.Z = rot(v.Y, v.Z, p.t.Cosine(a.X), p.t.Sine(a.X))
	v.Z, v.X = rot(v.Z, v.X, p.t.Cosine(a.Y), p.t.Sine(a.Y))
	v.X, v.Y = rot(v.X, v.Y, p.t.Cosine(a.Z), p.t.Sine(a.Z))
	return v
}

// rot turns (u, w) by the angle with cosine c and sine s.
func rot(u, w, c, s int16) (int16, int16) {
	u32, w32 := int32(u), int32(w)
	c32, s32 := int32(c), int32(s)
	return int16((u32*c32 - w32*s32) >> fixtrig.Shift),
		int16((u32*s32 + w32*c32) >> fixtrig.Shift)
}

// Project rotates v by a and maps it through vp.
func (p *Projector) Project(v Vertex3D, a AngleTriple, vp Viewport) ProjectedVertex {
	return vp.Map(p.Rotate(v, a))
}

// RotateAll rotates the eight cube corners.
func (p *Projector) RotateAll(verts *[8]Vertex3D, a AngleTriple) [8]Vertex3D {
	var out [8]Vertex3D
	for i := range verts {
		out[i] = p.Rotate(verts[i], a)
	}
	return out
}

// MapAll maps eight rotated corners through vp.
func (vp Viewport) MapAll(rot *[8]Vertex3D) [8]ProjectedVertex {
	var out [8]ProjectedVertex
	for i := range rot {
		out[i] = vp.Map(rot[i])
	}
	return out
}
