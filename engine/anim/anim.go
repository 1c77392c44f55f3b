// Package anim holds the rotation state machine. State changes only through
// the pure functions Advance and Apply; Controller pairs them with the
// vertex cache.
package anim

import (
	"spincube/engine/input"
	"spincube/engine/project"
)

// Phase is the externally visible controller state.
type Phase uint8

const (
	// PhaseWarmup computes every frame live and fills the cache.
	PhaseWarmup Phase = iota
	// PhaseSteady replays the cache.
	PhaseSteady
	// PhasePaused keeps the last frame; angles do not advance.
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseWarmup:
		return "WARMUP"
	case PhaseSteady:
		return "STEADY"
	case PhasePaused:
		return "PAUSED"
	}
	return "?"
}

// DisplayMode selects how the cube is drawn.
type DisplayMode uint8

const (
	ModeLines DisplayMode = iota
	ModePoints
	// ModeDepth draws edges plus vertex markers sized by depth.
	ModeDepth
)

func (m DisplayMode) String() string {
	switch m {
	case ModeLines:
		return "lines"
	case ModePoints:
		return "points"
	case ModeDepth:
		return "depth"
	}
	return "?"
}

// Params are fixed for the life of the process.
type Params struct {
	NumPoints int
	Step      int

	ScaleMin, ScaleMax, ScaleStep          int
	DistanceMin, DistanceMax, DistanceStep int
}

// State is the whole animation state.
type State struct {
	Start    project.AngleTriple
	Current  project.AngleTriple
	Position int

	CacheComplete bool
	// FirstFrame forces live computation until the first cycle closes.
	FirstFrame bool
	Paused     bool

	Mode           DisplayMode
	ShowIndicators bool
	ShowCoords     bool
	Scale          int
	Distance       int

	// Ticks counts advances; Cycles counts closures.
	Ticks  uint64
	Cycles uint64
}

// Initial returns the state at process start: WARMUP, position 0.
func Initial(p Params, start project.AngleTriple, scale, distance int) State {
	return State{
		Start:      start,
		Current:    start,
		FirstFrame: true,
		Scale:      clamp(scale, p.ScaleMin, p.ScaleMax),
		Distance:   clamp(distance, p.DistanceMin, p.DistanceMax),
	}
}

func (s State) Phase() Phase {
	switch {
	case s.Paused:
		return PhasePaused
	case s.CacheComplete:
		return PhaseSteady
	}
	return PhaseWarmup
}

// Advance is one tick. A paused state is returned unchanged. Otherwise all
// three angles move by Step; reaching Start again closes the cycle, resets
// Position and, the first time, completes the cache.
func Advance(p Params, s State) State {
	if s.Paused || p.NumPoints <= 0 {
		return s
	}
	s.Current = project.AngleTriple{
		X: wrap(s.Current.X+p.Step, p.NumPoints),
		Y: wrap(s.Current.Y+p.Step, p.NumPoints),
		Z: wrap(s.Current.Z+p.Step, p.NumPoints),
	}
	s.Ticks++
	if s.Current == s.Start {
		s.Position = 0
		s.Cycles++
		if !s.CacheComplete {
			s.CacheComplete = true
			s.FirstFrame = false
		}
		return s
	}
	s.Position++
	return s
}

// Apply folds one command into the state. Only Pause touches the animation
// itself; everything else is a display parameter. CmdExit is left to the
// caller.
func Apply(p Params, s State, c input.Command) State {
	switch c {
	case input.CmdPause:
		s.Paused = !s.Paused
	case input.CmdModeLines:
		s.Mode = ModeLines
	case input.CmdModePoints:
		s.Mode = ModePoints
	case input.CmdModeDepth:
		s.Mode = ModeDepth
	case input.CmdToggleIndicators:
		s.ShowIndicators = !s.ShowIndicators
	case input.CmdToggleCoords:
		s.ShowCoords = !s.ShowCoords
	case input.CmdZoomIn:
		s.Scale = clamp(s.Scale-p.ScaleStep, p.ScaleMin, p.ScaleMax)
	case input.CmdZoomOut:
		s.Scale = clamp(s.Scale+p.ScaleStep, p.ScaleMin, p.ScaleMax)
	case input.CmdDistanceDown:
		s.Distance = clamp(s.Distance-p.DistanceStep, p.DistanceMin, p.DistanceMax)
	case input.CmdDistanceUp:
		s.Distance = clamp(s.Distance+p.DistanceStep, p.DistanceMin, p.DistanceMax)
	}
	return s
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// clamp ignores an empty range (hi < lo).
func clamp(v, lo, hi int) int {
	if hi < lo {
		return v
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
