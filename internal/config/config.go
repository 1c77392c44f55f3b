// Package config holds the demo's tunables, their defaults and the startup
// validation that rejects combinations the cycle cache cannot serve.
package config

import (
	"errors"
	"fmt"
	"time"

	"spincube/engine/anim"
	"spincube/engine/fixtrig"
	"spincube/engine/project"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	DefaultWidth     = 320
	DefaultHeight    = 240
	DefaultNumPoints = 270
	DefaultStep      = 1
	DefaultScale     = 64
	DefaultDistance  = 256
	DefaultFrameHz   = 60
)

type Screen struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
}

type Angles struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// Range is an inclusive [Min, Max] adjusted in Step increments.
type Range struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Step int `yaml:"step"`
}

type Config struct {
	Screen    Screen `yaml:"screen"`
	NumPoints int    `yaml:"num_points"`
	Start     Angles `yaml:"start"`
	Step      int    `yaml:"step"`

	Scale       int   `yaml:"scale"`
	ScaleRange  Range `yaml:"scale_range"`
	Distance    int   `yaml:"distance"`
	DistRange   Range `yaml:"distance_range"`
	FrameHz     int   `yaml:"frame_hz"`
	WaitForKey  bool  `yaml:"wait_for_key"`
	PollMillis  int   `yaml:"poll_ms"`
	StartPaused bool  `yaml:"start_paused"`
	// MaxTicks stops the loop after that many frames; 0 runs forever.
	MaxTicks uint64 `yaml:"max_ticks"`
}

func Default() *Config {
	return &Config{
		Screen:     Screen{Width: DefaultWidth, Height: DefaultHeight},
		NumPoints:  DefaultNumPoints,
		Start:      Angles{X: 30, Y: 30, Z: 15},
		Step:       DefaultStep,
		Scale:      DefaultScale,
		ScaleRange: Range{Min: 59, Max: 205, Step: 5},
		Distance:   DefaultDistance,
		DistRange:  Range{Min: 64, Max: 1024, Step: 16},
		FrameHz:    DefaultFrameHz,
		WaitForKey: true,
		PollMillis: 10,
	}
}

// Validate reports the first structural problem, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.NumPoints < 1 || c.NumPoints > fixtrig.MaxPoints:
		return fmt.Errorf("%w: num_points %d outside [1, %d]", ErrInvalid, c.NumPoints, fixtrig.MaxPoints)
	case c.NumPoints > 1 && (c.Step < 1 || c.Step >= c.NumPoints):
		return fmt.Errorf("%w: step %d outside [1, %d)", ErrInvalid, c.Step, c.NumPoints)
	case gcd(c.Step, c.NumPoints) != 1:
		// The cycle would close after NumPoints/gcd ticks and leave part of
		// the cache unused.
		return fmt.Errorf("%w: step %d shares a factor with num_points %d", ErrInvalid, c.Step, c.NumPoints)
	}
	for _, a := range []struct {
		name string
		v    int
	}{{"x", c.Start.X}, {"y", c.Start.Y}, {"z", c.Start.Z}} {
		if a.v < 0 || a.v >= c.NumPoints {
			return fmt.Errorf("%w: start.%s %d outside [0, %d)", ErrInvalid, a.name, a.v, c.NumPoints)
		}
	}
	if err := c.ScaleRange.validate("scale_range", 1); err != nil {
		return err
	}
	if err := c.DistRange.validate("distance_range", 0); err != nil {
		return err
	}
	if c.FrameHz <= 0 || c.FrameHz > 1000 {
		return fmt.Errorf("%w: frame_hz %d", ErrInvalid, c.FrameHz)
	}
	if c.PollMillis <= 0 {
		return fmt.Errorf("%w: poll_ms %d", ErrInvalid, c.PollMillis)
	}
	return nil
}

func (r Range) validate(name string, floor int) error {
	if r.Min < floor || r.Max < r.Min || r.Step < 0 {
		return fmt.Errorf("%w: %s [%d, %d] step %d", ErrInvalid, name, r.Min, r.Max, r.Step)
	}
	return nil
}

// Normalize clamps Scale and Distance into their ranges.
func (c *Config) Normalize() {
	c.Scale = clamp(c.Scale, c.ScaleRange.Min, c.ScaleRange.Max)
	c.Distance = clamp(c.Distance, c.DistRange.Min, c.DistRange.Max)
}

// Params converts the config for the animation controller.
func (c *Config) Params() anim.Params {
	return anim.Params{
		NumPoints:    c.NumPoints,
		Step:         c.Step,
		ScaleMin:     c.ScaleRange.Min,
		ScaleMax:     c.ScaleRange.Max,
		ScaleStep:    c.ScaleRange.Step,
		DistanceMin:  c.DistRange.Min,
		DistanceMax:  c.DistRange.Max,
		DistanceStep: c.DistRange.Step,
	}
}

func (c *Config) StartAngles() project.AngleTriple {
	return project.AngleTriple{X: c.Start.X, Y: c.Start.Y, Z: c.Start.Z}
}

// Viewport is the base viewport; scale and distance are filled in by the
// controller.
func (c *Config) Viewport() project.Viewport {
	return project.Viewport{
		Width:    c.Screen.Width,
		Height:   c.Screen.Height,
		Scale:    c.Scale,
		OffsetX:  c.Screen.OffsetX,
		OffsetY:  c.Screen.OffsetY,
		Distance: c.Distance,
	}
}

func (c *Config) FrameInterval() time.Duration {
	if c.FrameHz <= 0 {
		return time.Second / DefaultFrameHz
	}
	return time.Second / time.Duration(c.FrameHz)
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollMillis) * time.Millisecond
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
