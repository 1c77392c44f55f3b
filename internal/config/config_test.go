package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default invalid: %v", err)
	}
	if c.FrameInterval() != time.Second/60 {
		t.Fatalf("frame interval %v", c.FrameInterval())
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"screen":        func(c *Config) { c.Screen.Width = 0 },
		"num_points":    func(c *Config) { c.NumPoints = 0 },
		"too many":      func(c *Config) { c.NumPoints = 40000 },
		"step zero":     func(c *Config) { c.Step = 0 },
		"step too big":  func(c *Config) { c.Step = 270 },
		"step factor":   func(c *Config) { c.Step = 3 },
		"start range":   func(c *Config) { c.Start.Z = 270 },
		"start neg":     func(c *Config) { c.Start.X = -1 },
		"scale range":   func(c *Config) { c.ScaleRange.Min = 0 },
		"scale inverse": func(c *Config) { c.ScaleRange.Max = 10 },
		"dist range":    func(c *Config) { c.DistRange.Step = -1 },
		"hz":            func(c *Config) { c.FrameHz = 0 },
		"poll":          func(c *Config) { c.PollMillis = 0 },
	}
	for name, mut := range cases {
		c := Default()
		mut(c)
		if err := c.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: err=%v", name, err)
		}
	}
}

func TestValidateCoprimeStep(t *testing.T) {
	c := Default()
	c.Step = 7
	if err := c.Validate(); err != nil {
		t.Fatalf("step 7 with 270: %v", err)
	}
	c.NumPoints = 1
	c.Step = 1
	c.Start = Angles{}
	if err := c.Validate(); err != nil {
		t.Fatalf("single point: %v", err)
	}
}

func TestNormalizeClamps(t *testing.T) {
	c := Default()
	c.Scale = 5
	c.Distance = 99999
	c.Normalize()
	if c.Scale != c.ScaleRange.Min || c.Distance != c.DistRange.Max {
		t.Fatalf("scale=%d distance=%d", c.Scale, c.Distance)
	}
}

func TestParamsAndViewport(t *testing.T) {
	c := Default()
	c.Screen.OffsetX = 4
	p := c.Params()
	if p.NumPoints != 270 || p.Step != 1 || p.ScaleStep != 5 || p.DistanceMax != 1024 {
		t.Fatalf("params %+v", p)
	}
	vp := c.Viewport()
	if vp.Width != 320 || vp.Height != 240 || vp.Scale != 64 || vp.OffsetX != 4 {
		t.Fatalf("viewport %+v", vp)
	}
	if a := c.StartAngles(); a.X != 30 || a.Y != 30 || a.Z != 15 {
		t.Fatalf("start %+v", a)
	}
}
