//go:build !tinygo

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	data := "num_points: 360\nstart:\n  x: 30\n  y: 30\n  z: 30\nscale: 500\nwait_for_key: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.NumPoints != 360 || c.Start.Z != 30 || c.WaitForKey {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Scale != 205 {
		t.Fatalf("scale not clamped: %d", c.Scale)
	}
	if c.Screen.Width != 320 || c.Step != 1 {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestLoadRejectsHazard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("num_points: 360\nstep: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err=%v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	c := Default()
	c.Step = 7
	c.Screen.OffsetY = -8
	if err := c.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *c {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v", err)
	}
}
