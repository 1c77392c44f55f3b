//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig sizes the host display and picks where log lines go.
type HostConfig struct {
	Width  int
	Height int
	// Log receives log lines; nil means stdout.
	Log io.Writer
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Log == nil {
		c.Log = os.Stdout
	}
	return c
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	disp   *MemDisplay
	kbd    Keyboard
	t      *msTicks
}

func newHostHAL(ctx context.Context, cfg HostConfig, kbd Keyboard) *hostHAL {
	cfg = cfg.withDefaults()
	logger := &hostLogger{w: cfg.Log}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		disp:   NewMemDisplay(cfg.Width, cfg.Height),
		kbd:    kbd,
		t:      newMsTicks(ctx),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostInput struct {
	kbd Keyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		return
	}
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		return
	}
	l.on = false
	l.logger.WriteLineString("led: LOW")
}

// nullKeyboard never reports a key.
type nullKeyboard struct{}

func (nullKeyboard) KeyState() KeyState { return KeyState{} }
