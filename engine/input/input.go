// Package input turns the polled keystate bitmap into edge-triggered
// commands.
package input

import (
	"context"
	"iter"
	"time"

	"spincube/hal"
)

// Command is one user action.
type Command uint8

const (
	CmdNone Command = iota
	CmdPause
	CmdModeLines
	CmdModePoints
	CmdModeDepth
	CmdToggleIndicators
	CmdToggleCoords
	CmdZoomIn
	CmdZoomOut
	CmdDistanceDown
	CmdDistanceUp
	CmdExit
)

var commandNames = [...]string{
	CmdNone:             "none",
	CmdPause:            "pause",
	CmdModeLines:        "lines",
	CmdModePoints:       "points",
	CmdModeDepth:        "depth",
	CmdToggleIndicators: "indicators",
	CmdToggleCoords:     "coords",
	CmdZoomIn:           "zoom-in",
	CmdZoomOut:          "zoom-out",
	CmdDistanceDown:     "distance-down",
	CmdDistanceUp:       "distance-up",
	CmdExit:             "exit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Binding ties a key to a command.
type Binding struct {
	Key hal.KeyCode
	Cmd Command
}

// DefaultBindings lists keys in dispatch order.
var DefaultBindings = []Binding{
	{hal.KeySpace, CmdPause},
	{hal.Key1, CmdModeLines},
	{hal.Key2, CmdModePoints},
	{hal.Key3, CmdToggleIndicators},
	{hal.Key4, CmdToggleCoords},
	{hal.Key5, CmdModeDepth},
	{hal.KeyEqual, CmdZoomIn},
	{hal.KeyMinus, CmdZoomOut},
	{hal.KeyLeftBrace, CmdDistanceDown},
	{hal.KeyRightBrace, CmdDistanceUp},
	{hal.KeyEscape, CmdExit},
}

// Dispatcher samples a keyboard once per tick. A chord fires once when the
// first key goes down; nothing fires again until every key is released.
type Dispatcher struct {
	kbd      hal.Keyboard
	bindings []Binding
	handled  bool
}

// NewDispatcher uses DefaultBindings when bindings is nil.
func NewDispatcher(kbd hal.Keyboard, bindings []Binding) *Dispatcher {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Dispatcher{kbd: kbd, bindings: bindings}
}

// Latch swallows whatever is held now, as if it had already been handled.
func (d *Dispatcher) Latch() { d.handled = true }

// Latched reports whether a press is waiting for release.
func (d *Dispatcher) Latched() bool { return d.handled }

// Poll reads the keystate once and yields the commands for the keys that
// just went down, in binding order. Stopping the range early drops the rest;
// the press still counts as handled.
func (d *Dispatcher) Poll() iter.Seq[Command] {
	var ks hal.KeyState
	if d.kbd != nil {
		ks = d.kbd.KeyState()
	}
	if !ks.Any() {
		d.handled = false
		return func(func(Command) bool) {}
	}
	if d.handled {
		return func(func(Command) bool) {}
	}
	d.handled = true
	return func(yield func(Command) bool) {
		for _, b := range d.bindings {
			if ks.Down(b.Key) && !yield(b.Cmd) {
				return
			}
		}
	}
}

// WaitForKey polls kbd every interval until any key is down and returns the
// state that ended the wait.
func WaitForKey(ctx context.Context, kbd hal.Keyboard, interval time.Duration) (hal.KeyState, error) {
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		if ks := kbd.KeyState(); ks.Any() {
			return ks, nil
		}
		select {
		case <-ctx.Done():
			return hal.KeyState{}, ctx.Err()
		case <-t.C:
		}
	}
}
