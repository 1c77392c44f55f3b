//go:build tinygo && !baremetal

package hal

import (
	"context"
	"runtime"
)

// New returns the HAL for `tinygo run` on linux or wasm: frames stay in RAM,
// there are no keys and the log goes to the runtime's println.
func New() HAL {
	return &tinyGoHostHAL{
		disp: NewMemDisplay(320, 240),
		t:    newMsTicks(context.Background()),
	}
}

type tinyGoHostHAL struct {
	led  printLED
	disp *MemDisplay
	t    *msTicks
}

func (h *tinyGoHostHAL) Logger() Logger   { return printLogger{} }
func (h *tinyGoHostHAL) LED() LED         { return &h.led }
func (h *tinyGoHostHAL) Display() Display { return h.disp }
func (h *tinyGoHostHAL) Input() Input     { return nil }
func (h *tinyGoHostHAL) Time() Time       { return h.t }

type printLogger struct{}

func (printLogger) WriteLineString(s string) { println(s) }
func (printLogger) WriteLineBytes(b []byte)  { println(string(b)) }

// printLED reports level changes only.
type printLED struct {
	on, known bool
}

func (l *printLED) set(on bool) {
	if l.known && l.on == on {
		return
	}
	l.on, l.known = on, true
	state := "LOW"
	if on {
		state = "HIGH"
	}
	println("led: " + state + " (tinygo/" + runtime.GOOS + ")")
}

func (l *printLED) High() { l.set(true) }
func (l *printLED) Low()  { l.set(false) }
