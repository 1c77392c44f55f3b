//go:build tinygo && baremetal && !picocalc

package hal

import "context"

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	disp   *MemDisplay
	t      *msTicks
}

// New returns a Pico 2 (RP2350) HAL implementation without a panel.
// Frames are rendered into RAM only and there are no keys; the log goes
// to UART0.
func New() HAL {
	return &tinyGoHAL{
		logger: &uartLogger{uart: initUART0()},
		led:    initLED(),
		disp:   NewMemDisplay(320, 240),
		t:      newMsTicks(context.Background()),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Display() Display { return h.disp }
func (h *tinyGoHAL) Input() Input     { return nil }
func (h *tinyGoHAL) Time() Time       { return h.t }
