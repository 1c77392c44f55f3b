//go:build tinygo && baremetal && picocalc

package hal

import (
	"context"
	"sync"
	"time"
)

// The panel is 320x320; the frame is centred on it.
const (
	picoCalcWidth  = 320
	picoCalcHeight = 240
)

type picoCalcHAL struct {
	logger *uartLogger
	led    *pinLED
	disp   *MemDisplay
	kbd    Keyboard
	t      *msTicks
}

// New returns a PicoCalc HAL implementation (Pico 2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	logger := &uartLogger{uart: initUART0()}

	disp := NewMemDisplay(picoCalcWidth, picoCalcHeight)
	if lcd, err := initPanel(); err == nil {
		disp.present = lcd.present
	} else {
		logger.WriteLineString("hal: lcd: " + err.Error())
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: " + err.Error())
	}

	return &picoCalcHAL{
		logger: logger,
		led:    initLED(),
		disp:   disp,
		kbd:    kbd,
		t:      newMsTicks(context.Background()),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) LED() LED         { return h.led }
func (h *picoCalcHAL) Display() Display { return h.disp }
func (h *picoCalcHAL) Input() Input {
	if h.kbd == nil {
		return nil
	}
	return tinyGoInput{kbd: h.kbd}
}
func (h *picoCalcHAL) Time() Time { return h.t }

// picoCalcKeyboard folds I2C key up/down events into a held-key bitmap.
type picoCalcKeyboard struct {
	mu    sync.Mutex
	state KeyState
}

func (k *picoCalcKeyboard) KeyState() KeyState {
	k.mu.Lock()
	defer k.mu.Unlock()
	s := k.state
	if !s.Any() {
		s[0] |= 1
	}
	return s
}

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	dev := &picoCalcKeyboard{}
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			code, press, ok := kbd.readEvent()
			if ok {
				dev.mu.Lock()
				if press {
					dev.state.Press(code)
				} else {
					dev.state.Release(code)
				}
				dev.mu.Unlock()
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	return dev, nil
}
