//go:build tinygo && baremetal && picocalc

package hal

import (
	"fmt"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

const (
	picoCalcKeyBackspace byte = 0x08
	picoCalcKeyEsc       byte = 0xB1
	picoCalcKeyLeft      byte = 0xB4
	picoCalcKeyUp        byte = 0xB5
	picoCalcKeyDown      byte = 0xB6
	picoCalcKeyRight     byte = 0xB7
)

type i2cKeyboard struct {
	i2c  *machine.I2C
	read [2]byte
}

var picoCalcFIFORead = [1]byte{picoCalcKbdCmd}

func (k *i2cKeyboard) poll() error {
	return k.i2c.Tx(picoCalcKbdAddr, picoCalcFIFORead[:], k.read[:])
}

// initI2CKeyboard finds the keyboard controller on GP6/GP7. I2C1 is the
// board wiring; some targets only expose I2C0.
func initI2CKeyboard() (*i2cKeyboard, error) {
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			cfg := machine.I2CConfig{SCL: machine.GP7, SDA: machine.GP6, Frequency: freq}
			if err := bus.Configure(cfg); err != nil {
				continue
			}
			if k := (&i2cKeyboard{i2c: bus}); k.probe() {
				return k, nil
			}
		}
	}
	return nil, fmt.Errorf("keyboard: I2C unavailable")
}

// probe allows half a second for the controller to answer after power-up.
func (k *i2cKeyboard) probe() bool {
	for range 50 {
		if k.poll() == nil {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// readEvent pops one event from the keyboard FIFO as a HID usage id.
func (k *i2cKeyboard) readEvent() (code KeyCode, press bool, ok bool) {
	if err := k.poll(); err != nil {
		return 0, false, false
	}
	if k.read[0] == 0 && k.read[1] == 0 {
		return 0, false, false
	}

	switch k.read[0] {
	case 0x01: // key down
		press = true
	case 0x03: // key up
		press = false
	default:
		// Held (0x02) carries no new edge.
		return 0, false, false
	}
	code, ok = picoCalcHIDCode(k.read[1])
	return code, press, ok
}

func picoCalcHIDCode(key byte) (KeyCode, bool) {
	switch key {
	case picoCalcKeyEsc:
		return KeyEscape, true
	case picoCalcKeyBackspace:
		return KeyBackspace, true
	case picoCalcKeyLeft:
		return KeyLeft, true
	case picoCalcKeyRight:
		return KeyRight, true
	case picoCalcKeyUp:
		return KeyUp, true
	case picoCalcKeyDown:
		return KeyDown, true
	case '\r', '\n':
		return KeyEnter, true
	}
	return runeKeyCode(rune(key))
}
