//go:build tinygo && baremetal

package hal

import "machine"

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

// uartLogger writes CRLF-terminated lines to a serial console.
type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.crlf()
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	_, _ = l.uart.Write(b)
	l.crlf()
}

func (l *uartLogger) crlf() {
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// pinLED is the on-board LED. It goes high once the rotation cache is full.
type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// initUART0 sets up the console on GP0 (TX) / GP1 (RX), 115200 8N1.
func initUART0() *machine.UART {
	machine.UART0.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	return machine.UART0
}

func initLED() *pinLED {
	led := &pinLED{pin: machine.LED}
	led.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.pin.Low()
	return led
}
