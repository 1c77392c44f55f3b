//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

const (
	panelWidth  = 320
	panelHeight = 320
)

// panelStep is one controller command with its parameters and settle time.
type panelStep struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// ILI9488 bring-up for the PicoCalc carrier, 16bpp.
var panelInit = []panelStep{
	{cmd: 0xC0, data: []byte{0x17, 0x15}},             // PWCTRL1
	{cmd: 0xC1, data: []byte{0x41}},                   // PWCTRL2
	{cmd: 0xC5, data: []byte{0x00, 0x12, 0x80, 0x40}}, // VMCTRL
	{cmd: 0x3A, data: []byte{0x55}},                   // COLMOD 16bpp
	{cmd: 0xB1, data: []byte{0xA0, 0x11}},             // FRMCTRL1
	{cmd: 0xB6, data: []byte{0x02, 0x22, 0x27}},       // DISCTRL, 320 lines
	{cmd: 0x21}, // INVON
	{cmd: 0x36, data: []byte{0x40 | 0x04 | 0x08}}, // MADCTL MX|MH|BGR
	{cmd: 0x11, delay: 120 * time.Millisecond},    // SLPOUT
	{cmd: 0x29}, // DISPON
}

// panelLCD shows a frame smaller than the panel centred on it, with the
// surrounding band blanked once.
type panelLCD struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf   []byte
	blanked bool
}

func initPanel() (*panelLCD, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("lcd: SPI1 unavailable")
	}
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	lcd := &panelLCD{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		txBuf: make([]byte, 4096),
	}
	for _, p := range []machine.Pin{lcd.cs, lcd.dc, lcd.rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	lcd.rst.Low()
	time.Sleep(64 * time.Millisecond)
	lcd.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, s := range panelInit {
		lcd.cmd(s.cmd, s.data...)
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
	}
	return lcd, nil
}

func (d *panelLCD) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

// window selects the inclusive rectangle the next pixel stream fills.
func (d *panelLCD) window(x, y, w, h int) {
	x0, y0 := uint16(x), uint16(y)
	x1, y1 := uint16(x+w-1), uint16(y+h-1)
	d.cmd(0x2A, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1))
	d.cmd(0x2B, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
	d.cmd(0x2C)
}

// fill paints a rectangle with one colour.
func (d *panelLCD) fill(x, y, w, h int, px uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	d.window(x, y, w, h)
	chunk := d.txBuf[:len(d.txBuf)&^1]
	for i := 0; i < len(chunk); i += 2 {
		chunk[i], chunk[i+1] = byte(px>>8), byte(px)
	}
	d.cs.Low()
	d.dc.High()
	for left := w * h * 2; left > 0; {
		n := min(left, len(chunk))
		d.spi.Tx(chunk[:n], nil)
		left -= n
	}
	d.cs.High()
}

// present streams a little-endian RGB565 frame to the panel, byte-swapped
// to the controller's big-endian order.
func (d *panelLCD) present(buf []byte, w, h int) error {
	if w <= 0 || h <= 0 || w > panelWidth || h > panelHeight || len(buf) < w*h*2 {
		return errors.New("lcd: bad frame")
	}
	ox, oy := (panelWidth-w)/2, (panelHeight-h)/2
	if !d.blanked {
		d.fill(0, 0, panelWidth, oy, 0)
		d.fill(0, oy+h, panelWidth, panelHeight-oy-h, 0)
		d.fill(0, oy, ox, h, 0)
		d.fill(ox+w, oy, panelWidth-ox-w, h, 0)
		d.blanked = true
	}

	d.window(ox, oy, w, h)
	chunk := d.txBuf[:len(d.txBuf)&^1]
	d.cs.Low()
	d.dc.High()
	for off, end := 0, w*h*2; off < end; {
		n := min(len(chunk), end-off)
		src := buf[off : off+n]
		for i := 0; i < n; i += 2 {
			chunk[i], chunk[i+1] = src[i+1], src[i]
		}
		d.spi.Tx(chunk[:n], nil)
		off += n
	}
	d.cs.High()
	return nil
}
