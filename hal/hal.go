package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// ErrBadBuffer is returned for buffer ids outside the pair.
var ErrBadBuffer = errors.New("bad buffer id")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
}

// BufferID names one of the two display buffers.
type BufferID uint8

const BufferCount = 2

// Other returns the opposite buffer of the pair.
func (id BufferID) Other() BufferID { return id ^ 1 }

// Display is a double-buffered raster: two framebuffers of equal size,
// exactly one of which is shown at a time.
type Display interface {
	Width() int
	Height() int
	Framebuffer(id BufferID) Framebuffer
	// Show makes buffer id the visible one.
	Show(id BufferID) error
	Shown() BufferID
}

// KeyCode is a USB HID keyboard usage id.
type KeyCode uint8

const (
	KeyA          KeyCode = 0x04
	Key1          KeyCode = 0x1E
	Key2          KeyCode = 0x1F
	Key3          KeyCode = 0x20
	Key4          KeyCode = 0x21
	Key5          KeyCode = 0x22
	Key0          KeyCode = 0x27
	KeyEnter      KeyCode = 0x28
	KeyEscape     KeyCode = 0x29
	KeyBackspace  KeyCode = 0x2A
	KeyTab        KeyCode = 0x2B
	KeySpace      KeyCode = 0x2C
	KeyMinus      KeyCode = 0x2D
	KeyEqual      KeyCode = 0x2E
	KeyLeftBrace  KeyCode = 0x2F
	KeyRightBrace KeyCode = 0x30
	KeyRight      KeyCode = 0x4F
	KeyLeft       KeyCode = 0x50
	KeyDown       KeyCode = 0x51
	KeyUp         KeyCode = 0x52
)

// FirstKey is the lowest usage id that names a real key. Ids below it are
// status bits (bit 0 of byte 0 is the "no keys pressed" flag).
const FirstKey = KeyA

const KeyStateBytes = 32

// KeyState is a bitmap of currently held keys indexed by HID usage id.
type KeyState [KeyStateBytes]byte

// Down reports whether code is held.
func (k KeyState) Down(code KeyCode) bool {
	return k[code>>3]&(1<<(code&7)) != 0
}

func (k *KeyState) Press(code KeyCode) {
	k[code>>3] |= 1 << (code & 7)
}

func (k *KeyState) Release(code KeyCode) {
	k[code>>3] &^= 1 << (code & 7)
}

// Any reports whether at least one real key is held.
func (k KeyState) Any() bool {
	if k[0]&^0x0F != 0 {
		return true
	}
	for _, b := range k[1:] {
		if b != 0 {
			return true
		}
	}
	return false
}

// Keyboard exposes the current keystate bitmap. It never blocks.
type Keyboard interface {
	KeyState() KeyState
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// One tick is one millisecond on every platform.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the demo and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	// Input is nil on boards without keys.
	Input() Input
	Time() Time
}
