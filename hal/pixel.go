package hal

import "image/color"

// RGB565 packs an 8-bit-per-channel colour, dropping the low bits.
func RGB565(c color.RGBA) uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B>>3)
}

// RGBA expands a packed pixel back to 8 bits per channel, full scale.
func RGBA(p uint16) color.RGBA {
	r, g, b := (p>>11)&0x1F, (p>>5)&0x3F, p&0x1F
	return color.RGBA{
		R: uint8(r * 255 / 31),
		G: uint8(g * 255 / 63),
		B: uint8(b * 255 / 31),
		A: 0xFF,
	}
}
