package gfx

func clearRGB565(buf []byte, pixel uint16) {
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

func setPixelRGB565(buf []byte, stride, w, h, x, y int, pixel uint16) {
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	off := y*stride + x*2
	if off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func fillRectRGB565(buf []byte, stride, w, h, x0, y0, rw, rh int, pixel uint16) {
	x1 := minInt(x0+rw, w)
	y1 := minInt(y0+rh, h)
	x0 = maxInt(x0, 0)
	y0 = maxInt(y0, 0)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for y := y0; y < y1; y++ {
		row := y * stride
		for x := x0; x < x1; x++ {
			off := row + x*2
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// drawLineRGB565 is Bresenham with per-pixel clipping.
func drawLineRGB565(buf []byte, stride, w, h, x0, y0, x1, y1 int, pixel uint16) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		setPixelRGB565(buf, stride, w, h, x0, y0, pixel)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCircleRGB565 is the midpoint circle.
func drawCircleRGB565(buf []byte, stride, w, h, cx, cy, r int, pixel uint16) {
	x := r
	y := 0
	err := 0
	for x >= y {
		setCirclePoints(buf, stride, w, h, cx, cy, x, y, pixel)
		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func setCirclePoints(buf []byte, stride, w, h, cx, cy, x, y int, pixel uint16) {
	setPixelRGB565(buf, stride, w, h, cx+x, cy+y, pixel)
	setPixelRGB565(buf, stride, w, h, cx+y, cy+x, pixel)
	setPixelRGB565(buf, stride, w, h, cx-x, cy+y, pixel)
	setPixelRGB565(buf, stride, w, h, cx-y, cy+x, pixel)
	setPixelRGB565(buf, stride, w, h, cx-x, cy-y, pixel)
	setPixelRGB565(buf, stride, w, h, cx-y, cy-x, pixel)
	setPixelRGB565(buf, stride, w, h, cx+x, cy-y, pixel)
	setPixelRGB565(buf, stride, w, h, cx+y, cy-x, pixel)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
