package render

import "image/color"

// Canvas is an RGBA pixel buffer that live cells are painted onto before the
// frame is uploaded to the screen. It implements life.Surface.
type Canvas struct {
	w, h int
	buf  []byte
}

// NewCanvas allocates a canvas of w*h pixels.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	return &Canvas{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Pixels exposes the backing buffer in RGBA order, row-major.
func (c *Canvas) Pixels() []byte { return c.buf }

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.RGBA) {
	fillRGBA(c.buf, col)
}

// FillRect paints a w*h rectangle with its top-left corner at (x, y). The
// rectangle is clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.w), min(y+h, c.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		row := (py*c.w + x0) * 4
		fillRGBA(c.buf[row:row+(x1-x0)*4], col)
	}
}

// At returns the pixel at (x, y), or transparent black outside the canvas.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	base := (y*c.w + x) * 4
	return color.RGBA{R: c.buf[base], G: c.buf[base+1], B: c.buf[base+2], A: c.buf[base+3]}
}

// fillRGBA writes col into every pixel of buf.
func fillRGBA(buf []byte, col color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
