package tui

import (
	"image/color"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	liveFiller = "█"
	deadFiller = " "
)

// TextSurface implements life.Surface on a grid of terminal cells, one
// character per pixel. Engines drawn onto it use a cell size of 1.
type TextSurface struct {
	w, h  int
	cells []color.RGBA
	lit   []bool
}

// NewTextSurface allocates a w*h character surface.
func NewTextSurface(w, h int) *TextSurface {
	w, h = max(w, 0), max(h, 0)
	return &TextSurface{w: w, h: h, cells: make([]color.RGBA, w*h), lit: make([]bool, w*h)}
}

// Reset blanks the surface.
func (s *TextSurface) Reset() {
	clear(s.lit)
}

// FillRect lights every character inside the rectangle, clipped to the surface.
func (s *TextSurface) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.w), min(y+h, s.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			i := py*s.w + px
			s.cells[i] = c
			s.lit[i] = true
		}
	}
}

// String renders the surface as newline-separated rows with live characters
// coloured by their nearest xterm-256 palette entry.
func (s *TextSurface) String() string {
	var b strings.Builder
	for y := 0; y < s.h; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < s.w; x++ {
			i := y*s.w + x
			if !s.lit[i] {
				b.WriteString(deadFiller)
				continue
			}
			b.WriteString(aurora.Index(xterm256(s.cells[i]), liveFiller).String())
		}
	}
	return b.String()
}

// xterm256 maps c onto the 6x6x6 colour cube of the xterm-256 palette.
func xterm256(c color.RGBA) uint8 {
	level := func(v uint8) uint8 { return uint8((int(v)*5 + 127) / 255) }
	return 16 + 36*level(c.R) + 6*level(c.G) + level(c.B)
}
