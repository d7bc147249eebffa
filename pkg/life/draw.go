package life

import "image/color"

// Surface is the drawing target Draw paints live cells onto. Coordinates are
// in pixels.
type Surface interface {
	FillRect(x, y, w, h int, c color.RGBA)
}

// Draw paints every live cell as a filled square inset by the edge width on
// each side. Dead cells are skipped so the background shows through. Draw
// does not modify the engine.
func (e *Engine) Draw(s Surface) {
	g := e.grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := e.cur[g.Index(x, y)]
			if !c.Alive {
				continue
			}
			px, py, size := e.cellRect(x, y)
			s.FillRect(px, py, size, size, e.renderColor(c))
		}
	}
}

// RenderColor returns the colour Draw uses for the cell at (row, col). The
// second result is false when the cell is dead or outside the grid.
func (e *Engine) RenderColor(row, col int) (color.RGBA, bool) {
	c, ok := e.CellAt(row, col)
	if !ok || !c.Alive {
		return color.RGBA{}, false
	}
	return e.renderColor(c), true
}

func (e *Engine) renderColor(c Cell) color.RGBA {
	if e.randomColors {
		return c.Color
	}
	return e.cellColor
}

// cellRect returns the top-left pixel and side length of the square drawn for
// the cell at column x, row y. When the edges leave no room the cell shrinks
// to a single centred pixel.
func (e *Engine) cellRect(x, y int) (px, py, size int) {
	size = e.cellSize - 2*e.edgeWidth
	if size < 1 {
		off := (e.cellSize - 1) / 2
		return x*e.cellSize + off, y*e.cellSize + off, 1
	}
	return x*e.cellSize + e.edgeWidth, y*e.cellSize + e.edgeWidth, size
}
