package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Grid holds the row-major index math for a bounded W*H grid. It carries no
// cell storage of its own; simulations keep their buffers alongside it.
type Grid struct {
	W, H int
}

// NewGrid returns the geometry for a grid with the given dimensions.
// Non-positive dimensions collapse to zero so Len never goes negative.
func NewGrid(w, h int) Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Grid{W: w, H: h}
}

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Len returns the number of cells in the grid.
func (g Grid) Len() int { return g.W * g.H }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies inside the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Window returns the inclusive bounds of the 3x3 block centred on (x, y),
// clipped to the grid. Cells outside the grid are never part of the window.
func (g Grid) Window(x, y int) (minX, maxX, minY, maxY int) {
	minX = max(0, x-1)
	maxX = min(g.W-1, x+1)
	minY = max(0, y-1)
	maxY = min(g.H-1, y+1)
	return minX, maxX, minY, maxY
}
