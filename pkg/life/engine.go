package life

import (
	"image/color"

	"lifegrid/pkg/core"
)

// Cell is a single grid position. Color is only meaningful while Alive.
type Cell struct {
	Alive bool
	Color color.RGBA
}

// Engine implements Conway's Game of Life on a bounded grid sized to a window.
// It is not safe for concurrent use; one goroutine owns an Engine.
type Engine struct {
	grid     core.Grid
	cellSize int
	cur      []Cell
	nxt      []Cell
	rng      *core.RNG

	running      bool
	randomColors bool
	edgeWidth    int
	cellColor    color.RGBA
	density      float64

	population int
	generation int
}

// New returns an Engine for a window of the given pixel dimensions, using
// defaults for everything else.
func New(windowWidth, windowHeight, cellSize int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = windowWidth
	cfg.Height = windowHeight
	cfg.CellSize = cellSize
	return NewWithConfig(cfg)
}

// NewWithConfig returns an Engine configured from cfg. All cells start dead
// and the engine starts paused.
func NewWithConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGrid(cfg.Width/cfg.CellSize, cfg.Height/cfg.CellSize)
	e := &Engine{
		grid:         g,
		cellSize:     cfg.CellSize,
		cur:          make([]Cell, g.Len()),
		nxt:          make([]Cell, g.Len()),
		rng:          core.NewRNG(cfg.Seed),
		randomColors: cfg.RandomColors,
		cellColor:    cfg.CellColor,
		density:      cfg.Density,
	}
	e.SetEdges(cfg.EdgeWidth)
	return e, nil
}

// Size returns the grid dimensions: W columns by H rows.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// CellSize returns the pixel size of one cell.
func (e *Engine) CellSize() int { return e.cellSize }

// Start lets Update advance generations.
func (e *Engine) Start() { e.running = true }

// Stop pauses the simulation.
func (e *Engine) Stop() { e.running = false }

// IsRunning reports whether Update advances generations.
func (e *Engine) IsRunning() bool { return e.running }

// IsClear reports whether no cell is alive.
func (e *Engine) IsClear() bool { return e.population == 0 }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.population }

// Generation returns the number of generations stepped since the grid was
// last cleared or randomized.
func (e *Engine) Generation() int { return e.generation }

// CellAt returns the cell at (row, col). The second result is false for
// positions outside the grid.
func (e *Engine) CellAt(row, col int) (Cell, bool) {
	if !e.grid.Contains(col, row) {
		return Cell{}, false
	}
	return e.cur[e.grid.Index(col, row)], true
}

// ToggleCell sets the cell at (row, col) alive or dead. Positions outside the
// grid are ignored; they come from clicks in the window padding.
func (e *Engine) ToggleCell(row, col int, alive bool) {
	if !e.grid.Contains(col, row) {
		return
	}
	c := &e.cur[e.grid.Index(col, row)]
	switch {
	case alive && !c.Alive:
		*c = Cell{Alive: true, Color: e.birthColor()}
		e.population++
	case !alive && c.Alive:
		*c = Cell{}
		e.population--
	}
}

// ClearGrid kills every cell. The run state is left alone; the next Update
// stops the engine.
func (e *Engine) ClearGrid() {
	clear(e.cur)
	e.population = 0
	e.generation = 0
}

// CreateRandomState brings each cell to life with the configured density.
// Cells that were already alive and stay alive keep their colour.
func (e *Engine) CreateRandomState() {
	pop := 0
	for i := range e.cur {
		c := &e.cur[i]
		if !e.rng.Chance(e.density) {
			*c = Cell{}
			continue
		}
		if !c.Alive {
			*c = Cell{Alive: true, Color: e.birthColor()}
		}
		pop++
	}
	e.population = pop
	e.generation = 0
}

// SetEdges stores the border width drawn around each cell, clamped to
// [0, cellSize-1].
func (e *Engine) SetEdges(width int) {
	e.edgeWidth = min(max(width, 0), e.cellSize-1)
}

// GetEdges returns the border width drawn around each cell.
func (e *Engine) GetEdges() int { return e.edgeWidth }

// ToggleRandomColors flips random colouring for future births. Live cells keep
// the colour they were born with.
func (e *Engine) ToggleRandomColors() { e.randomColors = !e.randomColors }

// IsRandomColors reports whether newly born cells get a random colour.
func (e *Engine) IsRandomColors() bool { return e.randomColors }

func (e *Engine) birthColor() color.RGBA {
	if e.randomColors {
		return e.rng.Color()
	}
	return e.cellColor
}
