package life

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCellSize is returned when the cell size is not positive.
	ErrInvalidCellSize = errors.New("cell size must be positive")
	// ErrInvalidWindow is returned when the window cannot hold a single cell.
	ErrInvalidWindow = errors.New("window must fit at least one cell")
	// ErrInvalidDensity is returned when the random fill probability is outside [0, 1].
	ErrInvalidDensity = errors.New("density must be within [0, 1]")
)

// DefaultCellColor is used for live cells while random colours are off.
var DefaultCellColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}

// DefaultDensity is the probability that CreateRandomState brings a cell to life.
const DefaultDensity = 0.5

// Config holds the already-parsed values an Engine is built from.
type Config struct {
	// Width and Height are the window dimensions in pixels.
	Width  int
	Height int
	// CellSize is the edge length of one cell in pixels.
	CellSize int

	EdgeWidth    int
	RandomColors bool
	CellColor    color.RGBA
	Density      float64

	// Seed drives colour and random-fill draws. Zero picks a time-based seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     1280,
		Height:    720,
		CellSize:  5,
		CellColor: DefaultCellColor,
		Density:   DefaultDensity,
	}
}

// Validate rejects configurations that would produce an empty or degenerate grid.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidCellSize, "cell size %d", c.CellSize)
	}
	if c.Width < c.CellSize || c.Height < c.CellSize {
		return errors.Wrapf(ErrInvalidWindow, "window %dx%d with cell size %d", c.Width, c.Height, c.CellSize)
	}
	if math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "density %v", c.Density)
	}
	return nil
}
