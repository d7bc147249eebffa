package core

// Status is a snapshot of the simulation and shell state that shells render
// into window titles and HUD panels.
type Status struct {
	Name         string
	Running      bool
	Speed        int
	RandomColors bool
	Edges        int
	Generation   int
	Population   int
	Cols, Rows   int
}
