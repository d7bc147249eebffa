package app

import (
	"lifegrid/internal/core"
	gridcore "lifegrid/pkg/core"
)

// Action is a shell-neutral user command, produced from key presses.
type Action int

const (
	ActionNone Action = iota
	ActionToggleRun
	ActionSpeedUp
	ActionSpeedDown
	ActionEdgesUp
	ActionEdgesDown
	ActionRegenerate
	ActionToggleColors
	ActionToggleFullscreen
	ActionToggleHUD
)

// Engine is the part of the grid engine the controller drives.
type Engine interface {
	Start()
	Stop()
	IsRunning() bool
	IsClear() bool
	ToggleCell(row, col int, alive bool)
	ClearGrid()
	CreateRandomState()
	SetEdges(width int)
	GetEdges() int
	ToggleRandomColors()
	IsRandomColors() bool
	Update()
	Generation() int
	Population() int
	Size() gridcore.Size
	CellSize() int
}

// Controller applies user actions to an engine and paces its generations.
type Controller struct {
	engine Engine
	pacer  *core.Pacer
	edges  core.Control
}

// NewController returns a Controller stepping e at rate generations per second.
func NewController(e Engine, rate int) *Controller {
	return &Controller{
		engine: e,
		pacer:  core.NewPacer(rate),
		edges:  core.EdgeControl(e.CellSize()),
	}
}

// Paint sets the cell under pixel (x, y) alive or dead. Pixels left of or
// above the grid are ignored.
func (c *Controller) Paint(x, y int, alive bool) {
	if x < 0 || y < 0 {
		return
	}
	size := c.engine.CellSize()
	c.engine.ToggleCell(y/size, x/size, alive)
}

// Apply performs a single action. Shell-specific actions are ignored.
func (c *Controller) Apply(a Action) {
	e := c.engine
	switch a {
	case ActionToggleRun:
		if e.IsRunning() {
			e.Stop()
		} else {
			e.Start()
		}
	case ActionSpeedUp:
		c.pacer.SetRate(core.SpeedControl.Adjust(c.pacer.Rate(), 1))
	case ActionSpeedDown:
		c.pacer.SetRate(core.SpeedControl.Adjust(c.pacer.Rate(), -1))
	case ActionEdgesUp:
		e.SetEdges(c.edges.Adjust(e.GetEdges(), 1))
	case ActionEdgesDown:
		e.SetEdges(c.edges.Adjust(e.GetEdges(), -1))
	case ActionRegenerate:
		c.regenerate()
	case ActionToggleColors:
		e.ToggleRandomColors()
	}
}

// regenerate seeds an empty or running grid and clears a paused one.
func (c *Controller) regenerate() {
	e := c.engine
	switch {
	case e.IsClear():
		e.CreateRandomState()
		e.Start()
	case e.IsRunning():
		e.Stop()
		e.CreateRandomState()
		e.Start()
	default:
		e.ClearGrid()
	}
}

// Tick runs the generations due since the previous frame.
func (c *Controller) Tick() {
	for n := c.pacer.Due(); n > 0; n-- {
		c.engine.Update()
	}
}

// Speed returns the generation rate.
func (c *Controller) Speed() int { return c.pacer.Rate() }

// Status returns a snapshot for titles and HUDs.
func (c *Controller) Status() core.Status {
	e := c.engine
	size := e.Size()
	return core.Status{
		Running:      e.IsRunning(),
		Speed:        c.pacer.Rate(),
		RandomColors: e.IsRandomColors(),
		Edges:        e.GetEdges(),
		Generation:   e.Generation(),
		Population:   e.Population(),
		Cols:         size.W,
		Rows:         size.H,
	}
}
