//go:build ebiten

package app

import (
	"image/color"

	"lifegrid/internal/config"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the grid engine to the ebiten.Game interface.
type Game struct {
	engine  *life.Engine
	ctrl    *Controller
	canvas  *render.Canvas
	painter *render.GridPainter
	hud     *ui.HUD

	background    color.RGBA
	width, height int
	title         string
}

// New constructs a Game drawing e into a window described by cfg.
func New(e *life.Engine, cfg config.Config) *Game {
	return &Game{
		engine:     e,
		ctrl:       NewController(e, cfg.FPS),
		canvas:     render.NewCanvas(cfg.Width, cfg.Height),
		painter:    render.NewGridPainter(cfg.Width, cfg.Height),
		hud:        ui.NewHUD(),
		background: cfg.EdgeColor,
		width:      cfg.Width,
		height:     cfg.Height,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if left, right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight); left || right {
		x, y := ebiten.CursorPosition()
		g.ctrl.Paint(x, y, left)
	}

	switch a := pollAction(); a {
	case ActionToggleFullscreen:
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case ActionToggleHUD:
		g.hud.Toggle()
	default:
		g.ctrl.Apply(a)
	}

	g.ctrl.Tick()

	if title := ui.Title(g.ctrl.Status()); title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
	return nil
}

// pollAction returns the first action whose key fired this frame. Speed keys
// repeat while held; the others fire once per press.
func pollAction() Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return ActionToggleRun
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		return ActionSpeedUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		return ActionSpeedDown
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		return ActionEdgesUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		return ActionEdgesDown
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return ActionRegenerate
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return ActionToggleColors
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		return ActionToggleFullscreen
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		return ActionToggleHUD
	}
	return ActionNone
}

// Draw renders the current grid state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Fill(g.background)
	g.engine.Draw(g.canvas)
	g.painter.Blit(screen, g.canvas)
	g.hud.Draw(screen, g.ctrl.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
