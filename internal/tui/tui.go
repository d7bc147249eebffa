package tui

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"
)

const (
	gridView   = "grid"
	statusView = "status"
	helpView   = "help"

	frameInterval = time.Second / 60
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Shell is a terminal front end for the grid engine. The engine is created on
// the first layout, sized to the grid view, and only touched from the gocui
// main loop.
type Shell struct {
	cfg     config.Config
	g       *gocui.Gui
	k       []keyBinding
	engine  *life.Engine
	ctrl    *app.Controller
	surface *TextSurface
	done    chan struct{}
}

// New creates a terminal shell. Cell size and edge settings from cfg are
// ignored; every terminal character is one cell.
func New(cfg config.Config) (*Shell, error) {
	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		return nil, errors.Wrap(err, "[tui.New] failed to initialise terminal")
	}
	g.Mouse = true

	s := &Shell{cfg: cfg, g: g, done: make(chan struct{})}
	s.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", s.cmdQuit, ""},
		{'q', "Q", "Exit", s.cmdQuit, ""},
		{gocui.KeySpace, "SPC", "Run/Pause", s.action(app.ActionToggleRun), ""},
		{gocui.KeyEnter, "ENTER", "Clear/Generate", s.action(app.ActionRegenerate), ""},
		{'+', "+", "Faster", s.action(app.ActionSpeedUp), ""},
		{'-', "-", "Slower", s.action(app.ActionSpeedDown), ""},
		{'c', "C", "Colors", s.action(app.ActionToggleColors), ""},
		{gocui.MouseLeft, "LMB", "Draw", s.cmdPaint(true), gridView},
		{gocui.MouseRight, "RMB", "Erase", s.cmdPaint(false), gridView},
	}
	g.SetManagerFunc(s.layout)
	if err := s.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}
	return s, nil
}

func (s *Shell) initKeyBindings() error {
	for _, kb := range s.k {
		h := kb.handler
		if err := s.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return errors.Wrapf(err, "[tui.New] failed to bind %s", kb.name)
		}
	}
	return nil
}

// Run drives the terminal until the user quits.
func (s *Shell) Run() error {
	defer s.g.Close()
	go s.tick()
	defer close(s.done)
	if err := s.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// tick schedules one frame per interval on the gocui main loop.
func (s *Shell) tick() {
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			s.g.Update(s.frame)
		}
	}
}

func (s *Shell) frame(g *gocui.Gui) error {
	if s.ctrl == nil {
		return nil
	}
	s.ctrl.Tick()
	return s.render(g)
}

func (s *Shell) render(g *gocui.Gui) error {
	v, err := g.View(gridView)
	if err != nil {
		return err
	}
	v.Clear()
	s.surface.Reset()
	s.engine.Draw(s.surface)
	_, _ = fmt.Fprint(v, s.surface.String())

	if sv, err := g.View(statusView); err == nil {
		sv.Clear()
		st := s.ctrl.Status()
		_, _ = fmt.Fprintf(sv, "%s %s  %s %d gen/s  %s %d  %s %d  %s %s",
			label("State"), runState(st.Running),
			label("Speed"), st.Speed,
			label("Generation"), st.Generation,
			label("Population"), st.Population,
			label("Colors"), onOff(st.RandomColors))
	}
	return nil
}

func (s *Shell) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(gridView, 0, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = ui.DefaultName
		v.Frame = true
		if err := s.start(v); err != nil {
			return err
		}
	}

	if v, err := g.SetView(statusView, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
	}

	if v, err := g.SetView(helpView, -1, maxY-2, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		for i, k := range s.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprint(v, b.String())
	}
	return nil
}

// start creates the engine once the grid view has a size.
func (s *Shell) start(v *gocui.View) error {
	w, h := v.Size()
	cfg := s.cfg.Engine()
	cfg.Width, cfg.Height, cfg.CellSize, cfg.EdgeWidth = w, h, 1, 0
	e, err := life.NewWithConfig(cfg)
	if err != nil {
		return errors.Wrapf(err, "[tui.layout] terminal too small for a grid (%dx%d)", w, h)
	}
	s.engine = e
	s.ctrl = app.NewController(e, s.cfg.FPS)
	s.surface = NewTextSurface(w, h)
	return nil
}

func (s *Shell) action(a app.Action) func(*gocui.View) error {
	return func(*gocui.View) error {
		if s.ctrl != nil {
			s.ctrl.Apply(a)
		}
		return nil
	}
}

func (s *Shell) cmdPaint(alive bool) func(*gocui.View) error {
	return func(v *gocui.View) error {
		if s.ctrl == nil {
			return nil
		}
		cx, cy := v.Cursor()
		ox, oy := v.Origin()
		s.ctrl.Paint(cx+ox, cy+oy, alive)
		return s.render(s.g)
	}
}

func (s *Shell) cmdQuit(*gocui.View) error {
	return gocui.ErrQuit
}

func label(name string) string {
	return aurora.Green(name + ":").String()
}

func runState(running bool) string {
	if running {
		return aurora.Cyan("running").String()
	}
	return aurora.Blue("paused").String()
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
