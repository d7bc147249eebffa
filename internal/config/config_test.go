package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"lifegrid/pkg/life"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file not created: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("loaded %+v, want defaults %+v", cfg, Default())
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if again != cfg {
		t.Fatalf("reloaded %+v, want %+v", again, cfg)
	}
}

func TestLoadReadsValues(t *testing.T) {
	path := writeFile(t, `
[window]
width=800
height=600
fps=60
fullscreen=true
[cell]
size=8
edgeColorR=10
edgeColorG=20
edgeColorB=30
edgeColorA=40
colorR=200
edgeWidth=2
randomColors=false
[sim]
density=0.25
seed=99
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.FPS != 60 || !cfg.Fullscreen {
		t.Fatalf("window section = %+v", cfg)
	}
	if cfg.CellSize != 8 || cfg.EdgeWidth != 2 || cfg.RandomColors {
		t.Fatalf("cell section = %+v", cfg)
	}
	if want := (color.RGBA{R: 10, G: 20, B: 30, A: 40}); cfg.EdgeColor != want {
		t.Fatalf("edge colour = %v, want %v", cfg.EdgeColor, want)
	}
	if cfg.CellColor.R != 200 || cfg.CellColor.G != life.DefaultCellColor.G {
		t.Fatalf("cell colour = %v", cfg.CellColor)
	}
	if cfg.Density != 0.25 || cfg.Seed != 99 {
		t.Fatalf("sim section = %+v", cfg)
	}
}

func TestLoadClampsRanges(t *testing.T) {
	path := writeFile(t, `
[window]
fps=5000
[cell]
size=4
edgeWidth=12
edgeColorR=900
edgeColorG=-4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 1000 {
		t.Fatalf("fps = %d, want 1000", cfg.FPS)
	}
	if cfg.EdgeWidth != 3 {
		t.Fatalf("edge width = %d, want 3", cfg.EdgeWidth)
	}
	if cfg.EdgeColor.R != 255 || cfg.EdgeColor.G != 0 {
		t.Fatalf("edge colour = %v, want clamped channels", cfg.EdgeColor)
	}

	low := writeFile(t, "[window]\nfps=0\n[cell]\nedgeWidth=-3\n")
	cfg, err = Load(low)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 1 || cfg.EdgeWidth != 0 {
		t.Fatalf("fps/edges = %d/%d, want 1/0", cfg.FPS, cfg.EdgeWidth)
	}
}

func TestLoadRejectsInvalidSizes(t *testing.T) {
	cases := map[string]error{
		"[cell]\nsize=0\n":      life.ErrInvalidCellSize,
		"[window]\nwidth=-10\n": life.ErrInvalidWindow,
		"[sim]\ndensity=2\n":    life.ErrInvalidDensity,
		"[window]\nheight=3\n":  life.ErrInvalidWindow,
	}
	for body, want := range cases {
		_, err := Load(writeFile(t, body))
		if errors.Cause(err) != want {
			t.Fatalf("Load(%q) error = %v, want cause %v", body, err, want)
		}
	}
}

func TestLoadReportsParseErrors(t *testing.T) {
	if _, err := Load(writeFile(t, "[window\nwidth=10\n")); err == nil {
		t.Fatal("expected an error for a malformed section header")
	}
}

func TestEngineConfigBuildsEngine(t *testing.T) {
	cfg := Default()
	e, err := life.NewWithConfig(cfg.Engine())
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if s := e.Size(); s.W != 256 || s.H != 144 {
		t.Fatalf("grid = %dx%d, want 256x144", s.W, s.H)
	}
	if e.GetEdges() != 1 || !e.IsRandomColors() {
		t.Fatal("engine did not pick up edge width and colour mode")
	}
}
