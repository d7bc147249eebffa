package config

import (
	"image/color"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "config.ini"

// Config holds the values read from the INI configuration file.
type Config struct {
	Width      int
	Height     int
	FPS        int
	Fullscreen bool

	CellSize     int
	EdgeWidth    int
	EdgeColor    color.RGBA
	CellColor    color.RGBA
	RandomColors bool

	Density float64
	Seed    int64
}

// Default returns the configuration written to a fresh config file.
func Default() Config {
	return Config{
		Width:        1280,
		Height:       720,
		FPS:          30,
		CellSize:     5,
		EdgeWidth:    1,
		EdgeColor:    color.RGBA{R: 60, G: 60, B: 60, A: 255},
		CellColor:    life.DefaultCellColor,
		RandomColors: true,
		Density:      life.DefaultDensity,
	}
}

// LoadOrCreate reads path, writing a default file first when none exists.
func LoadOrCreate(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("config file %s not found, creating default config file", path)
		if err := WriteDefault(path); err != nil {
			return Default(), err
		}
	}
	return Load(path)
}

// Load reads and validates the configuration at path. Missing keys fall back
// to Default; the frame rate and edge width are clamped into range.
func Load(path string) (Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return Default(), errors.Wrapf(err, "[config.Load] failed to parse file: %s", path)
	}
	c := fromFile(f)
	if err := c.Validate(); err != nil {
		return c, errors.Wrapf(err, "[config.Load] invalid settings in file: %s", path)
	}
	return c, nil
}

// WriteDefault writes the default configuration to path.
func WriteDefault(path string) error {
	f := ini.Empty()
	d := Default()

	win := f.Section("window")
	win.Key("width").SetValue(itoa(d.Width))
	win.Key("height").SetValue(itoa(d.Height))
	win.Key("fps").SetValue(itoa(d.FPS))
	win.Key("fullscreen").SetValue(btoa(d.Fullscreen))

	cell := f.Section("cell")
	cell.Key("size").SetValue(itoa(d.CellSize))
	setColor(cell, "edgeColor", d.EdgeColor)
	cell.Key("edgeWidth").SetValue(itoa(d.EdgeWidth))
	cell.Key("randomColors").SetValue(btoa(d.RandomColors))

	if err := f.SaveTo(path); err != nil {
		return errors.Wrapf(err, "[config.WriteDefault] unable to create config file: %s", path)
	}
	return nil
}

// Validate rejects sizes the engine cannot build a grid from.
func (c Config) Validate() error {
	return c.Engine().Validate()
}

// Engine converts the file settings into an engine configuration.
func (c Config) Engine() life.Config {
	return life.Config{
		Width:        c.Width,
		Height:       c.Height,
		CellSize:     c.CellSize,
		EdgeWidth:    c.EdgeWidth,
		RandomColors: c.RandomColors,
		CellColor:    c.CellColor,
		Density:      c.Density,
		Seed:         c.Seed,
	}
}

func fromFile(f *ini.File) Config {
	d := Default()
	win := f.Section("window")
	cell := f.Section("cell")
	sim := f.Section("sim")

	c := Config{
		Width:        win.Key("width").MustInt(d.Width),
		Height:       win.Key("height").MustInt(d.Height),
		FPS:          core.SpeedControl.Clamp(win.Key("fps").MustInt(d.FPS)),
		Fullscreen:   win.Key("fullscreen").MustBool(d.Fullscreen),
		CellSize:     cell.Key("size").MustInt(d.CellSize),
		EdgeColor:    readColor(cell, "edgeColor", d.EdgeColor),
		CellColor:    readColor(cell, "color", d.CellColor),
		RandomColors: cell.Key("randomColors").MustBool(d.RandomColors),
		Density:      sim.Key("density").MustFloat64(d.Density),
		Seed:         sim.Key("seed").MustInt64(d.Seed),
	}
	c.EdgeWidth = core.EdgeControl(c.CellSize).Clamp(cell.Key("edgeWidth").MustInt(d.EdgeWidth))
	return c
}

func readColor(sec *ini.Section, prefix string, def color.RGBA) color.RGBA {
	channel := func(suffix string, v uint8) uint8 {
		n := sec.Key(prefix + suffix).MustInt(int(v))
		return uint8(min(max(n, 0), 255))
	}
	return color.RGBA{
		R: channel("R", def.R),
		G: channel("G", def.G),
		B: channel("B", def.B),
		A: channel("A", def.A),
	}
}

func setColor(sec *ini.Section, prefix string, c color.RGBA) {
	sec.Key(prefix + "R").SetValue(itoa(int(c.R)))
	sec.Key(prefix + "G").SetValue(itoa(int(c.G)))
	sec.Key(prefix + "B").SetValue(itoa(int(c.B)))
	sec.Key(prefix + "A").SetValue(itoa(int(c.A)))
}

func itoa(v int) string { return strconv.Itoa(v) }

func btoa(v bool) string { return strconv.FormatBool(v) }
