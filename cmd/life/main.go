//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"lifegrid/internal/app"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"
)

// inputTPS is the rate input is polled at; generations are paced separately.
const inputTPS = 60

func main() {
	opts := app.NewOptions()
	flaggy.SetName("life")
	flaggy.SetDescription("Conway's Game of Life in a window")
	opts.Bind(flaggy.DefaultParser)
	flaggy.Parse()

	cfg, err := opts.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	engine, err := life.NewWithConfig(cfg.Engine())
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}

	game := app.New(engine, cfg)

	ebiten.SetWindowTitle(ui.DefaultName)
	ebiten.SetTPS(inputTPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
