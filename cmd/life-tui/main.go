package main

import (
	"log"

	"github.com/integrii/flaggy"

	"lifegrid/internal/app"
	"lifegrid/internal/tui"
)

func main() {
	opts := app.NewOptions()
	flaggy.SetName("life-tui")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	opts.Bind(flaggy.DefaultParser)
	flaggy.Parse()

	cfg, err := opts.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	shell, err := tui.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := shell.Run(); err != nil {
		log.Fatal(err)
	}
}
