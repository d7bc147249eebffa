package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"lifegrid/internal/soak"
)

func main() {
	o := soak.DefaultOptions()
	flaggy.SetName("life-soak")
	flaggy.SetDescription("Evolve many random boards in parallel and report how they end")
	flaggy.Int(&o.Boards, "b", "boards", "Number of independent boards")
	flaggy.Int(&o.Generations, "g", "generations", "Generation limit per board")
	flaggy.Int(&o.Width, "x", "width", "Board width in cells")
	flaggy.Int(&o.Height, "y", "height", "Board height in cells")
	flaggy.Int(&o.Workers, "w", "workers", "Boards evaluated in parallel")
	flaggy.Float64(&o.Density, "d", "density", "Probability a cell starts alive")
	flaggy.Int64(&o.Seed, "s", "seed", "Seed of the first board (0 seeds from the clock)")
	flaggy.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("soaking %d boards of %dx%d for up to %d generations", o.Boards, o.Width, o.Height, o.Generations)
	start := time.Now()
	results, err := soak.Run(ctx, o)
	if err != nil {
		log.Fatal(err)
	}

	extinct := 0
	for _, r := range results {
		status := aurora.Green("alive").String()
		if r.Extinct {
			status = aurora.Red("extinct").String()
			extinct++
		}
		fmt.Printf("  seed %-8d generations %-6d population %-6d %s\n", r.Seed, r.Generations, r.Population, status)
	}
	fmt.Printf("%s %d/%d boards extinct in %v\n",
		aurora.Cyan("Finished:"), extinct, len(results), time.Since(start).Round(time.Millisecond))
}
