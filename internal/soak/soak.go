package soak

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifegrid/pkg/life"
)

// ErrInvalidOptions is returned when a soak run has nothing to evaluate.
var ErrInvalidOptions = errors.New("boards and generations must be positive")

// cancelCheckInterval is how many generations a board runs between context checks.
const cancelCheckInterval = 64

// Options controls a soak run.
type Options struct {
	Boards      int
	Generations int
	Width       int
	Height      int
	Workers     int
	Density     float64
	// Seed is the seed of the first board; board i uses Seed+i. Zero draws
	// the first seed from the clock.
	Seed int64
}

// DefaultOptions returns the standard soak configuration.
func DefaultOptions() Options {
	return Options{
		Boards:      16,
		Generations: 1000,
		Width:       128,
		Height:      96,
		Workers:     runtime.NumCPU(),
		Density:     life.DefaultDensity,
		Seed:        1,
	}
}

// Result describes how one board ended.
type Result struct {
	Seed        int64
	Generations int
	Population  int
	Extinct     bool
}

// Run evolves independent random boards in parallel. Each board is owned by a
// single goroutine for its whole run. Results are in board order.
func Run(ctx context.Context, o Options) ([]Result, error) {
	if o.Boards <= 0 || o.Generations <= 0 {
		return nil, errors.Wrapf(ErrInvalidOptions, "boards=%d generations=%d", o.Boards, o.Generations)
	}
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	base := o.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	results := make([]Result, o.Boards)
	for i := range results {
		seed := base + int64(i)
		eg.Go(func() error {
			r, err := runBoard(ctx, o, seed)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runBoard(ctx context.Context, o Options, seed int64) (Result, error) {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height, cfg.CellSize = o.Width, o.Height, 1
	cfg.Density = o.Density
	cfg.Seed = seed
	e, err := life.NewWithConfig(cfg)
	if err != nil {
		return Result{}, errors.Wrapf(err, "[soak.runBoard] seed %d", seed)
	}

	e.CreateRandomState()
	e.Start()
	for e.IsRunning() && e.Generation() < o.Generations {
		if e.Generation()%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		e.Update()
	}
	return Result{
		Seed:        seed,
		Generations: e.Generation(),
		Population:  e.Population(),
		Extinct:     e.IsClear(),
	}, nil
}
