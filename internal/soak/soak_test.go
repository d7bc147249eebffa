package soak

import (
	"context"
	"slices"
	"testing"

	"github.com/pkg/errors"

	"lifegrid/pkg/life"
)

func smallOptions() Options {
	o := DefaultOptions()
	o.Boards = 6
	o.Generations = 40
	o.Width = 24
	o.Height = 16
	o.Workers = 3
	o.Seed = 100
	return o
}

func TestRunDeterministic(t *testing.T) {
	a, err := Run(context.Background(), smallOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(context.Background(), smallOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Fatalf("equal seeds gave different results:\n%v\n%v", a, b)
	}
	for i, r := range a {
		if r.Seed != 100+int64(i) {
			t.Fatalf("board %d seed = %d, want %d", i, r.Seed, 100+i)
		}
		if r.Generations > 40 {
			t.Fatalf("board %d ran %d generations, limit 40", i, r.Generations)
		}
		if r.Extinct != (r.Population == 0) {
			t.Fatalf("board %d extinct=%v with population %d", i, r.Extinct, r.Population)
		}
	}
}

func TestRunClockSeedIsReproducible(t *testing.T) {
	o := smallOptions()
	o.Seed = 0
	a, err := Run(context.Background(), o)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	base := a[0].Seed
	if base == 0 {
		t.Fatalf("clock-seeded run reported seed 0")
	}
	for i, r := range a {
		if r.Seed != base+int64(i) {
			t.Fatalf("board %d seed = %d, want %d", i, r.Seed, base+int64(i))
		}
	}

	o.Seed = base
	b, err := Run(context.Background(), o)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Fatalf("replaying seed %d gave different results:\n%v\n%v", base, a, b)
	}
}

func TestRunEmptyBoardsGoExtinct(t *testing.T) {
	o := smallOptions()
	o.Density = 0
	results, err := Run(context.Background(), o)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, r := range results {
		if !r.Extinct || r.Generations != 1 {
			t.Fatalf("board %d = %+v, want extinct after one generation", i, r)
		}
	}
}

func TestRunRejectsInvalidOptions(t *testing.T) {
	o := smallOptions()
	o.Boards = 0
	if _, err := Run(context.Background(), o); errors.Cause(err) != ErrInvalidOptions {
		t.Fatalf("error = %v, want cause %v", err, ErrInvalidOptions)
	}

	o = smallOptions()
	o.Width = 0
	if _, err := Run(context.Background(), o); errors.Cause(err) != life.ErrInvalidWindow {
		t.Fatalf("error = %v, want cause %v", err, life.ErrInvalidWindow)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, smallOptions()); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
