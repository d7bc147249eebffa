package ui

import (
	"strings"
	"testing"

	"lifegrid/internal/core"
)

func TestTitle(t *testing.T) {
	s := core.Status{Running: true, Speed: 30, RandomColors: true, Edges: 1}
	want := "Game of Life | [SPC] Running | [UP/DOWN] Speed: 30 | [C] Colors: ON | " +
		"[LEFT/RIGHT] Edges: 1 | [ENTER] Clear/Generate canvas | [LMB/RMB] Draw/Clear point"
	if got := Title(s); got != want {
		t.Fatalf("Title =\n%q\nwant\n%q", got, want)
	}

	s = core.Status{Name: "Life", Speed: 1}
	got := Title(s)
	for _, part := range []string{"Life | ", "[SPC] Pause", "[C] Colors: OFF", "Edges: 0"} {
		if !strings.Contains(got, part) {
			t.Fatalf("Title %q missing %q", got, part)
		}
	}
}

func TestStatusLines(t *testing.T) {
	lines := StatusLines(core.Status{Generation: 12, Population: 345, Cols: 256, Rows: 144})
	joined := strings.Join(lines, "\n")
	for _, part := range []string{"Generation: 12", "Population: 345", "256x144", "Pause"} {
		if !strings.Contains(joined, part) {
			t.Fatalf("status lines missing %q:\n%s", part, joined)
		}
	}
}
