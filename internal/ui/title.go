package ui

import (
	"fmt"
	"strings"

	"lifegrid/internal/core"
)

// DefaultName is shown at the start of the window title.
const DefaultName = "Game of Life"

const separator = " | "

// Title builds the window title: the name followed by the key bindings and
// the state each one controls.
func Title(s core.Status) string {
	name := s.Name
	if name == "" {
		name = DefaultName
	}
	parts := []string{
		name,
		"[SPC] " + runLabel(s.Running),
		fmt.Sprintf("[UP/DOWN] Speed: %d", s.Speed),
		"[C] Colors: " + onOff(s.RandomColors),
		fmt.Sprintf("[LEFT/RIGHT] Edges: %d", s.Edges),
		"[ENTER] Clear/Generate canvas",
		"[LMB/RMB] Draw/Clear point",
	}
	return strings.Join(parts, separator)
}

// StatusLines returns the HUD text, one entry per line.
func StatusLines(s core.Status) []string {
	return []string{
		"State:      " + runLabel(s.Running),
		fmt.Sprintf("Speed:      %d gen/s", s.Speed),
		fmt.Sprintf("Generation: %d", s.Generation),
		fmt.Sprintf("Population: %d", s.Population),
		fmt.Sprintf("Grid:       %dx%d", s.Cols, s.Rows),
		"Colors:     " + onOff(s.RandomColors),
		fmt.Sprintf("Edges:      %d", s.Edges),
		"[H] hide    [F] fullscreen",
	}
}

func runLabel(running bool) string {
	if running {
		return "Running"
	}
	return "Pause"
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
