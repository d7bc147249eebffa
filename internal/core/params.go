package core

// Control describes a bounded integer setting adjusted in fixed steps from
// the keyboard, such as the generation rate or the cell edge width.
type Control struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// Clamp limits v to the control's range.
func (c Control) Clamp(v int) int {
	if c.Max < c.Min {
		return c.Min
	}
	return min(max(v, c.Min), c.Max)
}

// Adjust moves v by one step in the given direction and clamps the result.
func (c Control) Adjust(v, direction int) int {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	switch {
	case direction > 0:
		v += step
	case direction < 0:
		v -= step
	}
	return c.Clamp(v)
}

// SpeedControl bounds the generation rate.
var SpeedControl = Control{Key: "speed", Label: "Speed", Step: 1, Min: MinRate, Max: MaxRate}

// EdgeControl bounds the edge width for the given cell size.
func EdgeControl(cellSize int) Control {
	return Control{Key: "edges", Label: "Edges", Step: 1, Min: 0, Max: cellSize - 1}
}
