package life

// Update advances the simulation by one generation while running. It always
// finishes by stopping the engine if no cell is alive.
func (e *Engine) Update() {
	if e.running {
		e.step()
	}
	if e.IsClear() {
		e.Stop()
	}
}

// step computes the next generation from cur into nxt and swaps the buffers,
// so every cell sees neighbour counts from the same generation.
func (e *Engine) step() {
	g := e.grid
	pop := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := g.Index(x, y)
			cell := e.cur[idx]
			n := e.neighbors(x, y)
			next := &e.nxt[idx]
			switch {
			case cell.Alive && (n == 2 || n == 3):
				*next = cell
			case !cell.Alive && n == 3:
				*next = Cell{Alive: true, Color: e.birthColor()}
			default:
				*next = Cell{}
			}
			if next.Alive {
				pop++
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.population = pop
	e.generation++
}

// neighbors counts live cells in the Moore neighbourhood of (x, y). The grid
// does not wrap.
func (e *Engine) neighbors(x, y int) int {
	minX, maxX, minY, maxY := e.grid.Window(x, y)
	count := 0
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if e.cur[e.grid.Index(nx, ny)].Alive {
				count++
			}
		}
	}
	return count
}
