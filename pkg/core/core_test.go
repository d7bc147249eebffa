package core

import "testing"

func TestGridWindowClipsAtEdges(t *testing.T) {
	g := NewGrid(4, 3)

	cases := []struct {
		x, y                   int
		minX, maxX, minY, maxY int
	}{
		{0, 0, 0, 1, 0, 1},
		{3, 2, 2, 3, 1, 2},
		{1, 1, 0, 2, 0, 2},
	}
	for _, c := range cases {
		minX, maxX, minY, maxY := g.Window(c.x, c.y)
		if minX != c.minX || maxX != c.maxX || minY != c.minY || maxY != c.maxY {
			t.Fatalf("Window(%d,%d) = %d,%d,%d,%d, want %d,%d,%d,%d",
				c.x, c.y, minX, maxX, minY, maxY, c.minX, c.maxX, c.minY, c.maxY)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(4, 3)
	if !g.Contains(3, 2) {
		t.Fatal("expected (3,2) inside a 4x3 grid")
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if g.Contains(p[0], p[1]) {
			t.Fatalf("expected %v outside a 4x3 grid", p)
		}
	}
	if NewGrid(-2, 5).Len() != 0 {
		t.Fatal("negative width must collapse to an empty grid")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Color() != b.Color() {
			t.Fatalf("colour draw %d differs for equal seeds", i)
		}
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("chance draw %d differs for equal seeds", i)
		}
	}
}

func TestRNGChanceSaturates(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 32; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestRNGColorOpaque(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 32; i++ {
		if c := r.Color(); c.A != 0xff {
			t.Fatalf("colour %v is not opaque", c)
		}
	}
}
