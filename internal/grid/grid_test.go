package grid

import (
	"math/rand"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, want int
	}{
		{0, 32, 0},
		{31, 32, 31},
		{32, 32, 0},
		{33, 32, 1},
		{-1, 32, 31},
		{-32, 32, 0},
		{-33, 32, 31},
		{65, 32, 1},
	}

	for _, tt := range tests {
		if got := Wrap(tt.v, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestBoardWrapEdges(t *testing.T) {
	b := Board{Width: 32, Height: 24}

	tests := []struct {
		name  string
		start Cell
		dir   Direction
		want  Cell
	}{
		{"right edge wraps to column 0", Cell{31, 10}, DirRight, Cell{0, 10}},
		{"left edge wraps to last column", Cell{0, 10}, DirLeft, Cell{31, 10}},
		{"bottom edge wraps to row 0", Cell{10, 23}, DirDown, Cell{10, 0}},
		{"top edge wraps to last row", Cell{10, 0}, DirUp, Cell{10, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Wrap(tt.start.Step(tt.dir))
			if got != tt.want {
				t.Errorf("wrap of %v stepping %v = %v, want %v", tt.start, tt.dir, got, tt.want)
			}
		})
	}
}

func TestStepAdjacency(t *testing.T) {
	c := Cell{5, 5}
	for _, d := range Directions {
		next := c.Step(d)
		dx := next.X - c.X
		dy := next.Y - c.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx+dy != 1 {
			t.Errorf("Step(%v) from %v moved %d cells, want exactly 1", d, c, dx+dy)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
	}
}

func TestBoardCenter(t *testing.T) {
	b := Board{Width: 32, Height: 24}
	want := Cell{16, 12}
	if got := b.Center(); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestRandomCellInBounds(t *testing.T) {
	b := Board{Width: 32, Height: 24}
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 1000; i++ {
		c := b.RandomCell(rng)
		if !b.Contains(c) {
			t.Fatalf("RandomCell produced out-of-bounds cell %v", c)
		}
	}
}

func TestRandomCellDeterministic(t *testing.T) {
	b := Board{Width: 32, Height: 24}
	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		c1 := b.RandomCell(rng1)
		c2 := b.RandomCell(rng2)
		if c1 != c2 {
			t.Fatalf("draw %d mismatch: %v != %v", i, c1, c2)
		}
	}
}
