package entity

import (
	"math/rand"

	"github.com/AkesSpur/the-snake/internal/grid"
)

// Food is a single edible cell. It spawns at a random position and jumps
// to a new one each time the snake's head lands on it. Placement is a
// plain uniform draw; it may land under the snake's body.
type Food struct {
	pos   grid.Cell
	board grid.Board
	rng   *rand.Rand
}

// NewFood creates food at a uniformly random cell.
func NewFood(board grid.Board, rng *rand.Rand) *Food {
	f := &Food{board: board, rng: rng}
	f.Relocate()
	return f
}

// Position returns the occupied cell.
func (f *Food) Position() grid.Cell {
	return f.pos
}

// Relocate moves the food to a uniformly random cell.
func (f *Food) Relocate() {
	f.pos = f.board.RandomCell(f.rng)
}

// Place pins the food to a specific cell, for scripted layouts.
func (f *Food) Place(c grid.Cell) {
	f.pos = c
}

// Cells returns the single occupied cell.
func (f *Food) Cells() []grid.Cell {
	return []grid.Cell{f.pos}
}

// Color returns the theme key the renderer uses for food.
func (f *Food) Color() string {
	return "food"
}
