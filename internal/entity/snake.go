// Package entity provides the two board occupants: the snake and the food.
package entity

import (
	"math/rand"

	"github.com/AkesSpur/the-snake/internal/grid"
)

// Snake is the player-controlled body on the board. It owns an ordered
// list of occupied cells (head first), the committed movement direction,
// at most one buffered direction awaiting the next tick, and the target
// length it grows toward.
type Snake struct {
	body         []grid.Cell
	dir          grid.Direction
	pending      grid.Direction
	hasPending   bool
	growthTarget int
	board        grid.Board
	rng          *rand.Rand
}

// NewSnake creates a length-1 snake at the board center, moving right.
func NewSnake(board grid.Board, rng *rand.Rand) *Snake {
	return &Snake{
		body:         []grid.Cell{board.Center()},
		dir:          grid.DirRight,
		growthTarget: 1,
		board:        board,
		rng:          rng,
	}
}

// Head returns the first body cell.
func (s *Snake) Head() grid.Cell {
	return s.body[0]
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the committed movement direction.
func (s *Snake) Direction() grid.Direction {
	return s.dir
}

// GrowthTarget returns the length the body is growing toward.
func (s *Snake) GrowthTarget() int {
	return s.growthTarget
}

// BufferDirection records d for the next CommitDirection, overwriting any
// previously buffered direction. No validation happens here; reversal
// filtering is CommitDirection's job.
func (s *Snake) BufferDirection(d grid.Direction) {
	s.pending = d
	s.hasPending = true
}

// CommitDirection applies the buffered direction if one is set. An exact
// 180° reversal is discarded, since it would step the head straight into
// the neck cell. Called once per tick, before Advance.
func (s *Snake) CommitDirection() {
	if !s.hasPending {
		return
	}
	if s.pending != s.dir.Opposite() {
		s.dir = s.pending
	}
	s.hasPending = false
}

// Advance moves the snake one cell in its committed direction, wrapping at
// the board edges. Hitting any body cell behind the neck resets the snake
// to its starting state; the tick then has no growth or food side effects.
// The new head cell is returned either way so the driver can check food
// overlap, along with whether a reset occurred.
func (s *Snake) Advance() (grid.Cell, bool) {
	newHead := s.board.Wrap(s.Head().Step(s.dir))

	// Self-collision ignores the head and the neck: after the move the
	// neck is adjacent to the new head and would always false-positive.
	if len(s.body) > 2 {
		for _, c := range s.body[2:] {
			if c == newHead {
				s.Reset()
				return newHead, true
			}
		}
	}

	s.body = append([]grid.Cell{newHead}, s.body...)
	if len(s.body) > s.growthTarget {
		s.body = s.body[:len(s.body)-1]
	}
	return newHead, false
}

// Grow raises the target length by one. The body catches up gradually,
// one cell per tick, via the length check in Advance.
func (s *Snake) Grow() {
	s.growthTarget++
}

// Reset returns the snake to its initial state after a collision: length 1
// at the board center, buffered direction cleared, and a fresh random
// movement direction.
func (s *Snake) Reset() {
	s.body = []grid.Cell{s.board.Center()}
	s.growthTarget = 1
	s.hasPending = false
	s.dir = grid.Directions[s.rng.Intn(len(grid.Directions))]
}

// Cells returns the occupied body cells, head first.
func (s *Snake) Cells() []grid.Cell {
	return s.body
}

// Color returns the theme key the renderer uses for the snake.
func (s *Snake) Color() string {
	return "snake"
}
