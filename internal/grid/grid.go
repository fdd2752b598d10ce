// Package grid provides the discrete cell space the game plays on:
// coordinates, directions, and toroidal wrap-around arithmetic.
package grid

import (
	"fmt"
	"math/rand"
)

// Cell is a single grid position. X increases to the right, Y downward
// (screen coordinates).
type Cell struct {
	X, Y int
}

// String returns a human-readable coordinate pair.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the cell one step away in the given direction, without
// wrapping. Callers that need toroidal behavior wrap the result through
// Board.Wrap.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Wrap maps v into [0, n) with modulo arithmetic, always returning a
// non-negative value even for negative v.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Board describes the playing field dimensions in cells.
type Board struct {
	Width  int
	Height int
}

// Wrap maps a cell onto the board's torus, each axis independently.
func (b Board) Wrap(c Cell) Cell {
	return Cell{X: Wrap(c.X, b.Width), Y: Wrap(c.Y, b.Height)}
}

// Center returns the cell at the middle of the board.
func (b Board) Center() Cell {
	return Cell{X: b.Width / 2, Y: b.Height / 2}
}

// Contains reports whether the cell lies within the board bounds.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// RandomCell draws a uniformly random cell, each axis independently.
func (b Board) RandomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(b.Width), Y: rng.Intn(b.Height)}
}
