package entity

import "github.com/AkesSpur/the-snake/internal/grid"

// Drawable is anything the renderer can put on the board: a set of
// occupied cells plus a theme color key. Snake and Food both implement it;
// they share nothing else.
type Drawable interface {
	Cells() []grid.Cell
	Color() string
}
