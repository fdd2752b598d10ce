package ui

import (
	"github.com/AkesSpur/the-snake/internal/entity"
	"github.com/AkesSpur/the-snake/internal/gamedata"
	"github.com/AkesSpur/the-snake/internal/grid"
)

// Renderer draws the board and its occupants to the screen. It implements
// game.RenderSink; glyphs and colors come from the theme, keyed by each
// drawable's color key.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
	board  grid.Board
}

// NewRenderer creates a renderer for the given screen, theme, and board.
func NewRenderer(screen *Screen, theme *gamedata.Theme, board grid.Board) *Renderer {
	return &Renderer{screen: screen, theme: theme, board: board}
}

// Render repaints the board background and draws every occupied cell of
// every drawable, then flushes the frame.
func (r *Renderer) Render(objects []entity.Drawable) {
	background := r.theme.BackgroundStyle()
	for y := 0; y < r.board.Height; y++ {
		for x := 0; x < r.board.Width; x++ {
			r.screen.SetContent(x, y, ' ', background)
		}
	}

	for _, obj := range objects {
		style := r.theme.Style(obj.Color())
		glyph := r.theme.Glyph(obj.Color())
		for _, c := range obj.Cells() {
			r.screen.SetContent(c.X, c.Y, glyph, style)
		}
	}

	r.screen.Show()
}
