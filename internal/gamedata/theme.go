package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ElementDef describes how one drawable kind is presented: its color as a
// hex string and the rune used for each occupied cell.
type ElementDef struct {
	Color string `json:"color"`
	Glyph string `json:"glyph"`
}

// Theme holds the visual configuration loaded from theme.json: the board
// background color and a style per drawable color key.
type Theme struct {
	Background string                `json:"background"`
	Elements   map[string]ElementDef `json:"elements"`
}

// LoadTheme loads and validates the embedded theme.json.
func LoadTheme() (*Theme, error) {
	theme, err := Load[Theme]("theme.json")
	if err != nil {
		return nil, err
	}
	if _, err := ParseHexColor(theme.Background); err != nil {
		return nil, fmt.Errorf("theme background: %w", err)
	}
	for key, def := range theme.Elements {
		if _, err := ParseHexColor(def.Color); err != nil {
			return nil, fmt.Errorf("theme element %q: %w", key, err)
		}
		if len([]rune(def.Glyph)) != 1 {
			return nil, fmt.Errorf("theme element %q: glyph must be a single rune, got %q", key, def.Glyph)
		}
	}
	return &theme, nil
}

// MustLoadTheme loads the theme, panicking on error. The theme is embedded
// at build time, so a failure here is a packaging bug.
func MustLoadTheme() *Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// BackgroundStyle returns the style used to fill empty board cells.
func (t *Theme) BackgroundStyle() tcell.Style {
	bg := MustParseHexColor(t.Background)
	return tcell.StyleDefault.Background(bg).Foreground(bg)
}

// Style returns the draw style for the given element key. Unknown keys
// fall back to white on the theme background.
func (t *Theme) Style(key string) tcell.Style {
	bg := MustParseHexColor(t.Background)
	def, ok := t.Elements[key]
	if !ok {
		return tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
	}
	return tcell.StyleDefault.Background(bg).Foreground(MustParseHexColor(def.Color))
}

// Glyph returns the rune drawn for the given element key, or a solid
// block for unknown keys.
func (t *Theme) Glyph(key string) rune {
	def, ok := t.Elements[key]
	if !ok {
		return '█'
	}
	return []rune(def.Glyph)[0]
}
