package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// newFace returns the fixed 7x13 bitmap face. Every glyph is glyphWidth
// wide, which keeps the line wrapping in runes exact.
func newFace() *text.GoXFace {
	return text.NewGoXFace(basicfont.Face7x13)
}

// columns is how many glyphs fit in width pixels.
func columns(width int) int {
	return width / glyphWidth
}
