package ebiten

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"spacemerc/pkg/game/renderer"
)

// drawString draws plain text with its top-left corner at x, y.
func (e *EbitenRenderer) drawString(dst *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, e.face, op)
}

// drawLine draws one wrapped line of styled segments and returns the x
// position after it.
func (e *EbitenRenderer) drawLine(dst *ebiten.Image, line []renderer.Segment, x, y int) int {
	for _, seg := range line {
		e.drawString(dst, seg.Text, x, y, styleColor(seg.Style))
		x += utf8.RuneCountInString(seg.Text) * glyphWidth
	}
	return x
}

// drawMarkup wraps msg into the box starting at x, y and width pixels wide.
// It returns the y position below the last line.
func (e *EbitenRenderer) drawMarkup(dst *ebiten.Image, msg string, x, y, width int) int {
	for _, line := range renderer.WrapSegments(renderer.ParseMarkup(msg), columns(width)) {
		e.drawLine(dst, line, x, y)
		y += lineHeight
	}
	return y
}

// drawHeader fills the header band and centres title in it. A non-empty
// subtitle goes on a second line.
func (e *EbitenRenderer) drawHeader(dst *ebiten.Image, title, subtitle string) {
	fillRect(dst, 0, 0, canvasWidth, headerHeight, colorHeaderBg)
	if subtitle == "" {
		e.drawCentered(dst, title, (headerHeight-lineHeight)/2)
		return
	}
	top := (headerHeight - 2*lineHeight) / 2
	e.drawCentered(dst, title, top)
	e.drawCentered(dst, subtitle, top+lineHeight)
}

// drawCentered draws one line of markup centred across the canvas.
func (e *EbitenRenderer) drawCentered(dst *ebiten.Image, msg string, y int) {
	segs := renderer.ParseMarkup(msg)
	n := 0
	for _, seg := range segs {
		n += utf8.RuneCountInString(seg.Text)
	}
	x := (canvasWidth - n*glyphWidth) / 2
	if x < textMargin {
		x = textMargin
	}
	e.drawLine(dst, segs, x, y)
}
