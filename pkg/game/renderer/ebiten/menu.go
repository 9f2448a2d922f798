package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"spacemerc/pkg/game/renderer"
)

// drawMenu lists the open menu's items with the selection highlighted and
// the help text for it below.
func (e *EbitenRenderer) drawMenu(dst *ebiten.Image) {
	m := e.app.Menu()
	if m == nil {
		return
	}
	width := canvasWidth - 2*textMargin
	y := headerHeight + textMargin
	for i, item := range m.Items() {
		segs := renderer.ParseMarkup(item.GetLabel())
		switch {
		case i == m.Selected():
			fillRect(dst, textMargin-2, y-1, width+4, lineHeight, colorHighlight)
			for j := range segs {
				segs[j].Style = renderer.StyleSelected
			}
		case !item.IsSelectable():
			for j := range segs {
				segs[j].Style = renderer.StyleSubtle
			}
		}
		e.drawLine(dst, segs, textMargin, y)
		y += lineHeight + 2
	}

	if help := m.HelpText(); help != "" {
		lines := renderer.WrapSegments(renderer.ParseMarkup(help), columns(width))
		hy := canvasHeight - textMargin - len(lines)*lineHeight
		fillRect(dst, 0, hy-textMargin, canvasWidth, canvasHeight-hy+textMargin, colorHeaderBg)
		for _, line := range lines {
			e.drawLine(dst, line, textMargin, hy)
			hy += lineHeight
		}
	}
}
