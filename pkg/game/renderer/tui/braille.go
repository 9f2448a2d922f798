package tui

import (
	"strings"

	"spacemerc/pkg/engine/raster"
)

// brailleDots maps a pixel inside a 2x4 cell to its dot bit.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille renders f as rows of braille characters, one per 2x4 block of
// pixels. White pixels are raised dots.
func Braille(f *raster.Frame) []string {
	b := f.Rect
	var rows []string
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 4 {
		sb.Reset()
		for x := b.Min.X; x < b.Max.X; x += 2 {
			r := rune(0x2800)
			for dy := 0; dy < 4 && y+dy < b.Max.Y; dy++ {
				for dx := 0; dx < 2 && x+dx < b.Max.X; dx++ {
					if f.Pixel(x+dx, y+dy) == raster.White {
						r |= brailleDots[dy][dx]
					}
				}
			}
			sb.WriteRune(r)
		}
		rows = append(rows, sb.String())
	}
	return rows
}
