// Package ebiten is the graphical frontend. It draws the host's screens into
// a fixed-size canvas and scales that to the window.
package ebiten

import (
	"image/color"

	"spacemerc/pkg/game/renderer"
)

const (
	// The canvas is the watch screen at twice its resolution so that the
	// 7x13 font fits a readable amount of text.
	canvasScale  = 2
	canvasWidth  = 144 * canvasScale
	canvasHeight = 168 * canvasScale
	headerHeight = 16 * canvasScale

	textMargin  = 6
	lineHeight  = 14
	glyphWidth  = 7
	glyphAscent = 11

	// Gamepad stick deadzone
	deadZone = 0.5

	keyRepeatInitialDelay = 500 // milliseconds
)

// Palette for markup styles. The scene itself uses the configured colours.
var (
	colorText      = color.RGBA{200, 210, 245, 255}
	colorSubtle    = color.RGBA{120, 130, 180, 255}
	colorHeaderBg  = color.RGBA{30, 30, 50, 255}
	colorHighlight = color.RGBA{200, 210, 245, 255}

	styleColors = map[renderer.TextStyle]color.RGBA{
		renderer.StyleNormal:   colorText,
		renderer.StyleTitle:    {255, 255, 255, 255},
		renderer.StyleMoney:    {100, 255, 150, 255},
		renderer.StylePlace:    {100, 200, 255, 255},
		renderer.StyleFoe:      {255, 100, 100, 255},
		renderer.StyleKey:      {180, 150, 250, 255},
		renderer.StyleSubtle:   colorSubtle,
		renderer.StyleSelected: {26, 26, 46, 255},
		renderer.StyleDenied:   {255, 100, 100, 255},
	}
)

func styleColor(style renderer.TextStyle) color.RGBA {
	if c, ok := styleColors[style]; ok {
		return c
	}
	return colorText
}
