package renderer

import "github.com/gookit/color"

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleMoney
	StylePlace
	StyleFoe
	StyleKey
	StyleSubtle
	StyleSelected
	StyleDenied
)

var styles = map[TextStyle]color.Style{}

// InitColors initializes the color styles
func InitColors() {
	styles = map[TextStyle]color.Style{
		StyleTitle:    {color.FgWhite, color.OpBold},
		StyleMoney:    {color.FgGreen, color.OpBold},
		StylePlace:    {color.FgCyan},
		StyleFoe:      {color.FgRed},
		StyleKey:      {color.FgMagenta, color.OpBold},
		StyleSubtle:   {color.FgGray},
		StyleSelected: {color.FgBlack, color.BgWhite},
		StyleDenied:   {color.FgRed, color.OpBold},
	}
}

// StyleText applies a style to text and returns the styled string. Plain
// text comes back unchanged when colors are off or the style is unknown.
func StyleText(text string, style TextStyle) string {
	s, ok := styles[style]
	if !ok || !color.Enable {
		return text
	}
	return s.Sprint(text)
}
