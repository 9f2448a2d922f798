// Package terminal wraps the few terminal queries and control sequences the
// text frontend needs.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Control sequences.
const (
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"
	ClearLine   = "\x1b[K"
	ClearToEnd  = "\x1b[J"
	Bell        = "\a"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// LeftPadding returns how many columns to indent content of the given width
// to centre it in a terminal width columns wide.
func LeftPadding(width, content int) int {
	if content >= width {
		return 0
	}
	return (width - content) / 2
}
