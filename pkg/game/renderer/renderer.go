// Package renderer turns a session into pixels and styled text. The
// first-person scene is drawn onto a raster.Surface; the frontends in the
// sub-packages put it on screen.
package renderer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
)

var regexpStringFunctions = regexp.MustCompile(`([A-Z]+){([^{}]*)}`)

func markupStyle(function string) (TextStyle, bool) {
	switch function {
	case "MONEY":
		return StyleMoney, true
	case "PLACE":
		return StylePlace, true
	case "FOE":
		return StyleFoe, true
	case "KEY":
		return StyleKey, true
	}
	return StyleNormal, false
}

// FormatString formats a string and resolves its markup: MONEY{}, PLACE{},
// FOE{} and KEY{} wrap their operand in the matching style. Unknown tags are
// left as they are.
func FormatString(msg string, a ...any) string {
	ret := msg
	if len(a) > 0 {
		ret = fmt.Sprintf(msg, a...)
	}
	return regexpStringFunctions.ReplaceAllStringFunc(ret, func(match string) string {
		sub := regexpStringFunctions.FindStringSubmatch(match)
		style, ok := markupStyle(sub[1])
		if !ok {
			return match
		}
		return StyleText(sub[2], style)
	})
}

// StripMarkup formats a string and removes both markup tags and any ANSI
// codes, for frontends that draw their own text.
func StripMarkup(msg string, a ...any) string {
	ret := msg
	if len(a) > 0 {
		ret = fmt.Sprintf(msg, a...)
	}
	ret = regexpStringFunctions.ReplaceAllStringFunc(ret, func(match string) string {
		sub := regexpStringFunctions.FindStringSubmatch(match)
		if _, ok := markupStyle(sub[1]); !ok {
			return match
		}
		return sub[2]
	})
	return color.ClearCode(ret)
}

// VisibleLen is the printed width of s, ignoring ANSI codes.
func VisibleLen(s string) int {
	return utf8.RuneCountInString(color.ClearCode(s))
}

// Center pads s on the left so it sits in the middle of width columns.
func Center(s string, width int) string {
	pad := (width - VisibleLen(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// Wrap breaks text into lines of at most width visible runes, on spaces.
// Existing newlines are kept.
func Wrap(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if VisibleLen(line)+1+VisibleLen(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}
