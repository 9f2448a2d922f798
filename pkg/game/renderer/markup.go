package renderer

import (
	"strings"
	"unicode/utf8"
)

// Segment is a run of text drawn in one style.
type Segment struct {
	Text  string
	Style TextStyle
}

// ParseMarkup splits msg into styled segments. Unknown tags stay in the
// text as they are.
func ParseMarkup(msg string) []Segment {
	var segs []Segment
	last := 0
	for _, m := range regexpStringFunctions.FindAllStringSubmatchIndex(msg, -1) {
		style, ok := markupStyle(msg[m[2]:m[3]])
		if !ok {
			continue
		}
		if m[0] > last {
			segs = append(segs, Segment{Text: msg[last:m[0]], Style: StyleNormal})
		}
		segs = append(segs, Segment{Text: msg[m[4]:m[5]], Style: style})
		last = m[1]
	}
	if last < len(msg) {
		segs = append(segs, Segment{Text: msg[last:], Style: StyleNormal})
	}
	return segs
}

// WrapSegments breaks styled text into lines of at most width runes, on
// spaces and newlines. Styles carry across the breaks.
func WrapSegments(segs []Segment, width int) [][]Segment {
	var (
		lines  [][]Segment
		line   []Segment
		length int
	)
	flush := func() {
		lines = append(lines, line)
		line = nil
		length = 0
	}
	appendText := func(text string, style TextStyle) {
		if n := len(line); n > 0 && line[n-1].Style == style {
			line[n-1].Text += text
		} else {
			line = append(line, Segment{Text: text, Style: style})
		}
		length += utf8.RuneCountInString(text)
	}

	for _, seg := range segs {
		for i, para := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				flush()
			}
			for j, word := range strings.Split(para, " ") {
				wordLen := utf8.RuneCountInString(word)
				if j > 0 {
					if length > 0 && length+1+wordLen > width {
						flush()
					} else {
						appendText(" ", seg.Style)
					}
				} else if length > 0 && length+wordLen > width && wordLen > 0 {
					flush()
				}
				if word != "" {
					appendText(word, seg.Style)
				}
			}
		}
	}
	if line != nil || len(lines) == 0 {
		flush()
	}
	return lines
}
