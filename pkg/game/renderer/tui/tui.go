// Package tui is the terminal frontend. The mission view is drawn with
// braille characters, two by four pixels per cell.
package tui

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"spacemerc/pkg/engine/input"
	"spacemerc/pkg/engine/terminal"
	"spacemerc/pkg/game/app"
	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/renderer"
)

// frameInterval is how often timers are advanced and the screen redrawn
// when no key arrives.
const frameInterval = 20 * time.Millisecond

// TUIRenderer draws an app host to a terminal and feeds it key presses.
type TUIRenderer struct {
	app *app.App
	log *zap.Logger

	in  io.Reader
	out *bufio.Writer

	debounce input.Debouncer
	scene    *color.RGBStyle
	width    int
}

// New creates a renderer on stdin and stdout.
func New(a *app.App, display config.Display, log *zap.Logger) *TUIRenderer {
	return &TUIRenderer{
		app:      a,
		log:      log,
		in:       os.Stdin,
		out:      bufio.NewWriter(os.Stdout),
		debounce: input.Debouncer{Interval: display.MoveRepeat / 2},
		scene:    color.NewRGBStyle(color.HEX(display.Foreground), color.HEX(display.Background, true)),
		width:    terminal.DefaultWidth,
	}
}

// Vibrate rings the terminal bell.
func (t *TUIRenderer) Vibrate() {
	t.out.WriteString(terminal.Bell)
}

// Run puts the terminal in raw mode and runs the host until the player
// quits or ctx is done.
func (t *TUIRenderer) Run(ctx context.Context) error {
	restore, err := input.RawMode(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan input.RawInput, 16)
	go func() {
		if err := input.ReadKeys(ctx, t.in, keys); err != nil && ctx.Err() == nil {
			t.log.Warn("key reader stopped", zap.Error(err))
		}
	}()

	t.out.WriteString(terminal.HideCursor + terminal.ClearScreen)
	defer func() {
		t.out.WriteString(terminal.ClearScreen + terminal.CursorHome + terminal.ShowCursor)
		t.out.Flush()
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case raw := <-keys:
			if ev, ok := t.debounce.Accept(raw); ok {
				t.app.HandleIntent(input.MapToIntent(ev))
			}
		case <-ticker.C:
			t.app.Update()
		}
		if t.app.Quit() {
			return nil
		}
		t.width, _ = terminal.GetSize()
		if err := t.draw(); err != nil {
			return err
		}
	}
}

func (t *TUIRenderer) draw() error {
	var lines []string
	if title := t.app.Title(); title != "" {
		lines = append(lines, renderer.Center(styleLine(renderer.ParseMarkup(title), renderer.StyleTitle), t.width), "")
	}

	switch t.app.Screen() {
	case app.ScreenMission:
		lines = append(lines, t.missionLines()...)
	case app.ScreenMainMenu, app.ScreenUpgrades:
		lines = append(lines, t.menuLines()...)
	case app.ScreenNarration:
		lines = append(lines, t.pageLines()...)
	}

	t.out.WriteString(terminal.CursorHome)
	for _, line := range lines {
		t.out.WriteString(line + terminal.ClearLine + "\r\n")
	}
	t.out.WriteString(terminal.ClearToEnd)
	return t.out.Flush()
}

func (t *TUIRenderer) missionLines() []string {
	rows := Braille(t.app.Frame())
	pad := strings.Repeat(" ", terminal.LeftPadding(t.width, len([]rune(rows[0]))))
	for i, row := range rows {
		rows[i] = pad + t.scene.Sprint(row)
	}
	if msgs := t.app.Messages(); len(msgs) > 0 {
		rows = append(rows, "")
		for _, msg := range msgs {
			rows = append(rows, pad+styleLine(renderer.ParseMarkup(msg), renderer.StyleSubtle))
		}
	}
	return rows
}

// textWidth is the column count used for menus and pages.
func (t *TUIRenderer) textWidth() int {
	return min(t.width-4, 60)
}

func (t *TUIRenderer) menuLines() []string {
	m := t.app.Menu()
	if m == nil {
		return nil
	}
	var lines []string
	for i, item := range m.Items() {
		label := renderer.StripMarkup(item.GetLabel())
		switch {
		case i == m.Selected():
			label = renderer.StyleText(" "+label+" ", renderer.StyleSelected)
		case !item.IsSelectable():
			label = " " + renderer.StyleText(label, renderer.StyleSubtle)
		default:
			label = " " + label
		}
		lines = append(lines, "  "+label)
	}
	if help := m.HelpText(); help != "" {
		lines = append(lines, "")
		lines = append(lines, t.markupLines(help, "  ")...)
	}
	return lines
}

func (t *TUIRenderer) pageLines() []string {
	lines := t.markupLines(t.app.Page().Text, "  ")
	return append(lines, "", "  "+renderer.StyleText(gotext.Get("Press select"), renderer.StyleSubtle))
}

func (t *TUIRenderer) markupLines(msg, indent string) []string {
	var lines []string
	for _, line := range renderer.WrapSegments(renderer.ParseMarkup(msg), t.textWidth()) {
		lines = append(lines, indent+styleLine(line, renderer.StyleNormal))
	}
	return lines
}

// styleLine renders segments to ANSI text. Plain segments take base.
func styleLine(segs []renderer.Segment, base renderer.TextStyle) string {
	var sb strings.Builder
	for _, seg := range segs {
		style := seg.Style
		if style == renderer.StyleNormal {
			style = base
		}
		sb.WriteString(renderer.StyleText(seg.Text, style))
	}
	return sb.String()
}
