package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// RawMode puts the terminal on fd into raw mode and returns a func that
// restores it.
func RawMode(fd int) (func(), error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readEscape decodes the rest of an escape sequence after ESC. A lone ESC
// (nothing buffered behind it) is the escape key itself.
func readEscape(r *bufio.Reader) string {
	if r.Buffered() == 0 {
		return "escape"
	}
	b2, err := r.ReadByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}
	b3, err := r.ReadByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}

	// F9 and F12 arrive as ESC [ 2 0 ~ and ESC [ 2 4 ~
	seq := []byte{b3}
	for len(seq) < 4 {
		b, err := r.ReadByte()
		if err != nil || b == '~' {
			break
		}
		seq = append(seq, b)
	}
	switch string(seq) {
	case "20":
		return "f9"
	case "24":
		return "f12"
	}
	// Unknown escape sequence - discard it
	return ""
}

// decodeByte names a single raw-mode byte.
func decodeByte(b byte) string {
	switch {
	case b == 3:
		return "ctrl_c"
	case b == '\r' || b == '\n':
		return "enter"
	case b == ' ':
		return "space"
	case b == 127 || b == 8:
		return "backspace"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b > 32 && b < 127:
		return string(rune(b))
	}
	return ""
}

// ReadKeys decodes key presses from r until ctx is done or r fails, sending
// each one to out. It only produces raw codes; mapping them to actions is
// left to the consumer.
func ReadKeys(ctx context.Context, r io.Reader, out chan<- RawInput) error {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading keys: %w", err)
		}

		code := decodeByte(b)
		if b == 0x1b {
			code = readEscape(br)
		}
		if code == "" {
			continue
		}

		select {
		case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
