// Package fastcolor writes fixed-width, optionally colored strings to a
// buffered writer. Color codes are dropped when stdout is not a terminal.
package fastcolor

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Color is an ANSI escape prefix.
type Color string

const (
	Reset    Color = "\x1b[0m"
	Bold     Color = "\x1b[1m"
	FgRed    Color = "\x1b[31m"
	FgGreen  Color = "\x1b[32m"
	FgYellow Color = "\x1b[33m"
	FgBlue   Color = "\x1b[34m"
)

var enabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetEnabled overrides terminal detection. Used to force plain output.
func SetEnabled(on bool) {
	enabled = on
}

// RGB returns a truecolor foreground color.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b))
}

// WriteStringFixed writes s padded or truncated to width runes, wrapped in
// the color code when color output is enabled.
func (c Color) WriteStringFixed(buf *bufio.Writer, s string, width int, rightAlign bool) {
	if width < 1 {
		return
	}

	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	pad := width - len(runes)

	if rightAlign {
		for i := 0; i < pad; i++ {
			buf.WriteByte(' ')
		}
	}
	if enabled && c != Reset {
		buf.WriteString(string(c))
	}
	buf.WriteString(string(runes))
	if enabled && c != Reset {
		buf.WriteString(string(Reset))
	}
	if !rightAlign {
		for i := 0; i < pad; i++ {
			buf.WriteByte(' ')
		}
	}
}
