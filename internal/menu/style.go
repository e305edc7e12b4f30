package menu

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func (m *Menu) header(text string) string {
	if !m.colorize {
		return text
	}
	return ansiBlue + text + ansiReset
}

func (m *Menu) warn(text string) string {
	if !m.colorize {
		return text
	}
	return ansiYellow + text + ansiReset
}

// ShouldColorize reports whether writer is a terminal that can render ANSI colour.
func ShouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
