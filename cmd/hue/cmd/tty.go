package cmd

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/corey/hue/internal/app"
)

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveColor determines whether to highlight based on the colour mode and
// TTY status. mode is "auto", "always", or "never".
func resolveColor(mode string) bool {
	switch mode {
	case app.ColorAlways:
		return true
	case app.ColorNever:
		return false
	default: // "auto"
		return isStdoutTTY()
	}
}
