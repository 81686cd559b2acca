package tui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsInteractive reports whether prompts can be shown: stdin must be a
// terminal and interactivity must not be disabled for tests.
func IsInteractive() bool {
	if os.Getenv("RELGATE_NO_INTERACTIVE") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ColorEnabled reports whether the terminal supports colored output
func ColorEnabled() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
