// Package term opens the controlling terminal and inspects it. The picker
// draws on the terminal device, not on stdout, so stdout stays free for the
// selected lines.
package term

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DefaultTTY is the controlling terminal on Unix systems.
const DefaultTTY = "/dev/tty"

// MinWidth is the narrowest terminal the picker will draw on.
const MinWidth = 20

var (
	// ErrNoTTY is returned when the terminal device cannot be opened.
	ErrNoTTY = errors.New("no TTY available")
	// ErrDumbTerminal is returned for TERM=dumb.
	ErrDumbTerminal = errors.New("TERM=dumb is not supported")
)

// CheckTERM verifies that the TERM environment variable is not "dumb".
func CheckTERM() error {
	if os.Getenv("TERM") == "dumb" {
		return ErrDumbTerminal
	}
	return nil
}

// OpenTTY opens path (DefaultTTY when empty) for reading and writing and
// checks that it is wide enough to draw on. The caller closes the file.
func OpenTTY(path string) (*os.File, error) {
	if path == "" {
		path = DefaultTTY
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTTY, err)
	}

	if w, _, err := Size(f); err == nil && w > 0 && w < MinWidth {
		f.Close()
		return nil, fmt.Errorf("terminal too narrow (%d columns, need at least %d)", w, MinWidth)
	}
	return f, nil
}

// ColorProfile detects the color support of the terminal behind f,
// honoring NO_COLOR and CLICOLOR_FORCE.
func ColorProfile(f *os.File) termenv.Profile {
	return termenv.NewOutput(f).EnvColorProfile()
}

// Renderer returns a lipgloss renderer that draws for the terminal behind f.
func Renderer(f *os.File) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(f)
	r.SetColorProfile(ColorProfile(f))
	return r
}
