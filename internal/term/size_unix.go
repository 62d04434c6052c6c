//go:build !windows

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Size returns the width and height of the terminal behind f.
func Size(f *os.File) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot get terminal size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
