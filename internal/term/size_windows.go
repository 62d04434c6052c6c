//go:build windows

package term

import (
	"errors"
	"os"
)

// Size is not available on Windows; Bubble Tea reports the size once the
// program starts.
func Size(*os.File) (width, height int, err error) {
	return 0, 0, errors.New("terminal size not available")
}
