// Package input reads picker records from a line-oriented source.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ErrNoInput is returned when the source holds no lines.
var ErrNoInput = errors.New("no input lines")

// Read returns every line from r with its trailing newline (and any \r)
// removed.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrNoInput
	}
	return lines, nil
}
