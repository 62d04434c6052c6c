// Package options materializes picker options from the config file and
// command-line flags. Every check happens here, before any engine exists.
package options

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/runger/pickline/internal/config"
	"github.com/runger/pickline/internal/hint"
	"github.com/runger/pickline/internal/record"
)

// DefaultSelectionRegex matches any non-blank selection column.
const DefaultSelectionRegex = `\S`

var (
	// ErrRequiresDelimiter is returned when a column option is set without a delimiter.
	ErrRequiresDelimiter = errors.New("requires --delimiter")
	// ErrInvalidPageSize is returned for page sizes that are neither "auto" nor a positive integer.
	ErrInvalidPageSize = errors.New("page size must be a positive integer or auto")
	// ErrInvalidColumns is returned for malformed column ranges.
	ErrInvalidColumns = errors.New("invalid column range")
)

// PageSize is either a fixed number of rows or "auto", resolved against the
// terminal height once it is known.
type PageSize struct {
	Auto bool
	N    int
}

func (p PageSize) String() string {
	if p.Auto {
		return "auto"
	}
	return strconv.Itoa(p.N)
}

// ParsePageSize accepts "auto" (any case) or a positive integer.
func ParsePageSize(s string) (PageSize, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return PageSize{Auto: true}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return PageSize{}, fmt.Errorf("%w (got %q)", ErrInvalidPageSize, s)
	}
	return PageSize{N: n}, nil
}

// autoChrome is the number of rows the picker draws below the page: the
// status bar and the full help, whose tallest column has four bindings.
const autoChrome = 5

// ResolvePageSize turns p into a concrete row count. In auto mode the page
// holds every record when they fit above the chrome, and the terminal height
// minus the chrome otherwise.
func ResolvePageSize(p PageSize, records, termHeight int) int {
	if !p.Auto {
		return max(p.N, 1)
	}
	if termHeight <= 0 {
		return max(min(records, 20), 1)
	}
	room := termHeight - autoChrome
	if records <= room {
		return max(records, 1)
	}
	return max(room, 1)
}

// ParseColumnRange parses a comma-separated column list. Items are a single
// column "N", a half-open range "A..B", an inclusive range "A..=B", a range
// from zero "..B", or an open tail "A.." which ends the list. Empty items
// are skipped.
func ParseColumnRange(s string) (*record.ColumnRange, error) {
	var cols []int
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		before, after, isRange := strings.Cut(item, "..")
		if !isRange {
			n, err := parseColumn(item)
			if err != nil {
				return nil, err
			}
			cols = append(cols, n)
			continue
		}

		start := 0
		if before != "" {
			n, err := parseColumn(before)
			if err != nil {
				return nil, err
			}
			start = n
		}

		if after == "" {
			cols = append(cols, start)
			return record.Open(cols...), nil
		}

		inclusive := strings.HasPrefix(after, "=")
		end, err := parseColumn(strings.TrimPrefix(after, "="))
		if err != nil {
			return nil, err
		}
		if inclusive {
			end++
		}
		for c := start; c < end; c++ {
			cols = append(cols, c)
		}
	}
	return record.Closed(cols...), nil
}

func parseColumn(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a column number", ErrInvalidColumns, s)
	}
	return n, nil
}

// Seed picks the initial cursor: the first record whose Column matches
// Pattern.
type Seed struct {
	Column  int
	Pattern *regexp.Regexp
}

// Options is the fully validated picker configuration.
type Options struct {
	PageSize       PageSize
	Alphabet       hint.Alphabet
	Delimiter      string
	DisplayColumns *record.ColumnRange
	OutputColumns  *record.ColumnRange
	Seed           *Seed
}

// Flags holds the raw command-line values. Empty strings mean "not given".
type Flags struct {
	PageSize       string
	Alphabet       string
	Delimiter      string
	Columns        string
	OutputColumns  string
	SelectionCol   int
	HasSelection   bool // --selection-col was given
	SelectionRegex string
}

// Build merges f over cfg and validates the result.
func Build(f Flags, cfg *config.Config) (*Options, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	pageSize, err := ParsePageSize(firstNonEmpty(f.PageSize, cfg.Picker.PageSize))
	if err != nil {
		return nil, fmt.Errorf("--page-size: %w", err)
	}

	alphabet, err := hint.NewAlphabet(firstNonEmpty(f.Alphabet, cfg.Picker.Alphabet))
	if err != nil {
		return nil, fmt.Errorf("--alphabet: %w", err)
	}

	opts := &Options{
		PageSize:  pageSize,
		Alphabet:  alphabet,
		Delimiter: firstNonEmpty(f.Delimiter, cfg.Picker.Delimiter),
	}

	if f.Columns != "" {
		if opts.Delimiter == "" {
			return nil, fmt.Errorf("--cols: %w", ErrRequiresDelimiter)
		}
		if opts.DisplayColumns, err = ParseColumnRange(f.Columns); err != nil {
			return nil, fmt.Errorf("--cols: %w", err)
		}
	}

	if f.OutputColumns != "" {
		if opts.Delimiter == "" {
			return nil, fmt.Errorf("--output-cols: %w", ErrRequiresDelimiter)
		}
		if opts.OutputColumns, err = ParseColumnRange(f.OutputColumns); err != nil {
			return nil, fmt.Errorf("--output-cols: %w", err)
		}
	}

	if f.SelectionRegex != "" && !f.HasSelection {
		return nil, errors.New("--selection-regex: requires --selection-col")
	}

	if f.HasSelection {
		if opts.Delimiter == "" {
			return nil, fmt.Errorf("--selection-col: %w", ErrRequiresDelimiter)
		}
		if f.SelectionCol < 0 {
			return nil, fmt.Errorf("--selection-col: %w: %d", ErrInvalidColumns, f.SelectionCol)
		}
		re, err := regexp.Compile(firstNonEmpty(f.SelectionRegex, DefaultSelectionRegex))
		if err != nil {
			return nil, fmt.Errorf("--selection-regex: %w", err)
		}
		opts.Seed = &Seed{Column: f.SelectionCol, Pattern: re}
	}

	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
