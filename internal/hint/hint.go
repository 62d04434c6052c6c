// Package hint assigns short jump codes to the slots of a page and resolves
// typed input against them.
//
// All codes on a page share the same length L = ceil(log_n m), so no code
// is a strict prefix of another. Codes are spread evenly over the n^L code
// space instead of taking the first m values.
package hint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runger/pickline/internal/paginate"
)

var (
	// ErrAlphabetTooSmall is returned for alphabets with fewer than two symbols.
	ErrAlphabetTooSmall = errors.New("hint alphabet needs at least 2 symbols")
	// ErrDuplicateSymbol is returned when a symbol appears twice.
	ErrDuplicateSymbol = errors.New("hint alphabet symbols must be distinct")
)

// Alphabet is a validated, ordered set of distinct hint symbols.
type Alphabet struct {
	symbols []rune
}

// NewAlphabet validates s and returns its symbols as an Alphabet.
func NewAlphabet(s string) (Alphabet, error) {
	symbols := []rune(s)
	if len(symbols) < 2 {
		return Alphabet{}, ErrAlphabetTooSmall
	}
	seen := make(map[rune]struct{}, len(symbols))
	for _, r := range symbols {
		if _, ok := seen[r]; ok {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		seen[r] = struct{}{}
	}
	return Alphabet{symbols: symbols}, nil
}

// Size returns the number of symbols.
func (a Alphabet) Size() int { return len(a.symbols) }

// String returns the symbols as a string.
func (a Alphabet) String() string { return string(a.symbols) }

// Length returns the code length needed for m slots over n symbols:
// ceil(log_n m), never less than 1.
func Length(m, n int) int {
	if n < 2 {
		return 1
	}
	length, capacity := 1, n
	for capacity < m {
		capacity *= n
		length++
	}
	return length
}

func pow(n, exp int) int {
	out := 1
	for range exp {
		out *= n
	}
	return out
}

// encode renders value as a fixed-width base-n string, most significant
// digit first.
func (a Alphabet) encode(value, width int) string {
	n := len(a.symbols)
	digits := make([]rune, width)
	for i := width - 1; i >= 0; i-- {
		digits[i] = a.symbols[value%n]
		value /= n
	}
	return string(digits)
}

// Map holds the code assigned to each slot of one page.
type Map struct {
	codes []string
}

// Allocate assigns codes to m slots. Slot i receives the code whose value is
// (i * floor(n^L / m)) mod n^L.
func Allocate(m int, a Alphabet) Map {
	if m <= 0 || a.Size() < 2 {
		return Map{}
	}
	length := Length(m, a.Size())
	total := pow(a.Size(), length)
	spacing := total / m

	codes := make([]string, m)
	for i := range codes {
		codes[i] = a.encode((i*spacing)%total, length)
	}
	return Map{codes: codes}
}

// Len returns the number of slots with a code.
func (m Map) Len() int { return len(m.codes) }

// Code returns the code for slot s.
func (m Map) Code(s paginate.Slot) (string, bool) {
	if s < 0 || int(s) >= len(m.codes) {
		return "", false
	}
	return m.codes[s], true
}

// Outcome classifies the result of matching typed input against a Map.
type Outcome int

const (
	// Reject means no code starts with the input.
	Reject Outcome = iota
	// Pending means the input prefixes at least one code but matches none.
	Pending
	// Hit means the input equals exactly one code.
	Hit
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Hit:
		return "hit"
	default:
		return "reject"
	}
}

// Result is the outcome of Match; Slot is set only for a Hit.
type Result struct {
	Outcome Outcome
	Slot    paginate.Slot
}

// Match compares buf against every code by prefix.
func (m Map) Match(buf string) Result {
	if buf == "" {
		return Result{Outcome: Reject}
	}
	res := Result{Outcome: Reject}
	for i, code := range m.codes {
		if code == buf {
			return Result{Outcome: Hit, Slot: paginate.Slot(i)}
		}
		if strings.HasPrefix(code, buf) {
			res.Outcome = Pending
		}
	}
	return res
}
