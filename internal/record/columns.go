package record

import "strings"

// ColumnRange selects a subset of a record's fields. A nil *ColumnRange
// selects every field.
type ColumnRange struct {
	// Positions are the explicitly named columns, in the order given.
	Positions []int
	// Open adds every column past the largest named position.
	Open bool
}

// Closed returns a range over exactly the given positions.
func Closed(positions ...int) *ColumnRange {
	return &ColumnRange{Positions: positions}
}

// Open returns a range over the given positions plus the trailing columns.
func Open(positions ...int) *ColumnRange {
	return &ColumnRange{Positions: positions, Open: true}
}

// Project maps fields to the subset selected by rng. Out-of-range positions
// are skipped. An open range with no positions selects nothing.
func Project(fields []string, rng *ColumnRange) []string {
	if rng == nil {
		out := make([]string, len(fields))
		copy(out, fields)
		return out
	}

	out := make([]string, 0, len(rng.Positions))
	maxPos := -1
	for _, p := range rng.Positions {
		if p > maxPos {
			maxPos = p
		}
		if p >= 0 && p < len(fields) {
			out = append(out, fields[p])
		}
	}

	if rng.Open && len(rng.Positions) > 0 {
		for i := maxPos + 1; i < len(fields); i++ {
			out = append(out, fields[i])
		}
	}
	return out
}

// Join reassembles projected fields for output.
func Join(fields []string, delim string) string {
	return strings.Join(fields, delim)
}
