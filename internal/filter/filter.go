// Package filter narrows the record store to the records containing a
// literal pattern.
package filter

import (
	"strings"

	"github.com/runger/pickline/internal/record"
)

// Apply returns the ground indices, in ascending order, of every record
// whose projected display fields contain text. Matching is case-sensitive.
// An empty text matches all records.
func Apply(store *record.Store, display *record.ColumnRange, text string) []record.GroundIndex {
	out := make([]record.GroundIndex, 0, store.Len())
	for i := 0; i < store.Len(); i++ {
		idx := record.GroundIndex(i)
		if text == "" || matches(store.Display(idx, display), text) {
			out = append(out, idx)
		}
	}
	return out
}

func matches(fields []string, text string) bool {
	for _, f := range fields {
		if strings.Contains(f, text) {
			return true
		}
	}
	return false
}
