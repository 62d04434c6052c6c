// Package record holds the parsed input records and the user's selection.
package record

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// GroundIndex is the stable 0-based position of a record in the original,
// unfiltered input. Every other component refers back to records by it.
type GroundIndex int

// Record is one immutable input line, optionally split into fields.
type Record struct {
	Raw    string
	Fields []string
}

// New splits text on delim. Without a delimiter the record has a single
// field equal to the raw text.
func New(text, delim string) Record {
	if delim == "" {
		return Record{Raw: text, Fields: []string{text}}
	}
	return Record{Raw: text, Fields: strings.Split(text, delim)}
}

// Store owns the records and the current selection set.
type Store struct {
	records  []Record
	delim    string
	selected map[GroundIndex]struct{}
}

// NewStore parses lines into records using delim (empty = no splitting).
func NewStore(lines []string, delim string) *Store {
	records := make([]Record, len(lines))
	for i, l := range lines {
		records[i] = New(l, delim)
	}
	return &Store{
		records:  records,
		delim:    delim,
		selected: make(map[GroundIndex]struct{}),
	}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Delimiter returns the configured delimiter, or "" when none was set.
func (s *Store) Delimiter() string {
	return s.delim
}

// Valid reports whether i refers to an existing record.
func (s *Store) Valid(i GroundIndex) bool {
	return i >= 0 && int(i) < len(s.records)
}

// Get returns the record at i.
func (s *Store) Get(i GroundIndex) (Record, bool) {
	if !s.Valid(i) {
		return Record{}, false
	}
	return s.records[i], true
}

// Display returns the display projection of record i.
func (s *Store) Display(i GroundIndex, rng *ColumnRange) []string {
	r, ok := s.Get(i)
	if !ok {
		return nil
	}
	return Project(r.Fields, rng)
}

// Output returns the output projection of record i joined by the delimiter.
func (s *Store) Output(i GroundIndex, rng *ColumnRange) string {
	r, ok := s.Get(i)
	if !ok {
		return ""
	}
	return Join(Project(r.Fields, rng), s.delim)
}

// Toggle flips the selection state of record i. Invalid indices are ignored.
func (s *Store) Toggle(i GroundIndex) {
	if !s.Valid(i) {
		return
	}
	if _, ok := s.selected[i]; ok {
		delete(s.selected, i)
		return
	}
	s.selected[i] = struct{}{}
}

// IsSelected reports whether record i is selected.
func (s *Store) IsSelected(i GroundIndex) bool {
	_, ok := s.selected[i]
	return ok
}

// SelectedCount returns the size of the selection set.
func (s *Store) SelectedCount() int {
	return len(s.selected)
}

// Selected returns the selected ground indices in ascending order.
func (s *Store) Selected() []GroundIndex {
	out := make([]GroundIndex, 0, len(s.selected))
	for i := range s.selected {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// FindFirst returns the first record whose field col matches re.
func (s *Store) FindFirst(col int, re *regexp.Regexp) (GroundIndex, bool) {
	if re == nil || col < 0 {
		return 0, false
	}
	for i, r := range s.records {
		if col < len(r.Fields) && re.MatchString(r.Fields[col]) {
			return GroundIndex(i), true
		}
	}
	return 0, false
}

// ColumnWidths returns the widest width seen in each projected display
// column across all records. measure returns the width of one field; nil
// measures the raw field with runewidth.
func (s *Store) ColumnWidths(rng *ColumnRange, measure func(string) int) []int {
	if measure == nil {
		measure = runewidth.StringWidth
	}
	var widths []int
	for _, r := range s.records {
		for i, f := range Project(r.Fields, rng) {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := measure(f); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
