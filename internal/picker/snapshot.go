package picker

import (
	"github.com/runger/pickline/internal/paginate"
	"github.com/runger/pickline/internal/record"
)

// Row is one rendered line of the current page.
type Row struct {
	Slot     paginate.Slot
	Index    record.GroundIndex
	Fields   []string
	Selected bool
	Cursor   bool
	Hint     string // empty outside HintMode
}

// Snapshot is a read-only copy of everything the renderer needs for one
// frame.
type Snapshot struct {
	Mode          Mode
	Rows          []Row
	Buffer        string
	Filter        string
	PageNum       int // zero-based
	PageCount     int
	Visible       int
	Total         int
	SelectedCount int

	// Review holds the output projection of the selected records while in
	// ReviewMode.
	Review []string
}

// Snapshot captures the engine state for rendering.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Mode:          e.mode,
		Buffer:        e.buffer,
		Filter:        e.appliedFilter,
		PageNum:       e.pages.Page(),
		PageCount:     e.pages.Count(),
		Visible:       e.pages.Visible(),
		Total:         e.store.Len(),
		SelectedCount: e.store.SelectedCount(),
	}

	if IsReview(e.mode) {
		s.Review = e.SelectedOutput()
		return s
	}

	hm, inHint := e.mode.(HintMode)
	page := e.pages.Current()
	s.Rows = make([]Row, len(page))
	for i, idx := range page {
		slot := paginate.Slot(i)
		row := Row{
			Slot:     slot,
			Index:    idx,
			Fields:   e.store.Display(idx, e.cfg.Display),
			Selected: e.store.IsSelected(idx),
			Cursor:   slot == e.cursor,
		}
		if inHint {
			row.Hint, _ = hm.hints.Code(slot)
		}
		s.Rows[i] = row
	}
	return s
}

// ColumnWidths returns the display width of every projected column across
// the whole input, so columns stay aligned from page to page. The widths
// are measured once, in NewEngine.
func (e *Engine) ColumnWidths() []int {
	return e.widths
}
