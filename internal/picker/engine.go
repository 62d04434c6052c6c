package picker

import (
	"log/slog"
	"regexp"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/runger/pickline/internal/filter"
	"github.com/runger/pickline/internal/hint"
	"github.com/runger/pickline/internal/paginate"
	"github.com/runger/pickline/internal/record"
)

// Seed selects the initial cursor position: the first record whose field
// Column matches Pattern. It is evaluated once, in NewEngine.
type Seed struct {
	Column  int
	Pattern *regexp.Regexp
}

// Config is the resolved engine configuration.
type Config struct {
	PageSize int
	Alphabet hint.Alphabet
	Display  *record.ColumnRange
	Output   *record.ColumnRange
	Seed     *Seed
}

// Engine is the selection engine. It owns the cursor, the mode, the input
// buffer and the applied filter, and coordinates the record store, the
// paginator and the hint allocator. It is not safe for concurrent use; the
// UI loop is its only mutator.
type Engine struct {
	store  *record.Store
	cfg    Config
	pages  *paginate.Paginator
	logger *slog.Logger
	widths []int

	cursor        paginate.Slot
	mode          Mode
	buffer        string
	appliedFilter string
}

// NewEngine builds an engine over store showing every record. A nil logger
// discards output.
func NewEngine(store *record.Store, cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		store:  store,
		cfg:    cfg,
		pages:  paginate.New(cfg.PageSize),
		logger: logger,
		mode:   NormalMode{},
		widths: store.ColumnWidths(cfg.Display, displayWidth),
	}
	e.pages.Repaginate(filter.Apply(store, cfg.Display, ""))

	if cfg.Seed != nil {
		if idx, ok := store.FindFirst(cfg.Seed.Column, cfg.Seed.Pattern); ok {
			if slot, ok := e.pages.GoTo(idx); ok {
				e.cursor = slot
				logger.Debug("cursor seeded", "index", int(idx), "page", e.pages.Page(), "slot", int(slot))
			}
		}
	}

	return e
}

// displayWidth is the width of a field as the renderer draws it.
func displayWidth(s string) int {
	return runewidth.StringWidth(Sanitize(s))
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode { return e.mode }

// Cursor returns the cursor offset on the current page.
func (e *Engine) Cursor() paginate.Slot { return e.cursor }

// Buffer returns the live input buffer.
func (e *Engine) Buffer() string { return e.buffer }

// Filter returns the applied (saved) filter text.
func (e *Engine) Filter() string { return e.appliedFilter }

// Page returns the ground indices on the current page.
func (e *Engine) Page() []record.GroundIndex { return e.pages.Current() }

// Store returns the record store.
func (e *Engine) Store() *record.Store { return e.store }

// MoveUp moves the cursor up, stopping at the first row.
func (e *Engine) MoveUp() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveDown moves the cursor down, stopping at the last row of the page.
func (e *Engine) MoveDown() {
	if int(e.cursor) < len(e.pages.Current())-1 {
		e.cursor++
	}
}

// PrevPage shows the previous page.
func (e *Engine) PrevPage() {
	e.pages.Prev()
	e.pageChanged()
}

// NextPage shows the next page.
func (e *Engine) NextPage() {
	e.pages.Next()
	e.pageChanged()
}

// SetPageSize re-chunks the visible records. Hints on display are
// recomputed for the new page, as if Hint mode had been re-entered.
func (e *Engine) SetPageSize(n int) {
	if n == e.pages.Size() {
		return
	}
	e.pages.SetPageSize(n)
	e.pageChanged()
}

// pageChanged realigns the cursor after any change to the current page and
// keeps the hint map in step with it.
func (e *Engine) pageChanged() {
	e.cursor = e.pages.Clamp(e.cursor)
	if m, ok := e.mode.(HintMode); ok {
		m.hints = e.allocateHints()
		e.mode = m
		e.buffer = ""
	}
}

// LineUnderCursor resolves the cursor to a ground index. It reports false
// when the page is empty.
func (e *Engine) LineUnderCursor() (record.GroundIndex, bool) {
	return e.pages.Resolve(e.cursor)
}

// ToggleUnderCursor toggles the record under the cursor. It reports whether
// the session should end, which only happens when exit is set and a record
// was toggled.
func (e *Engine) ToggleUnderCursor(exit bool) bool {
	idx, ok := e.LineUnderCursor()
	if !ok {
		return false
	}
	e.store.Toggle(idx)
	return exit
}

// ToggleVisible toggles every record on the current page.
func (e *Engine) ToggleVisible(exit bool) bool {
	for _, idx := range e.pages.Current() {
		e.store.Toggle(idx)
	}
	return exit
}

// AddFilterChar appends r to the filter being edited and re-filters live.
func (e *Engine) AddFilterChar(r rune) {
	if !IsFilter(e.mode) {
		return
	}
	e.buffer += string(r)
	e.refilter(e.buffer)
}

// PopFilterChar removes the last character of the filter being edited.
func (e *Engine) PopFilterChar() {
	if !IsFilter(e.mode) {
		return
	}
	e.buffer = popRune(e.buffer)
	e.refilter(e.buffer)
}

// SaveFilter commits the edited filter and returns to NormalMode.
func (e *Engine) SaveFilter() {
	if !IsFilter(e.mode) {
		return
	}
	e.appliedFilter = e.buffer
	e.refilter(e.appliedFilter)
	e.buffer = ""
	e.mode = NormalMode{}
	e.logger.Debug("filter saved", "filter", e.appliedFilter, "visible", e.pages.Visible())
}

// DiscardFilter drops the edit, restores the applied filter and returns to
// NormalMode.
func (e *Engine) DiscardFilter() {
	if !IsFilter(e.mode) {
		return
	}
	e.refilter(e.appliedFilter)
	e.buffer = ""
	e.mode = NormalMode{}
	e.logger.Debug("filter discarded", "filter", e.appliedFilter)
}

func (e *Engine) refilter(text string) {
	e.pages.Repaginate(filter.Apply(e.store, e.cfg.Display, text))
	e.pageChanged()
}

// CommitHintChar types r in HintMode. On a unique match the matched record
// is toggled and the cursor moves to it; the session ends if exit is set,
// otherwise the buffer is cleared for the next pick. A character that no
// code starts with is dropped.
func (e *Engine) CommitHintChar(r rune, exit bool) bool {
	m, ok := e.mode.(HintMode)
	if !ok {
		return false
	}

	prev := e.buffer
	e.buffer += string(r)

	res := m.hints.Match(e.buffer)
	switch res.Outcome {
	case hint.Hit:
		e.cursor = res.Slot
		idx, ok := e.LineUnderCursor()
		if !ok {
			e.buffer = prev
			return false
		}
		e.store.Toggle(idx)
		e.logger.Debug("hint matched", "code", e.buffer, "slot", int(res.Slot), "index", int(idx))
		if exit {
			return true
		}
		e.buffer = ""
	case hint.Reject:
		e.buffer = prev
	}
	return false
}

// PopHintChar deletes the last typed hint character.
func (e *Engine) PopHintChar() {
	if IsHint(e.mode) {
		e.buffer = popRune(e.buffer)
	}
}

// SelectedOutput returns the output projection of every selected record in
// ground-index order.
func (e *Engine) SelectedOutput() []string {
	selected := e.store.Selected()
	out := make([]string, len(selected))
	for i, idx := range selected {
		out[i] = e.store.Output(idx, e.cfg.Output)
	}
	return out
}

// Result returns the selected output lines, or false when nothing was
// selected.
func (e *Engine) Result() ([]string, bool) {
	if e.store.SelectedCount() == 0 {
		return nil, false
	}
	out := e.SelectedOutput()
	e.logger.Debug("result", "selected", len(out))
	return out, true
}

func popRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
