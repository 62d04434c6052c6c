package picker

import "github.com/runger/pickline/internal/hint"

// Mode is the interaction mode. Each variant carries only the state that is
// valid while it is active: the hint map exists only inside HintMode.
type Mode interface {
	String() string
	isMode()
}

// NormalMode is the initial mode: navigation and selection keys.
type NormalMode struct{}

// FilterMode edits the filter text in the input buffer.
type FilterMode struct{}

// HintMode shows a jump code next to every row on the current page.
type HintMode struct {
	// ExitOnMatch ends the session after the first successful match.
	ExitOnMatch bool

	hints hint.Map
}

// ReviewMode lists every selected record.
type ReviewMode struct{}

func (NormalMode) isMode() {}
func (FilterMode) isMode() {}
func (HintMode) isMode()   {}
func (ReviewMode) isMode() {}

func (NormalMode) String() string { return "normal" }
func (FilterMode) String() string { return "filter" }
func (ReviewMode) String() string { return "review" }

func (m HintMode) String() string {
	if m.ExitOnMatch {
		return "hint(exit)"
	}
	return "hint"
}

// Hints returns the codes assigned to the current page.
func (m HintMode) Hints() hint.Map { return m.hints }

// IsNormal reports whether m is NormalMode.
func IsNormal(m Mode) bool { _, ok := m.(NormalMode); return ok }

// IsFilter reports whether m is FilterMode.
func IsFilter(m Mode) bool { _, ok := m.(FilterMode); return ok }

// IsHint reports whether m is a HintMode.
func IsHint(m Mode) bool { _, ok := m.(HintMode); return ok }

// IsReview reports whether m is ReviewMode.
func IsReview(m Mode) bool { _, ok := m.(ReviewMode); return ok }

// EnterMode performs a mode transition and its side effects. Every move
// between non-normal modes must pass through NormalMode; any other request
// is rejected and reported as false.
//
// Leaving FilterMode through EnterMode discards the edit, the same as
// DiscardFilter.
func (e *Engine) EnterMode(next Mode) bool {
	from := e.mode

	switch cur := e.mode.(type) {
	case NormalMode:
		switch n := next.(type) {
		case HintMode:
			e.mode = HintMode{ExitOnMatch: n.ExitOnMatch, hints: e.allocateHints()}
			e.buffer = ""
		case FilterMode:
			e.buffer = e.appliedFilter
			e.mode = FilterMode{}
		case ReviewMode:
			e.mode = ReviewMode{}
		default:
			return e.rejectTransition(from, next)
		}

	case HintMode:
		if !IsNormal(next) {
			return e.rejectTransition(cur, next)
		}
		e.buffer = ""
		e.mode = NormalMode{}

	case FilterMode:
		if !IsNormal(next) {
			return e.rejectTransition(cur, next)
		}
		e.DiscardFilter()
		return true

	case ReviewMode:
		if !IsNormal(next) {
			return e.rejectTransition(cur, next)
		}
		e.mode = NormalMode{}
	}

	e.logger.Debug("mode transition", "from", from.String(), "to", e.mode.String())
	return true
}

func (e *Engine) rejectTransition(from, to Mode) bool {
	e.logger.Debug("mode transition rejected", "from", from.String(), "to", to.String())
	return false
}

func (e *Engine) allocateHints() hint.Map {
	return hint.Allocate(len(e.pages.Current()), e.cfg.Alphabet)
}
