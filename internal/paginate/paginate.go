// Package paginate chunks the visible index list into fixed-size pages and
// tracks which page is current.
package paginate

import "github.com/runger/pickline/internal/record"

// Slot is an offset into the current page. It is only meaningful together
// with the page it was taken from; use Paginator.Resolve to turn it into a
// record.GroundIndex.
type Slot int

// Chunk partitions indices into runs of size (the last may be shorter).
// A size below 1 is treated as 1. An empty input yields no pages.
func Chunk(indices []record.GroundIndex, size int) [][]record.GroundIndex {
	if size < 1 {
		size = 1
	}
	pages := make([][]record.GroundIndex, 0, (len(indices)+size-1)/size)
	for start := 0; start < len(indices); start += size {
		end := min(start+size, len(indices))
		page := make([]record.GroundIndex, end-start)
		copy(page, indices[start:end])
		pages = append(pages, page)
	}
	return pages
}

// Paginator holds the page list and the current page number.
type Paginator struct {
	size    int
	page    int
	indices []record.GroundIndex
	pages   [][]record.GroundIndex
}

// New returns an empty paginator with the given page size.
func New(size int) *Paginator {
	if size < 1 {
		size = 1
	}
	return &Paginator{size: size}
}

// Repaginate replaces the visible index list and returns to page 0.
func (p *Paginator) Repaginate(indices []record.GroundIndex) {
	p.indices = append(p.indices[:0:0], indices...)
	p.pages = Chunk(p.indices, p.size)
	p.page = 0
}

// SetPageSize re-chunks the current visible list with a new page size and
// returns to page 0.
func (p *Paginator) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	p.size = size
	p.pages = Chunk(p.indices, p.size)
	p.page = 0
}

// Size returns the page size.
func (p *Paginator) Size() int { return p.size }

// Page returns the 0-based current page number.
func (p *Paginator) Page() int { return p.page }

// Count returns the number of pages.
func (p *Paginator) Count() int { return len(p.pages) }

// Visible returns the number of indices across all pages.
func (p *Paginator) Visible() int { return len(p.indices) }

// Current returns the ground indices on the current page, or nil when there
// are no pages.
func (p *Paginator) Current() []record.GroundIndex {
	if p.page < 0 || p.page >= len(p.pages) {
		return nil
	}
	return p.pages[p.page]
}

// Prev moves to the previous page, stopping at page 0.
func (p *Paginator) Prev() {
	if p.page > 0 {
		p.page--
	}
}

// Next moves to the next page, stopping at the last page.
func (p *Paginator) Next() {
	if p.page < len(p.pages)-1 {
		p.page++
	}
}

// GoTo moves to the page holding ground index i. It reports false when i is
// not visible.
func (p *Paginator) GoTo(i record.GroundIndex) (Slot, bool) {
	for n, page := range p.pages {
		for s, idx := range page {
			if idx == i {
				p.page = n
				return Slot(s), true
			}
		}
	}
	return 0, false
}

// Resolve maps a slot on the current page to its ground index.
func (p *Paginator) Resolve(s Slot) (record.GroundIndex, bool) {
	page := p.Current()
	if s < 0 || int(s) >= len(page) {
		return 0, false
	}
	return page[s], true
}

// Clamp aligns a cursor to the current page: min(cursor, k-1), or 0 when the
// page is empty.
func (p *Paginator) Clamp(cursor Slot) Slot {
	k := len(p.Current())
	if k == 0 || cursor < 0 {
		return 0
	}
	return min(cursor, Slot(k-1))
}
