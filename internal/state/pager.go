package state

import "github.com/charmbracelet/bubbles/paginator"

// DefaultPageSize is used when a non-positive page size is requested.
const DefaultPageSize = 5

// Pager is a fixed-size, 1-indexed page window over a list.
type Pager struct {
	model paginator.Model
	total int
}

// NewPager returns a pager on page 1 of an empty list.
func NewPager(pageSize int) Pager {
	m := paginator.New()
	m.Type = paginator.Arabic
	m.PerPage = clampPageSize(pageSize)
	m.TotalPages = 1
	return Pager{model: m}
}

// SetTotal recomputes the page count for a list of n items and clamps the
// current page into range.
func (p *Pager) SetTotal(n int) {
	p.ensure()
	if n < 0 {
		n = 0
	}
	p.total = n
	pages := n / p.model.PerPage
	if n%p.model.PerPage != 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	p.model.TotalPages = pages
	if p.model.Page >= pages {
		p.model.Page = pages - 1
	}
	if p.model.Page < 0 {
		p.model.Page = 0
	}
}

// SetPageSize changes the page size and returns to page 1.
func (p *Pager) SetPageSize(size int) {
	p.ensure()
	p.model.PerPage = clampPageSize(size)
	p.model.Page = 0
	p.SetTotal(p.total)
}

// PageSize returns the number of items per page.
func (p *Pager) PageSize() int {
	p.ensure()
	return p.model.PerPage
}

// Current returns the 1-indexed current page.
func (p *Pager) Current() int {
	p.ensure()
	return p.model.Page + 1
}

// TotalPages returns the page count, which is at least 1.
func (p *Pager) TotalPages() int {
	p.ensure()
	return p.model.TotalPages
}

// GoTo moves to page. Pages outside [1, TotalPages] are ignored and GoTo
// reports false.
func (p *Pager) GoTo(page int) bool {
	p.ensure()
	if page < 1 || page > p.model.TotalPages {
		return false
	}
	p.model.Page = page - 1
	return true
}

// Next advances one page if possible.
func (p *Pager) Next() bool {
	return p.GoTo(p.Current() + 1)
}

// Prev goes back one page if possible.
func (p *Pager) Prev() bool {
	return p.GoTo(p.Current() - 1)
}

// Bounds returns the slice bounds of the current page within a list of
// length n.
func (p *Pager) Bounds(n int) (start, end int) {
	p.ensure()
	return p.model.GetSliceBounds(n)
}

// View renders the page indicator, e.g. "2/5".
func (p *Pager) View() string {
	p.ensure()
	return p.model.View()
}

func (p *Pager) ensure() {
	if p.model.PerPage <= 0 {
		*p = NewPager(DefaultPageSize)
	}
}

// Page returns the items on the pager's current page.
func Page[T any](p *Pager, items []T) []T {
	start, end := p.Bounds(len(items))
	if start >= end {
		return nil
	}
	return items[start:end]
}

func clampPageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	return size
}
