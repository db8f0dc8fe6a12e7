package domain

// PaginationParams carries page/limit values from the HTTP layer to the
// filtered view. Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate returns the slice of people that falls on page p.
// Pages past the end yield an empty, non-nil slice. The page is compared
// before the offset is computed, so an arbitrarily large page cannot
// overflow into a negative offset.
func Paginate(people []Person, p PaginationParams) []Person {
	if p.Page < 1 || p.Limit < 1 || p.Page-1 > len(people)/p.Limit {
		return []Person{}
	}
	start := p.Offset()
	if start >= len(people) {
		return []Person{}
	}
	end := start + p.Limit
	if end > len(people) {
		end = len(people)
	}
	return people[start:end]
}
