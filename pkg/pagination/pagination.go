package pagination

import "math"

// =============================================================================
// Document Pagination (fixed-capacity page chunking)
// =============================================================================

// Paginator splits an ordered slice into consecutive fixed-capacity pages and
// tracks a 1-based current page. Page boundaries are purely positional: chunk i
// holds items [i*perPage, (i+1)*perPage), the last chunk may be shorter.
type Paginator[T any] struct {
	pages   [][]T
	perPage int
	current int // 1-based; 0 when there are no pages
}

// NewPaginator partitions items into pages of perPage and selects page 1.
// An empty slice yields zero pages. perPage values below 1 are clamped to 1.
func NewPaginator[T any](items []T, perPage int) *Paginator[T] {
	if perPage < 1 {
		perPage = 1
	}
	p := &Paginator[T]{perPage: perPage}
	p.rebuild(items)
	return p
}

func (p *Paginator[T]) rebuild(items []T) {
	p.pages = nil
	for i := 0; i < len(items); i += p.perPage {
		end := i + p.perPage
		if end > len(items) {
			end = len(items)
		}
		p.pages = append(p.pages, items[i:end])
	}
	if len(p.pages) == 0 {
		p.current = 0
		return
	}
	if p.current < 1 || p.current > len(p.pages) {
		p.current = 1
	}
}

// Repage recomputes the partition from scratch for a changed item slice or
// capacity. The current page is preserved when it still exists, otherwise it
// resets to page 1.
func (p *Paginator[T]) Repage(items []T, perPage int) {
	if perPage >= 1 {
		p.perPage = perPage
	}
	p.rebuild(items)
}

// TotalPages returns the number of pages; 0 for an empty item slice.
func (p *Paginator[T]) TotalPages() int {
	return len(p.pages)
}

// CurrentPage returns the 1-based selected page index, or 0 when no pages exist.
func (p *Paginator[T]) CurrentPage() int {
	return p.current
}

// PerPage returns the page capacity.
func (p *Paginator[T]) PerPage() int {
	return p.perPage
}

// Pages returns the full partition in order. Concatenating the returned chunks
// reconstructs the original item slice exactly.
func (p *Paginator[T]) Pages() [][]T {
	return p.pages
}

// CurrentPageItems returns the chunk for the selected page, or an empty slice
// when no pages exist.
func (p *Paginator[T]) CurrentPageItems() []T {
	if p.current < 1 || p.current > len(p.pages) {
		return nil
	}
	return p.pages[p.current-1]
}

// Page returns the 1-based page n, or an empty slice when n is out of range.
func (p *Paginator[T]) Page(n int) []T {
	if n < 1 || n > len(p.pages) {
		return nil
	}
	return p.pages[n-1]
}

// NextPage advances to the following page. Calling it on the last page is a
// no-op, not an error.
func (p *Paginator[T]) NextPage() {
	if p.current < len(p.pages) {
		p.current++
	}
}

// PrevPage retreats to the preceding page. Calling it on page 1 is a no-op.
func (p *Paginator[T]) PrevPage() {
	if p.current > 1 {
		p.current--
	}
}

// GoToPage selects page n when 1 <= n <= TotalPages; out-of-range requests are
// silently ignored.
func (p *Paginator[T]) GoToPage(n int) {
	if n >= 1 && n <= len(p.pages) {
		p.current = n
	}
}

// IsFirstPage reports whether page 1 is selected.
func (p *Paginator[T]) IsFirstPage() bool {
	return p.current == 1
}

// IsLastPage reports whether the final page is selected.
func (p *Paginator[T]) IsLastPage() bool {
	return len(p.pages) > 0 && p.current == len(p.pages)
}

// HasMultiplePages reports whether the document spans more than one page.
func (p *Paginator[T]) HasMultiplePages() bool {
	return len(p.pages) > 1
}

// =============================================================================
// Page-Based List Pagination (Offset Pagination)
// =============================================================================

// Pagination represents pagination parameters
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// PaginationParams represents input parameters for pagination
type PaginationParams struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// DefaultPagination returns default pagination values
func DefaultPagination() *PaginationParams {
	return &PaginationParams{
		Page:    1,
		PerPage: 15,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 15
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset calculates the offset for SQL queries
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// NewPagination creates a new Pagination response
func NewPagination(page, perPage int, total int64) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	return &Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// PaginatedResult represents a paginated result with items and pagination info
type PaginatedResult[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// NewPaginatedResult creates a new paginated result
func NewPaginatedResult[T any](items []T, pagination *Pagination) *PaginatedResult[T] {
	return &PaginatedResult[T]{
		Items:      items,
		Pagination: pagination,
	}
}
