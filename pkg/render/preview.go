package render

import (
	"strings"

	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/pkg/pagination"
)

// PageBreakMarker separates concatenated pages in the print view. The print
// stylesheet maps it to a forced page break.
const PageBreakMarker = `<div class="print-page-break"></div>`

// Controls describes the navigation control block for the interactive view.
// The block is hidden entirely for single-page documents, and the per-page
// jump buttons appear only when there are more than two pages.
type Controls struct {
	Visible         bool  `json:"visible"`
	CurrentPage     int   `json:"current_page"`
	TotalPages      int   `json:"total_pages"`
	PrevEnabled     bool  `json:"prev_enabled"`
	NextEnabled     bool  `json:"next_enabled"`
	ShowPageButtons bool  `json:"show_page_buttons"`
	PageNumbers     []int `json:"page_numbers,omitempty"`
}

// Preview composes the paginator and the renderer over one invoice. The page
// partition is computed once, so the interactive view and the concatenated
// print view always agree on page boundaries and order.
type Preview struct {
	renderer *Renderer
	invoice  *entity.Invoice
	pager    *pagination.Paginator[entity.InvoiceItem]
}

// NewPreview partitions the invoice's items by its template capacity.
func NewPreview(renderer *Renderer, invoice *entity.Invoice) *Preview {
	return &Preview{
		renderer: renderer,
		invoice:  invoice,
		pager:    pagination.NewPaginator(invoice.Items, invoice.Template.ItemsPerPage()),
	}
}

// Paginator exposes navigation over the computed partition.
func (p *Preview) Paginator() *pagination.Paginator[entity.InvoiceItem] {
	return p.pager
}

func (p *Preview) meta(page int) PageMeta {
	return PageMeta{
		CurrentPage:      page,
		TotalPages:       p.pager.TotalPages(),
		HasMultiplePages: p.pager.HasMultiplePages(),
	}
}

// PageDocument resolves page n against the cross-page contract. For an empty
// invoice (zero pages) it still yields a valid page-1 document.
func (p *Preview) PageDocument(n int) PageDocument {
	if p.pager.TotalPages() == 0 {
		return BuildPageDocument(p.invoice, nil, p.meta(1))
	}
	return BuildPageDocument(p.invoice, p.pager.Page(n), p.meta(n))
}

// RenderPage renders page n of the interactive view. Out-of-range pages are
// clamped to the current selection rather than failing.
func (p *Preview) RenderPage(n int) (string, error) {
	p.pager.GoToPage(n)
	return p.renderer.RenderPage(p.CurrentDocument())
}

// CurrentDocument resolves the currently selected page.
func (p *Preview) CurrentDocument() PageDocument {
	page := p.pager.CurrentPage()
	if page == 0 {
		page = 1
	}
	return p.PageDocument(page)
}

// RenderCurrent renders the currently selected page.
func (p *Preview) RenderCurrent() (string, error) {
	return p.renderer.RenderPage(p.CurrentDocument())
}

// RenderPrint renders every page in order, concatenated with explicit
// page-break markers. It reuses the same partition as the interactive view.
func (p *Preview) RenderPrint() (string, error) {
	if p.pager.TotalPages() == 0 {
		return p.renderer.RenderPage(p.PageDocument(1))
	}

	var sb strings.Builder
	for n := 1; n <= p.pager.TotalPages(); n++ {
		if n > 1 {
			sb.WriteString(PageBreakMarker)
		}
		html, err := p.renderer.RenderPage(p.PageDocument(n))
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	return sb.String(), nil
}

// Controls derives the navigation control state for the current selection.
func (p *Preview) Controls() Controls {
	total := p.pager.TotalPages()
	c := Controls{
		Visible:     total > 1,
		CurrentPage: p.pager.CurrentPage(),
		TotalPages:  total,
	}
	if !c.Visible {
		return c
	}

	c.PrevEnabled = !p.pager.IsFirstPage()
	c.NextEnabled = !p.pager.IsLastPage()
	c.ShowPageButtons = total > 2
	if c.ShowPageButtons {
		c.PageNumbers = make([]int, total)
		for i := range c.PageNumbers {
			c.PageNumbers[i] = i + 1
		}
	}
	return c
}
