package render

import (
	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/enum"
)

// PageMeta carries the pagination state a single page is rendered under.
type PageMeta struct {
	CurrentPage      int
	TotalPages       int
	HasMultiplePages bool
}

// IsLastPage reports whether this page closes the document.
func (m PageMeta) IsLastPage() bool {
	return m.TotalPages > 0 && m.CurrentPage == m.TotalPages
}

// Row is one rendered line of the items table. Empty rows pad short pages up
// to the variant capacity so every page keeps the same table height.
type Row struct {
	Description string
	Quantity    string
	UnitPrice   string
	Total       string
	Empty       bool
}

// PageDocument is the resolved content of one invoice page. It is a value
// object composed at render time, never stored. All page-relative visibility
// rules are decided here, once, so the template variants only arrange what
// they are given and cannot drift on data semantics.
type PageDocument struct {
	Variant enum.TemplateVariant

	CurrentPage    int
	TotalPages     int
	ShowPageNumber bool // multi-page documents label every page "Página X de Y"

	// Company header (every page)
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	CompanyTaxID   string
	CompanyLogo    string // data URL, empty when absent

	Number    string
	IssueDate string
	DueDate   string

	// Client block: full details on page 1 only; later pages carry a compact
	// one-line reference the variant may show or drop.
	ShowClientDetails bool
	ClientSummary     string
	ClientName        string
	ClientAddress     string
	ClientPhone       string
	ClientEmail       string
	ClientTaxID       string

	Rows []Row

	// Totals and payment blocks appear only on the last page of a multi-page
	// document (or on the single page).
	ShowTotals    bool
	GrandTotal    string
	PaymentMethod string
	BankDetails   string
	Observations  string
}

// BuildPageDocument resolves one page of an invoice against the shared
// cross-page contract. pageItems is that page's chunk only; the grand total is
// computed from the full item sequence on the invoice, regardless of how many
// pages exist.
func BuildPageDocument(inv *entity.Invoice, pageItems []entity.InvoiceItem, meta PageMeta) PageDocument {
	doc := PageDocument{
		Variant:        inv.Template,
		CurrentPage:    meta.CurrentPage,
		TotalPages:     meta.TotalPages,
		ShowPageNumber: meta.HasMultiplePages,

		CompanyName:    inv.CompanyName,
		CompanyAddress: inv.CompanyAddress,
		CompanyPhone:   inv.CompanyPhone,
		CompanyEmail:   inv.CompanyEmail,
		CompanyTaxID:   deref(inv.CompanyTaxID),
		CompanyLogo:    deref(inv.CompanyLogo),

		Number:    inv.Number,
		IssueDate: FormatDate(inv.IssueDate),

		ClientName:    inv.ClientName,
		ClientAddress: inv.ClientAddress,
		ClientPhone:   deref(inv.ClientPhone),
		ClientEmail:   deref(inv.ClientEmail),
		ClientTaxID:   deref(inv.ClientTaxID),

		PaymentMethod: inv.PaymentMethod,
		BankDetails:   deref(inv.BankDetails),
		Observations:  deref(inv.Observations),
	}
	if inv.DueDate != nil {
		doc.DueDate = FormatDate(*inv.DueDate)
	}

	doc.ShowClientDetails = meta.CurrentPage == 1
	if !doc.ShowClientDetails && inv.ClientName != "" {
		doc.ClientSummary = "Cliente: " + inv.ClientName
	}

	// An empty invoice has zero pages but must still render a valid page-1
	// document with no rows and the total hidden.
	doc.ShowTotals = meta.TotalPages > 0 && (!meta.HasMultiplePages || meta.IsLastPage())
	if doc.ShowTotals {
		doc.GrandTotal = FormatAmount(inv.TotalAmount())
	}

	capacity := inv.Template.ItemsPerPage()
	doc.Rows = make([]Row, 0, capacity)
	for _, item := range pageItems {
		doc.Rows = append(doc.Rows, Row{
			Description: item.Description,
			Quantity:    FormatQuantity(item.Quantity),
			UnitPrice:   FormatAmount(item.UnitPrice),
			Total:       FormatAmount(item.Total),
		})
	}
	if meta.TotalPages > 0 {
		for len(doc.Rows) < capacity {
			doc.Rows = append(doc.Rows, Row{Empty: true})
		}
	}

	return doc
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
