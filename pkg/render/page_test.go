package render

import (
	"strings"
	"testing"
	"time"

	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/enum"
	"github.com/google/uuid"
)

func testInvoice(variant enum.TemplateVariant, itemCount int) *entity.Invoice {
	taxID := "5417000123"
	bank := "BAI AO06 0040 0000 1234 5678 9012 3"
	inv := &entity.Invoice{
		ID:             uuid.New(),
		CompanyName:    "Kitanda Digital Lda",
		CompanyAddress: "Rua Amílcar Cabral 42, Luanda",
		CompanyPhone:   "+244 923 000 111",
		CompanyEmail:   "geral@kitanda.ao",
		CompanyTaxID:   &taxID,
		ClientName:     "Construções Kwanza SA",
		ClientAddress:  "Av. 4 de Fevereiro 100, Luanda",
		Number:         "FAT-2026-0042",
		IssueDate:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		PaymentMethod:  "Transferência Bancária",
		BankDetails:    &bank,
		Template:       variant,
	}
	for i := 0; i < itemCount; i++ {
		item := entity.InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   inv.ID,
			Position:    i + 1,
			Description: "Serviço de consultoria",
			Quantity:    2,
			UnitPrice:   150,
		}
		item.Recalculate()
		inv.Items = append(inv.Items, item)
	}
	return inv
}

func TestBuildPageDocument_TotalsOnLastPageOnly(t *testing.T) {
	inv := testInvoice(enum.TemplateClassic, 25) // 3 pages at capacity 12

	tests := []struct {
		name       string
		page       int
		pageItems  []entity.InvoiceItem
		wantTotals bool
	}{
		{name: "first page", page: 1, pageItems: inv.Items[:12], wantTotals: false},
		{name: "middle page", page: 2, pageItems: inv.Items[12:24], wantTotals: false},
		{name: "last page", page: 3, pageItems: inv.Items[24:], wantTotals: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := BuildPageDocument(inv, tt.pageItems, PageMeta{
				CurrentPage:      tt.page,
				TotalPages:       3,
				HasMultiplePages: true,
			})
			if doc.ShowTotals != tt.wantTotals {
				t.Errorf("ShowTotals = %v, want %v", doc.ShowTotals, tt.wantTotals)
			}
			if tt.wantTotals {
				// Grand total covers the entire sequence, not the page chunk.
				want := FormatAmount(25 * 300)
				if doc.GrandTotal != want {
					t.Errorf("GrandTotal = %q, want %q", doc.GrandTotal, want)
				}
			} else if doc.GrandTotal != "" {
				t.Errorf("intermediate page carries GrandTotal %q", doc.GrandTotal)
			}
		})
	}
}

func TestBuildPageDocument_SinglePageShowsTotals(t *testing.T) {
	inv := testInvoice(enum.TemplateClassic, 10)
	doc := BuildPageDocument(inv, inv.Items, PageMeta{CurrentPage: 1, TotalPages: 1})

	if !doc.ShowTotals {
		t.Fatal("single-page document must show totals immediately")
	}
	if doc.ShowPageNumber {
		t.Error("single-page document should not carry a page number label")
	}
	if doc.PaymentMethod == "" || doc.BankDetails == "" {
		t.Error("payment blocks must render alongside the total")
	}
}

func TestBuildPageDocument_ClientDetailsFirstPageOnly(t *testing.T) {
	inv := testInvoice(enum.TemplateMinimal, 20) // 2 pages at capacity 15

	first := BuildPageDocument(inv, inv.Items[:15], PageMeta{CurrentPage: 1, TotalPages: 2, HasMultiplePages: true})
	if !first.ShowClientDetails {
		t.Error("page 1 must show the full client block")
	}
	if first.ClientSummary != "" {
		t.Errorf("page 1 should not carry a compact summary, got %q", first.ClientSummary)
	}

	second := BuildPageDocument(inv, inv.Items[15:], PageMeta{CurrentPage: 2, TotalPages: 2, HasMultiplePages: true})
	if second.ShowClientDetails {
		t.Error("page 2 must not show the full client block")
	}
	if want := "Cliente: Construções Kwanza SA"; second.ClientSummary != want {
		t.Errorf("ClientSummary = %q, want %q", second.ClientSummary, want)
	}
}

func TestBuildPageDocument_RowPadding(t *testing.T) {
	tests := []struct {
		variant   enum.TemplateVariant
		items     int
		wantRows  int
		wantEmpty int
	}{
		{variant: enum.TemplateClassic, items: 10, wantRows: 12, wantEmpty: 2},
		{variant: enum.TemplateModern, items: 10, wantRows: 10, wantEmpty: 0},
		{variant: enum.TemplateMinimal, items: 10, wantRows: 15, wantEmpty: 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			inv := testInvoice(tt.variant, tt.items)
			doc := BuildPageDocument(inv, inv.Items, PageMeta{CurrentPage: 1, TotalPages: 1})

			if len(doc.Rows) != tt.wantRows {
				t.Fatalf("len(Rows) = %d, want %d", len(doc.Rows), tt.wantRows)
			}
			empty := 0
			for _, row := range doc.Rows {
				if row.Empty {
					empty++
				}
			}
			if empty != tt.wantEmpty {
				t.Errorf("empty rows = %d, want %d", empty, tt.wantEmpty)
			}
			// padding never displaces real items
			if !doc.Rows[0].Empty && doc.Rows[0].Description != "Serviço de consultoria" {
				t.Errorf("first row = %+v", doc.Rows[0])
			}
		})
	}
}

func TestBuildPageDocument_EmptyInvoice(t *testing.T) {
	inv := testInvoice(enum.TemplateClassic, 0)
	doc := BuildPageDocument(inv, nil, PageMeta{CurrentPage: 1, TotalPages: 0})

	if doc.ShowTotals {
		t.Error("empty invoice must hide the total")
	}
	if len(doc.Rows) != 0 {
		t.Errorf("empty invoice should render no rows, got %d", len(doc.Rows))
	}
	if !doc.ShowClientDetails {
		t.Error("the empty-state document is still page 1")
	}
}

func TestBuildPageDocument_AbsentLogoOmitted(t *testing.T) {
	inv := testInvoice(enum.TemplateClassic, 1)
	doc := BuildPageDocument(inv, inv.Items, PageMeta{CurrentPage: 1, TotalPages: 1})
	if doc.CompanyLogo != "" {
		t.Errorf("CompanyLogo = %q, want empty", doc.CompanyLogo)
	}

	logo := "data:image/png;base64,iVBORw0KGgo="
	inv.CompanyLogo = &logo
	doc = BuildPageDocument(inv, inv.Items, PageMeta{CurrentPage: 1, TotalPages: 1})
	if doc.CompanyLogo != logo {
		t.Errorf("CompanyLogo = %q, want %q", doc.CompanyLogo, logo)
	}
}

func TestRenderer_VariantsHonorSharedContract(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	for _, variant := range []enum.TemplateVariant{enum.TemplateClassic, enum.TemplateModern, enum.TemplateMinimal} {
		t.Run(string(variant), func(t *testing.T) {
			inv := testInvoice(variant, variant.ItemsPerPage()+1) // forces 2 pages
			preview := NewPreview(renderer, inv)

			first, err := preview.RenderPage(1)
			if err != nil {
				t.Fatalf("RenderPage(1): %v", err)
			}
			if strings.Contains(first, FormatAmount(inv.TotalAmount())) {
				t.Error("page 1 of a multi-page document must not show the grand total")
			}
			if !strings.Contains(first, inv.ClientAddress) {
				t.Error("page 1 must render the full client block")
			}

			last, err := preview.RenderPage(2)
			if err != nil {
				t.Fatalf("RenderPage(2): %v", err)
			}
			if !strings.Contains(last, FormatAmount(inv.TotalAmount())) {
				t.Error("last page must show the grand total")
			}
			if strings.Contains(last, inv.ClientAddress) {
				t.Error("pages beyond the first must not repeat the full client block")
			}
		})
	}
}
