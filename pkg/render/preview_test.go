package render

import (
	"strings"
	"testing"

	"github.com/faturango/fatura-api/internal/domain/enum"
)

func TestPreview_Controls(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	tests := []struct {
		name            string
		items           int
		wantVisible     bool
		wantButtons     bool
		wantTotalPages  int
	}{
		{name: "empty invoice", items: 0, wantVisible: false, wantTotalPages: 0},
		{name: "single page", items: 10, wantVisible: false, wantTotalPages: 1},
		{name: "two pages prev next only", items: 20, wantVisible: true, wantButtons: false, wantTotalPages: 2},
		{name: "three pages with jump buttons", items: 25, wantVisible: true, wantButtons: true, wantTotalPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := testInvoice(enum.TemplateClassic, tt.items)
			preview := NewPreview(renderer, inv)
			c := preview.Controls()

			if c.Visible != tt.wantVisible {
				t.Errorf("Visible = %v, want %v", c.Visible, tt.wantVisible)
			}
			if c.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", c.TotalPages, tt.wantTotalPages)
			}
			if c.ShowPageButtons != tt.wantButtons {
				t.Errorf("ShowPageButtons = %v, want %v", c.ShowPageButtons, tt.wantButtons)
			}
			if tt.wantButtons && len(c.PageNumbers) != tt.wantTotalPages {
				t.Errorf("PageNumbers = %v, want 1..%d", c.PageNumbers, tt.wantTotalPages)
			}
		})
	}
}

func TestPreview_ControlsBoundaries(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	inv := testInvoice(enum.TemplateClassic, 25)
	preview := NewPreview(renderer, inv)

	c := preview.Controls()
	if c.PrevEnabled {
		t.Error("prev must be disabled on the first page")
	}
	if !c.NextEnabled {
		t.Error("next must be enabled on the first page")
	}

	preview.Paginator().GoToPage(3)
	c = preview.Controls()
	if !c.PrevEnabled {
		t.Error("prev must be enabled on the last page")
	}
	if c.NextEnabled {
		t.Error("next must be disabled on the last page")
	}
}

func TestPreview_PrintMatchesInteractivePartition(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	inv := testInvoice(enum.TemplateClassic, 25)
	preview := NewPreview(renderer, inv)

	printView, err := preview.RenderPrint()
	if err != nil {
		t.Fatalf("RenderPrint: %v", err)
	}

	// three pages, two break markers between them
	if got := strings.Count(printView, PageBreakMarker); got != 2 {
		t.Errorf("page break markers = %d, want 2", got)
	}

	// the print view is exactly the concatenation of the interactive pages
	var want strings.Builder
	for n := 1; n <= preview.Paginator().TotalPages(); n++ {
		if n > 1 {
			want.WriteString(PageBreakMarker)
		}
		page, err := preview.RenderPage(n)
		if err != nil {
			t.Fatalf("RenderPage(%d): %v", n, err)
		}
		want.WriteString(page)
	}
	if printView != want.String() {
		t.Error("print view diverges from the interactive page sequence")
	}
}

func TestPreview_EmptyInvoiceStillRenders(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	inv := testInvoice(enum.TemplateModern, 0)
	preview := NewPreview(renderer, inv)

	html, err := preview.RenderCurrent()
	if err != nil {
		t.Fatalf("RenderCurrent: %v", err)
	}
	if !strings.Contains(html, inv.CompanyName) {
		t.Error("empty-state document must still carry the company header")
	}
	if strings.Contains(html, "TOTAL") {
		t.Error("empty-state document must hide the total")
	}

	printView, err := preview.RenderPrint()
	if err != nil {
		t.Fatalf("RenderPrint: %v", err)
	}
	if strings.Contains(printView, PageBreakMarker) {
		t.Error("empty invoice print view should be a single page")
	}
}

func TestPreview_PDFAllPages(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	inv := testInvoice(enum.TemplateClassic, 25)
	preview := NewPreview(renderer, inv)

	out, err := preview.RenderPDF()
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty PDF output")
	}
	if !strings.HasPrefix(string(out[:5]), "%PDF-") {
		t.Errorf("output does not look like a PDF: %q", out[:5])
	}
}
