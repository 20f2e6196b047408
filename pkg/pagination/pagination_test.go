package pagination

import (
	"testing"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginator_PageCount(t *testing.T) {
	tests := []struct {
		name       string
		itemCount  int
		perPage    int
		wantPages  int
		wantSizes  []int
	}{
		{name: "empty sequence", itemCount: 0, perPage: 12, wantPages: 0},
		{name: "single partial page", itemCount: 10, perPage: 12, wantPages: 1, wantSizes: []int{10}},
		{name: "exact single page", itemCount: 12, perPage: 12, wantPages: 1, wantSizes: []int{12}},
		{name: "one over a boundary", itemCount: 13, perPage: 12, wantPages: 2, wantSizes: []int{12, 1}},
		{name: "classic 25 items", itemCount: 25, perPage: 12, wantPages: 3, wantSizes: []int{12, 12, 1}},
		{name: "modern capacity", itemCount: 25, perPage: 10, wantPages: 3, wantSizes: []int{10, 10, 5}},
		{name: "minimal capacity", itemCount: 25, perPage: 15, wantPages: 2, wantSizes: []int{15, 10}},
		{name: "exact multiple", itemCount: 30, perPage: 10, wantPages: 3, wantSizes: []int{10, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginator(seq(tt.itemCount), tt.perPage)

			if got := p.TotalPages(); got != tt.wantPages {
				t.Fatalf("TotalPages() = %d, want %d", got, tt.wantPages)
			}
			pages := p.Pages()
			if len(pages) != len(tt.wantSizes) {
				t.Fatalf("len(Pages()) = %d, want %d", len(pages), len(tt.wantSizes))
			}
			for i, want := range tt.wantSizes {
				if len(pages[i]) != want {
					t.Errorf("page %d size = %d, want %d", i+1, len(pages[i]), want)
				}
			}
		})
	}
}

func TestPaginator_RoundTrip(t *testing.T) {
	// Concatenating all pages in order must reconstruct the source exactly.
	for _, n := range []int{0, 1, 9, 10, 11, 25, 120} {
		for _, perPage := range []int{10, 12, 15} {
			items := seq(n)
			p := NewPaginator(items, perPage)

			var got []int
			for _, page := range p.Pages() {
				got = append(got, page...)
			}
			if len(got) != len(items) {
				t.Fatalf("n=%d perPage=%d: reassembled %d items, want %d", n, perPage, len(got), len(items))
			}
			for i := range items {
				if got[i] != items[i] {
					t.Fatalf("n=%d perPage=%d: item %d = %d, want %d", n, perPage, i, got[i], items[i])
				}
			}
		}
	}
}

func TestPaginator_Navigation(t *testing.T) {
	p := NewPaginator(seq(25), 12) // 3 pages: 12, 12, 1

	if !p.IsFirstPage() || p.CurrentPage() != 1 {
		t.Fatalf("new paginator should start on page 1, got %d", p.CurrentPage())
	}
	if !p.HasMultiplePages() {
		t.Fatal("25 items at capacity 12 should span multiple pages")
	}

	// prev on the first page is a no-op
	p.PrevPage()
	if p.CurrentPage() != 1 {
		t.Fatalf("PrevPage on page 1 moved to %d", p.CurrentPage())
	}

	p.NextPage()
	p.NextPage()
	if !p.IsLastPage() || p.CurrentPage() != 3 {
		t.Fatalf("expected page 3, got %d", p.CurrentPage())
	}
	if got := len(p.CurrentPageItems()); got != 1 {
		t.Fatalf("last page size = %d, want 1", got)
	}

	// next on the last page is a no-op
	p.NextPage()
	if p.CurrentPage() != 3 {
		t.Fatalf("NextPage on last page moved to %d", p.CurrentPage())
	}

	p.PrevPage()
	if p.CurrentPage() != 2 {
		t.Fatalf("PrevPage from page 3 gave %d", p.CurrentPage())
	}
	if got := p.CurrentPageItems(); len(got) != 12 || got[0] != 13 {
		t.Fatalf("page 2 should hold items 13..24, got len=%d first=%v", len(got), got)
	}
}

func TestPaginator_GoToPage(t *testing.T) {
	p := NewPaginator(seq(25), 12)
	p.GoToPage(2)
	if p.CurrentPage() != 2 {
		t.Fatalf("GoToPage(2) gave %d", p.CurrentPage())
	}

	// out-of-range requests are silent no-ops
	p.GoToPage(0)
	if p.CurrentPage() != 2 {
		t.Fatalf("GoToPage(0) moved to %d", p.CurrentPage())
	}
	p.GoToPage(p.TotalPages() + 1)
	if p.CurrentPage() != 2 {
		t.Fatalf("GoToPage(totalPages+1) moved to %d", p.CurrentPage())
	}
}

func TestPaginator_EmptySequence(t *testing.T) {
	p := NewPaginator([]int(nil), 12)

	if p.TotalPages() != 0 {
		t.Fatalf("TotalPages() = %d, want 0", p.TotalPages())
	}
	if p.CurrentPage() != 0 {
		t.Fatalf("CurrentPage() = %d, want 0 (no page selected)", p.CurrentPage())
	}
	if got := p.CurrentPageItems(); len(got) != 0 {
		t.Fatalf("CurrentPageItems() on empty paginator returned %d items", len(got))
	}
	if p.HasMultiplePages() || p.IsLastPage() {
		t.Fatal("empty paginator must not report pages")
	}

	// navigation on zero pages stays put
	p.NextPage()
	p.PrevPage()
	p.GoToPage(1)
	if p.CurrentPage() != 0 {
		t.Fatalf("navigation on empty paginator moved to %d", p.CurrentPage())
	}
}

func TestPaginator_Repage(t *testing.T) {
	p := NewPaginator(seq(25), 12)
	p.GoToPage(3)

	// shrinking the sequence invalidates page 3 -> reset to 1
	p.Repage(seq(10), 12)
	if p.TotalPages() != 1 {
		t.Fatalf("TotalPages() = %d, want 1", p.TotalPages())
	}
	if p.CurrentPage() != 1 {
		t.Fatalf("CurrentPage() after shrink = %d, want 1", p.CurrentPage())
	}

	// growing keeps a still-valid selection
	p.Repage(seq(30), 12)
	p.GoToPage(2)
	p.Repage(seq(40), 12)
	if p.CurrentPage() != 2 {
		t.Fatalf("CurrentPage() after grow = %d, want 2", p.CurrentPage())
	}

	// changing capacity re-partitions
	p.Repage(seq(40), 15)
	if p.TotalPages() != 3 {
		t.Fatalf("TotalPages() at capacity 15 = %d, want 3", p.TotalPages())
	}
}
