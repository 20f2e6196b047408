package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/repository"
	"github.com/faturango/fatura-api/pkg/apperror"
)

// fakeInvoiceCache simulates the redis cache including the expired-vs-missing
// distinction.
type fakeInvoiceCache struct {
	entries map[string]fakeCacheEntry
}

type fakeCacheEntry struct {
	invoice   *entity.Invoice
	expiresAt time.Time
}

func newFakeInvoiceCache() *fakeInvoiceCache {
	return &fakeInvoiceCache{entries: make(map[string]fakeCacheEntry)}
}

func (c *fakeInvoiceCache) Save(_ context.Context, code string, invoice *entity.Invoice, ttl time.Duration) error {
	clone := *invoice
	c.entries[code] = fakeCacheEntry{invoice: &clone, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (c *fakeInvoiceCache) Load(_ context.Context, code string) (*entity.Invoice, error) {
	entry, ok := c.entries[code]
	if !ok {
		return nil, repository.ErrCodeNotFound
	}
	if time.Now().After(entry.expiresAt) {
		return nil, repository.ErrCodeExpired
	}
	clone := *entry.invoice
	return &clone, nil
}

func (c *fakeInvoiceCache) Delete(_ context.Context, code string) error {
	delete(c.entries, code)
	return nil
}

func newTestArchiveService(cache repository.InvoiceCache) (*ArchiveService, *InvoiceService) {
	items := newFakeItemRepo()
	invoices := newFakeInvoiceRepo(items)
	return NewArchiveService(cache, invoices, items, 30*24*time.Hour),
		NewInvoiceService(invoices, items, "FAT")
}

func TestArchiveRoundTrip(t *testing.T) {
	cache := newFakeInvoiceCache()
	archive, invoiceSvc := newTestArchiveService(cache)
	ctx := context.Background()

	invoice, _ := invoiceSvc.CreateDraft(ctx)
	invoiceSvc.UpdateDetails(ctx, invoice.ID, &UpdateDetailsInput{
		CompanyName: strPtr("Empresa Lda"),
		ClientName:  strPtr("Cliente SA"),
	})
	invoiceSvc.AddItem(ctx, invoice.ID, &ItemInput{Description: "Serviço", Quantity: 2, UnitPrice: 150})

	code, err := archive.Archive(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if len(code) != retrievalCodeLength {
		t.Errorf("code length = %d, want %d", len(code), retrievalCodeLength)
	}

	restored, err := archive.Retrieve(ctx, code)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}

	if restored.ID == invoice.ID {
		t.Error("restored invoice must get a fresh ID")
	}
	if restored.CompanyName != "Empresa Lda" || restored.ClientName != "Cliente SA" {
		t.Errorf("restored header = %q / %q", restored.CompanyName, restored.ClientName)
	}
	if len(restored.Items) != 1 {
		t.Fatalf("restored %d items, want 1", len(restored.Items))
	}
	if restored.Items[0].Total != 300 {
		t.Errorf("restored item total = %v, want 300", restored.Items[0].Total)
	}
}

func TestRetrieveNormalizesCode(t *testing.T) {
	cache := newFakeInvoiceCache()
	archive, invoiceSvc := newTestArchiveService(cache)
	ctx := context.Background()

	invoice, _ := invoiceSvc.CreateDraft(ctx)
	code, _ := archive.Archive(ctx, invoice.ID)

	// Lowercase with a stray separator must still resolve
	messy := " " + strings.ToLower(code[:4]) + "-" + code[4:] + " "
	if _, err := archive.Retrieve(ctx, messy); err != nil {
		t.Errorf("Retrieve(%q) error = %v", messy, err)
	}
}

func TestRetrieveUnknownCode(t *testing.T) {
	archive, _ := newTestArchiveService(newFakeInvoiceCache())

	_, err := archive.Retrieve(context.Background(), "NOSUCH99")
	if err == nil {
		t.Fatal("expected an error for an unknown code")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("status = %d, want 404", apperror.GetAppError(err).Code)
	}
}

func TestRetrieveExpiredCode(t *testing.T) {
	cache := newFakeInvoiceCache()
	archive, invoiceSvc := newTestArchiveService(cache)
	ctx := context.Background()

	invoice, _ := invoiceSvc.CreateDraft(ctx)
	code, _ := archive.Archive(ctx, invoice.ID)

	// Force the entry past its expiry
	entry := cache.entries[code]
	entry.expiresAt = time.Now().Add(-time.Minute)
	cache.entries[code] = entry

	_, err := archive.Retrieve(ctx, code)
	if err == nil {
		t.Fatal("expected an error for an expired code")
	}
	if apperror.GetAppError(err).Code != 410 {
		t.Errorf("status = %d, want 410 for an expired code", apperror.GetAppError(err).Code)
	}
}
