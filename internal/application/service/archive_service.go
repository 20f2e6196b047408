package service

import (
	"context"
	"time"

	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/repository"
	"github.com/faturango/fatura-api/pkg/apperror"
	"github.com/faturango/fatura-api/pkg/utils"
	"github.com/google/uuid"
)

const retrievalCodeLength = 8

// ArchiveService stores finished invoices under a short retrieval code so a
// user can come back for them later without an account. Archived invoices
// expire after the configured TTL.
type ArchiveService struct {
	cache       repository.InvoiceCache
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.InvoiceItemRepository
	ttl         time.Duration
}

// NewArchiveService creates a new archive service
func NewArchiveService(
	cache repository.InvoiceCache,
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	ttl time.Duration,
) *ArchiveService {
	return &ArchiveService{
		cache:       cache,
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
		ttl:         ttl,
	}
}

// Archive stores a snapshot of the invoice and returns the retrieval code the
// user must keep to get it back.
func (s *ArchiveService) Archive(ctx context.Context, invoiceID uuid.UUID) (string, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, invoiceID)
	if err != nil {
		return "", err
	}
	if invoice == nil {
		return "", apperror.NewNotFoundError("Invoice")
	}

	code := utils.GenerateRetrievalCode(retrievalCodeLength)
	if err := s.cache.Save(ctx, code, invoice, s.ttl); err != nil {
		return "", apperror.NewUnavailableError("Failed to archive the invoice, please try again")
	}
	return code, nil
}

// Retrieve loads an archived invoice by its code and restores it as a fresh
// draft with new identifiers. Expired and unknown codes produce distinct
// errors so the user knows whether the code lapsed or was mistyped.
func (s *ArchiveService) Retrieve(ctx context.Context, code string) (*entity.Invoice, error) {
	code = utils.NormalizeRetrievalCode(code)

	cached, err := s.cache.Load(ctx, code)
	switch err {
	case nil:
	case repository.ErrCodeNotFound:
		return nil, apperror.NewNotFoundError("Invoice code")
	case repository.ErrCodeExpired:
		return nil, apperror.NewAppError(410, "Invoice code has expired")
	case repository.ErrCacheCorrupt:
		return nil, apperror.NewUnavailableError("Archived invoice could not be read")
	default:
		return nil, apperror.NewUnavailableError("Failed to look up the invoice code")
	}

	// Restore as a new draft so the user can keep editing
	restored := *cached
	restored.ID = uuid.Nil
	restored.Items = nil
	restored.CreatedAt = time.Time{}
	restored.UpdatedAt = time.Time{}

	if err := s.invoiceRepo.Create(ctx, &restored); err != nil {
		return nil, err
	}

	for i, item := range cached.Items {
		newItem := entity.InvoiceItem{
			InvoiceID:   restored.ID,
			Position:    i + 1,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
		newItem.Recalculate()
		if err := s.itemRepo.Create(ctx, &newItem); err != nil {
			return nil, err
		}
	}

	return s.invoiceRepo.GetWithItems(ctx, restored.ID)
}

// Discard removes an archived invoice before its TTL lapses
func (s *ArchiveService) Discard(ctx context.Context, code string) error {
	return s.cache.Delete(ctx, utils.NormalizeRetrievalCode(code))
}
