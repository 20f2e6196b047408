package repository

import (
	"context"

	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice draft data operations.
// Items are always returned ordered by position.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceItemRepository defines the interface for invoice line item operations
type InvoiceItemRepository interface {
	Create(ctx context.Context, item *entity.InvoiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceItem, error)
	GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error)
	Update(ctx context.Context, item *entity.InvoiceItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error
	MaxPosition(ctx context.Context, invoiceID uuid.UUID) (int, error)
}
