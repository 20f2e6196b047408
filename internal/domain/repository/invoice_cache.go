package repository

import (
	"context"
	"errors"
	"time"

	"github.com/faturango/fatura-api/internal/domain/entity"
)

// Cache lookup failures. A missing code and a lapsed one are reported
// separately so the caller can tell the user which happened.
var (
	ErrCodeNotFound = errors.New("invoice code not found")
	ErrCodeExpired  = errors.New("invoice code expired")
	ErrCacheCorrupt = errors.New("cached invoice record is corrupted")
)

// InvoiceCache stores serialized invoices under a human-entered code for the
// "retrieve my invoice later" flow. Records expire after the given TTL.
type InvoiceCache interface {
	Save(ctx context.Context, code string, invoice *entity.Invoice, ttl time.Duration) error
	Load(ctx context.Context, code string) (*entity.Invoice, error)
	Delete(ctx context.Context, code string) error
}
