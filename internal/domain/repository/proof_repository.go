package repository

import (
	"context"

	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/enum"
	"github.com/faturango/fatura-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProofRepository defines the interface for payment proof data operations
type ProofRepository interface {
	Create(ctx context.Context, proof *entity.PaymentProof) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentProof, error)
	Update(ctx context.Context, proof *entity.PaymentProof) error
	List(ctx context.Context, params *ProofFilterParams) ([]entity.PaymentProof, int64, error)
}

// ProofFilterParams contains filtering parameters for proof queries
type ProofFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ProofStatus
}
