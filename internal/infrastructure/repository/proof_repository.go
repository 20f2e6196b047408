package repository

import (
	"context"
	"errors"

	"github.com/faturango/fatura-api/internal/domain/entity"
	domainRepo "github.com/faturango/fatura-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type proofRepository struct {
	db *gorm.DB
}

// NewProofRepository creates a new payment proof repository
func NewProofRepository(db *gorm.DB) domainRepo.ProofRepository {
	return &proofRepository{db: db}
}

func (r *proofRepository) Create(ctx context.Context, proof *entity.PaymentProof) error {
	return r.db.WithContext(ctx).Create(proof).Error
}

func (r *proofRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentProof, error) {
	var proof entity.PaymentProof
	err := r.db.WithContext(ctx).First(&proof, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &proof, err
}

func (r *proofRepository) Update(ctx context.Context, proof *entity.PaymentProof) error {
	return r.db.WithContext(ctx).Save(proof).Error
}

func (r *proofRepository) List(ctx context.Context, params *domainRepo.ProofFilterParams) ([]entity.PaymentProof, int64, error) {
	var proofs []entity.PaymentProof
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PaymentProof{})

	if params.Search != "" {
		query = query.Where("client_name ILIKE ? OR invoice_code ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&proofs).Error
	return proofs, total, err
}
