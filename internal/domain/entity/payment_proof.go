package entity

import (
	"time"

	"github.com/faturango/fatura-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentProof represents a payment-proof submission awaiting manual review.
// Submissions start pending and transition exactly once to approved or
// rejected.
type PaymentProof struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ClientName     string           `gorm:"size:255;not null" json:"client_name"`
	ClientEmail    *string          `gorm:"size:255" json:"client_email,omitempty"`
	InvoiceCode    string           `gorm:"size:100;not null;index" json:"invoice_code"`
	ProofReference string           `gorm:"size:500;not null" json:"proof_reference"`
	Status         enum.ProofStatus `gorm:"default:0;index" json:"status"`
	ReviewNote     *string          `gorm:"type:text" json:"review_note,omitempty"`
	ReviewedAt     *time.Time       `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment proof
func (p *PaymentProof) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentProof model
func (PaymentProof) TableName() string {
	return "payment_proofs"
}

// IsReviewed reports whether the proof has left the pending state.
func (p *PaymentProof) IsReviewed() bool {
	return p.Status != enum.ProofStatusPending
}
