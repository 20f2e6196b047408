package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/enum"
	"github.com/faturango/fatura-api/internal/domain/repository"
	"github.com/faturango/fatura-api/pkg/apperror"
	"github.com/faturango/fatura-api/pkg/email"
	"github.com/faturango/fatura-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProofCallback receives a payment proof after its status changed
type ProofCallback func(proof *entity.PaymentProof)

// ProofService handles the payment proof approval workflow. Submissions start
// pending and transition exactly once to approved or rejected; review is an
// admin action.
type ProofService struct {
	proofRepo    repository.ProofRepository
	emailService *email.EmailService // nil disables notification emails

	mu          sync.Mutex
	subscribers map[uuid.UUID][]ProofCallback
}

// NewProofService creates a new proof service
func NewProofService(proofRepo repository.ProofRepository, emailService *email.EmailService) *ProofService {
	return &ProofService{
		proofRepo:    proofRepo,
		emailService: emailService,
		subscribers:  make(map[uuid.UUID][]ProofCallback),
	}
}

// SubmitProofInput represents a client's payment proof submission
type SubmitProofInput struct {
	ClientName     string
	ClientEmail    *string
	InvoiceCode    string
	ProofReference string
}

// SubmitProof records a new payment proof in the pending state
func (s *ProofService) SubmitProof(ctx context.Context, input *SubmitProofInput) (*entity.PaymentProof, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.ClientName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "client_name", Message: "Client name is required"})
	}
	if strings.TrimSpace(input.InvoiceCode) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "invoice_code", Message: "Invoice code is required"})
	}
	if strings.TrimSpace(input.ProofReference) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "proof_reference", Message: "Proof reference is required"})
	}
	if fieldErrors != nil {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	proof := &entity.PaymentProof{
		ClientName:     strings.TrimSpace(input.ClientName),
		ClientEmail:    input.ClientEmail,
		InvoiceCode:    strings.TrimSpace(input.InvoiceCode),
		ProofReference: strings.TrimSpace(input.ProofReference),
		Status:         enum.ProofStatusPending,
	}
	if err := s.proofRepo.Create(ctx, proof); err != nil {
		return nil, err
	}
	return proof, nil
}

// GetProof retrieves a payment proof by ID
func (s *ProofService) GetProof(ctx context.Context, id uuid.UUID) (*entity.PaymentProof, error) {
	proof, err := s.proofRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proof == nil {
		return nil, apperror.NewNotFoundError("Payment proof")
	}
	return proof, nil
}

// ListProofsInput represents the input for listing payment proofs
type ListProofsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ProofStatus
}

// ListProofs lists payment proofs with filtering, newest first
func (s *ProofService) ListProofs(ctx context.Context, input *ListProofsInput) (*pagination.PaginatedResult[entity.PaymentProof], error) {
	params := &repository.ProofFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
	}

	proofs, total, err := s.proofRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(proofs, pag), nil
}

// ApproveProof transitions a pending proof to approved
func (s *ProofService) ApproveProof(ctx context.Context, id uuid.UUID, note *string) (*entity.PaymentProof, error) {
	return s.review(ctx, id, enum.ProofStatusApproved, note)
}

// RejectProof transitions a pending proof to rejected
func (s *ProofService) RejectProof(ctx context.Context, id uuid.UUID, note *string) (*entity.PaymentProof, error) {
	return s.review(ctx, id, enum.ProofStatusRejected, note)
}

func (s *ProofService) review(ctx context.Context, id uuid.UUID, status enum.ProofStatus, note *string) (*entity.PaymentProof, error) {
	proof, err := s.proofRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proof == nil {
		return nil, apperror.NewNotFoundError("Payment proof")
	}
	if proof.IsReviewed() {
		return nil, apperror.ErrProofReviewed
	}

	now := time.Now()
	proof.Status = status
	proof.ReviewNote = note
	proof.ReviewedAt = &now

	if err := s.proofRepo.Update(ctx, proof); err != nil {
		return nil, err
	}

	s.notify(proof)
	s.sendReviewEmail(proof)
	return proof, nil
}

// Subscribe registers a callback fired when the given proof leaves the pending
// state. Used by the status endpoint's polling replacement and by tests.
func (s *ProofService) Subscribe(id uuid.UUID, cb ProofCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[id] = append(s.subscribers[id], cb)
}

func (s *ProofService) notify(proof *entity.PaymentProof) {
	s.mu.Lock()
	callbacks := s.subscribers[proof.ID]
	delete(s.subscribers, proof.ID)
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb(proof)
	}
}

// sendReviewEmail emails the client about the review outcome. Failures are
// logged, never surfaced: the review itself already succeeded.
func (s *ProofService) sendReviewEmail(proof *entity.PaymentProof) {
	if s.emailService == nil || proof.ClientEmail == nil {
		return
	}

	var err error
	switch proof.Status {
	case enum.ProofStatusApproved:
		err = s.emailService.SendProofApprovedEmail(*proof.ClientEmail, proof.ClientName, proof.InvoiceCode)
	case enum.ProofStatusRejected:
		var reason string
		if proof.ReviewNote != nil {
			reason = *proof.ReviewNote
		}
		err = s.emailService.SendProofRejectedEmail(*proof.ClientEmail, proof.ClientName, proof.InvoiceCode, reason)
	}
	if err != nil {
		log.Printf("Warning: failed to send proof review email for %s: %v", proof.ID, err)
	}
}
