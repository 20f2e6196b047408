package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/enum"
	"github.com/faturango/fatura-api/internal/domain/repository"
	"github.com/faturango/fatura-api/pkg/apperror"
	"github.com/faturango/fatura-api/pkg/pagination"
	"github.com/google/uuid"
)

type fakeProofRepo struct {
	proofs map[uuid.UUID]*entity.PaymentProof
}

func newFakeProofRepo() *fakeProofRepo {
	return &fakeProofRepo{proofs: make(map[uuid.UUID]*entity.PaymentProof)}
}

func (r *fakeProofRepo) Create(_ context.Context, proof *entity.PaymentProof) error {
	if proof.ID == uuid.Nil {
		proof.ID = uuid.New()
	}
	clone := *proof
	r.proofs[proof.ID] = &clone
	return nil
}

func (r *fakeProofRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PaymentProof, error) {
	proof, ok := r.proofs[id]
	if !ok {
		return nil, nil
	}
	clone := *proof
	return &clone, nil
}

func (r *fakeProofRepo) Update(_ context.Context, proof *entity.PaymentProof) error {
	if _, ok := r.proofs[proof.ID]; !ok {
		return errors.New("proof not found")
	}
	clone := *proof
	r.proofs[proof.ID] = &clone
	return nil
}

func (r *fakeProofRepo) List(_ context.Context, params *repository.ProofFilterParams) ([]entity.PaymentProof, int64, error) {
	var result []entity.PaymentProof
	for _, proof := range r.proofs {
		if params.Status != nil && proof.Status != *params.Status {
			continue
		}
		if params.Search != "" &&
			!strings.Contains(strings.ToLower(proof.ClientName), strings.ToLower(params.Search)) &&
			!strings.Contains(strings.ToLower(proof.InvoiceCode), strings.ToLower(params.Search)) {
			continue
		}
		result = append(result, *proof)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, int64(len(result)), nil
}

func newTestProofService() *ProofService {
	return NewProofService(newFakeProofRepo(), nil)
}

func submitTestProof(t *testing.T, svc *ProofService) *entity.PaymentProof {
	t.Helper()
	proof, err := svc.SubmitProof(context.Background(), &SubmitProofInput{
		ClientName:     "Cliente SA",
		InvoiceCode:    "FAT-2026-ABC123",
		ProofReference: "transferencia-445",
	})
	if err != nil {
		t.Fatalf("SubmitProof() error = %v", err)
	}
	return proof
}

func TestSubmitProofStartsPending(t *testing.T) {
	svc := newTestProofService()
	proof := submitTestProof(t, svc)

	if proof.Status != enum.ProofStatusPending {
		t.Errorf("status = %v, want Pending", proof.Status)
	}
	if proof.IsReviewed() {
		t.Error("a fresh submission must not count as reviewed")
	}
}

func TestSubmitProofValidation(t *testing.T) {
	svc := newTestProofService()

	tests := []struct {
		name  string
		input SubmitProofInput
	}{
		{"missing client name", SubmitProofInput{InvoiceCode: "FAT-1", ProofReference: "ref"}},
		{"missing invoice code", SubmitProofInput{ClientName: "Cliente", ProofReference: "ref"}},
		{"missing reference", SubmitProofInput{ClientName: "Cliente", InvoiceCode: "FAT-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.SubmitProof(context.Background(), &tt.input); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestApproveProof(t *testing.T) {
	svc := newTestProofService()
	proof := submitTestProof(t, svc)

	approved, err := svc.ApproveProof(context.Background(), proof.ID, nil)
	if err != nil {
		t.Fatalf("ApproveProof() error = %v", err)
	}

	if approved.Status != enum.ProofStatusApproved {
		t.Errorf("status = %v, want Approved", approved.Status)
	}
	if approved.ReviewedAt == nil {
		t.Error("ReviewedAt must be set on review")
	}
}

func TestRejectProofKeepsNote(t *testing.T) {
	svc := newTestProofService()
	proof := submitTestProof(t, svc)

	note := "Referência ilegível"
	rejected, err := svc.RejectProof(context.Background(), proof.ID, &note)
	if err != nil {
		t.Fatalf("RejectProof() error = %v", err)
	}

	if rejected.Status != enum.ProofStatusRejected {
		t.Errorf("status = %v, want Rejected", rejected.Status)
	}
	if rejected.ReviewNote == nil || *rejected.ReviewNote != note {
		t.Errorf("ReviewNote = %v, want %q", rejected.ReviewNote, note)
	}
}

func TestReviewIsFinal(t *testing.T) {
	svc := newTestProofService()
	proof := submitTestProof(t, svc)

	if _, err := svc.ApproveProof(context.Background(), proof.ID, nil); err != nil {
		t.Fatalf("first review error = %v", err)
	}

	_, err := svc.RejectProof(context.Background(), proof.ID, nil)
	if !errors.Is(err, apperror.ErrProofReviewed) {
		t.Errorf("second review error = %v, want ErrProofReviewed", err)
	}
	_, err = svc.ApproveProof(context.Background(), proof.ID, nil)
	if !errors.Is(err, apperror.ErrProofReviewed) {
		t.Errorf("repeated approval error = %v, want ErrProofReviewed", err)
	}
}

func TestSubscribeFiresOnReview(t *testing.T) {
	svc := newTestProofService()
	proof := submitTestProof(t, svc)

	var got *entity.PaymentProof
	svc.Subscribe(proof.ID, func(p *entity.PaymentProof) { got = p })

	if _, err := svc.ApproveProof(context.Background(), proof.ID, nil); err != nil {
		t.Fatalf("ApproveProof() error = %v", err)
	}

	if got == nil {
		t.Fatal("subscriber callback was not fired")
	}
	if got.Status != enum.ProofStatusApproved {
		t.Errorf("callback status = %v, want Approved", got.Status)
	}

	// A second review attempt fails and must not fire callbacks again
	got = nil
	svc.RejectProof(context.Background(), proof.ID, nil)
	if got != nil {
		t.Error("callback fired for a rejected transition attempt")
	}
}

func TestListProofsFilters(t *testing.T) {
	svc := newTestProofService()
	first := submitTestProof(t, svc)
	svc.SubmitProof(context.Background(), &SubmitProofInput{
		ClientName:     "Outra Empresa",
		InvoiceCode:    "FAT-2026-XYZ789",
		ProofReference: "deposito-9",
	})
	svc.ApproveProof(context.Background(), first.ID, nil)

	pending := enum.ProofStatusPending
	result, err := svc.ListProofs(context.Background(), &ListProofsInput{
		Pagination: pagination.DefaultPagination(),
		Status:     &pending,
	})
	if err != nil {
		t.Fatalf("ListProofs() error = %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("got %d pending proofs, want 1", len(result.Items))
	}
	if result.Items[0].ClientName != "Outra Empresa" {
		t.Errorf("pending proof = %q", result.Items[0].ClientName)
	}

	result, err = svc.ListProofs(context.Background(), &ListProofsInput{
		Pagination: pagination.DefaultPagination(),
		Search:     "xyz",
	})
	if err != nil {
		t.Fatalf("ListProofs() search error = %v", err)
	}
	if len(result.Items) != 1 {
		t.Errorf("got %d search matches, want 1", len(result.Items))
	}
}
