package service

import (
	"context"

	"github.com/faturango/fatura-api/internal/domain/repository"
	"github.com/faturango/fatura-api/pkg/apperror"
	"github.com/faturango/fatura-api/pkg/render"
	"github.com/google/uuid"
)

// RenderService produces the interactive preview, the print view and the PDF
// export for an invoice draft.
type RenderService struct {
	invoiceRepo repository.InvoiceRepository
	renderer    *render.Renderer
}

// NewRenderService creates a new render service
func NewRenderService(invoiceRepo repository.InvoiceRepository, renderer *render.Renderer) *RenderService {
	return &RenderService{
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
	}
}

func (s *RenderService) preview(ctx context.Context, id uuid.UUID) (*render.Preview, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return render.NewPreview(s.renderer, invoice), nil
}

// PageView is one rendered page of the interactive preview together with the
// navigation state derived from the same partition.
type PageView struct {
	HTML     string          `json:"html"`
	Controls render.Controls `json:"controls"`
}

// RenderPage renders page n of the invoice's interactive view. Out-of-range
// page numbers keep the default selection instead of failing.
func (s *RenderService) RenderPage(ctx context.Context, id uuid.UUID, page int) (*PageView, error) {
	preview, err := s.preview(ctx, id)
	if err != nil {
		return nil, err
	}

	html, err := preview.RenderPage(page)
	if err != nil {
		return nil, err
	}
	return &PageView{HTML: html, Controls: preview.Controls()}, nil
}

// RenderPrint renders the full document as concatenated pages with explicit
// page-break markers.
func (s *RenderService) RenderPrint(ctx context.Context, id uuid.UUID) (string, error) {
	preview, err := s.preview(ctx, id)
	if err != nil {
		return "", err
	}
	return preview.RenderPrint()
}

// RenderPDF renders the full document as a multi-page PDF
func (s *RenderService) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	preview, err := s.preview(ctx, id)
	if err != nil {
		return nil, err
	}
	return preview.RenderPDF()
}
