package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/enum"
	"github.com/faturango/fatura-api/internal/domain/repository"
	"github.com/faturango/fatura-api/pkg/apperror"
	"github.com/faturango/fatura-api/pkg/logo"
	"github.com/faturango/fatura-api/pkg/utils"
	"github.com/google/uuid"
)

// DefaultPaymentMethod is preset on every fresh draft.
const DefaultPaymentMethod = "Transferência Bancária"

// InvoiceService handles the invoice draft lifecycle
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	itemRepo     repository.InvoiceItemRepository
	numberPrefix string
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	numberPrefix string,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		itemRepo:     itemRepo,
		numberPrefix: numberPrefix,
	}
}

// CreateDraft creates a fresh invoice draft with preset defaults: a generated
// invoice number, today's issue date, bank transfer payment and the classic
// template.
func (s *InvoiceService) CreateDraft(ctx context.Context) (*entity.Invoice, error) {
	invoice := &entity.Invoice{
		Number:        utils.GenerateInvoiceNo(s.numberPrefix),
		IssueDate:     time.Now(),
		PaymentMethod: DefaultPaymentMethod,
		Template:      enum.TemplateClassic,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetInvoice retrieves an invoice with its items ordered by position
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// UpdateDetailsInput carries the editable header fields of a draft. Nil
// pointers leave the corresponding field untouched, so callers can update one
// wizard step at a time.
type UpdateDetailsInput struct {
	CompanyName    *string
	CompanyAddress *string
	CompanyPhone   *string
	CompanyEmail   *string
	CompanyTaxID   *string

	ClientName    *string
	ClientAddress *string
	ClientPhone   *string
	ClientEmail   *string
	ClientTaxID   *string

	Number    *string
	IssueDate *time.Time
	DueDate   *time.Time

	PaymentMethod *string
	BankDetails   *string
	Observations  *string
}

// UpdateDetails applies a partial update to the invoice header fields
func (s *InvoiceService) UpdateDetails(ctx context.Context, id uuid.UUID, input *UpdateDetailsInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.CompanyName != nil {
		invoice.CompanyName = *input.CompanyName
	}
	if input.CompanyAddress != nil {
		invoice.CompanyAddress = *input.CompanyAddress
	}
	if input.CompanyPhone != nil {
		invoice.CompanyPhone = *input.CompanyPhone
	}
	if input.CompanyEmail != nil {
		invoice.CompanyEmail = *input.CompanyEmail
	}
	if input.CompanyTaxID != nil {
		invoice.CompanyTaxID = input.CompanyTaxID
	}
	if input.ClientName != nil {
		invoice.ClientName = *input.ClientName
	}
	if input.ClientAddress != nil {
		invoice.ClientAddress = *input.ClientAddress
	}
	if input.ClientPhone != nil {
		invoice.ClientPhone = input.ClientPhone
	}
	if input.ClientEmail != nil {
		invoice.ClientEmail = input.ClientEmail
	}
	if input.ClientTaxID != nil {
		invoice.ClientTaxID = input.ClientTaxID
	}
	if input.Number != nil && strings.TrimSpace(*input.Number) != "" {
		invoice.Number = strings.TrimSpace(*input.Number)
	}
	if input.IssueDate != nil {
		invoice.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		invoice.DueDate = input.DueDate
	}
	if input.PaymentMethod != nil {
		invoice.PaymentMethod = *input.PaymentMethod
	}
	if input.BankDetails != nil {
		invoice.BankDetails = input.BankDetails
	}
	if input.Observations != nil {
		invoice.Observations = input.Observations
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, id)
}

// SetLogo decodes an uploaded company logo, normalizes it to a PNG data URL
// and stores it on the invoice. declaredSize guards the upload limit before
// the body is read.
func (s *InvoiceService) SetLogo(ctx context.Context, id uuid.UUID, r io.Reader, declaredSize int64) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	dataURL, err := logo.DataURL(r, declaredSize)
	if err == logo.ErrTooLarge {
		return nil, apperror.NewBadRequestError("Logo image exceeds the 2MB upload limit")
	}
	if err == logo.ErrUndecodable {
		return nil, apperror.NewBadRequestError("Logo file is not a readable image")
	}
	if err != nil {
		return nil, err
	}

	invoice.CompanyLogo = &dataURL
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, id)
}

// RemoveLogo clears the company logo
func (s *InvoiceService) RemoveLogo(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	invoice.CompanyLogo = nil
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, id)
}

// ItemInput represents a line item input. The line total is always derived
// from quantity and unit price, never taken from the caller.
type ItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

func (in *ItemInput) validate() []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(in.Description) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "description", Message: "Description is required"})
	}
	if in.Quantity <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "Quantity must be greater than zero"})
	}
	if in.UnitPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "unit_price", Message: "Unit price cannot be negative"})
	}
	return fieldErrors
}

// AddItem appends a line item at the end of the invoice
func (s *InvoiceService) AddItem(ctx context.Context, invoiceID uuid.UUID, input *ItemInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if fieldErrors := input.validate(); fieldErrors != nil {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	maxPos, err := s.itemRepo.MaxPosition(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	item := &entity.InvoiceItem{
		InvoiceID:   invoiceID,
		Position:    maxPos + 1,
		Description: strings.TrimSpace(input.Description),
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
	}
	item.Recalculate()

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, invoiceID)
}

// UpdateItem edits a line item in place. The item keeps its position so page
// assignment is stable across edits.
func (s *InvoiceService) UpdateItem(ctx context.Context, invoiceID, itemID uuid.UUID, input *ItemInput) (*entity.Invoice, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.InvoiceID != invoiceID {
		return nil, apperror.NewNotFoundError("Invoice item")
	}

	if fieldErrors := input.validate(); fieldErrors != nil {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	item.Description = strings.TrimSpace(input.Description)
	item.Quantity = input.Quantity
	item.UnitPrice = input.UnitPrice
	item.Recalculate()

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, invoiceID)
}

// RemoveItem deletes a line item and closes the position gap so later items
// shift back one slot.
func (s *InvoiceService) RemoveItem(ctx context.Context, invoiceID, itemID uuid.UUID) (*entity.Invoice, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.InvoiceID != invoiceID {
		return nil, apperror.NewNotFoundError("Invoice item")
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return nil, err
	}

	// Re-number the remaining items to keep positions contiguous
	items, err := s.itemRepo.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Position != i+1 {
			items[i].Position = i + 1
			if err := s.itemRepo.Update(ctx, &items[i]); err != nil {
				return nil, err
			}
		}
	}

	return s.invoiceRepo.GetWithItems(ctx, invoiceID)
}

// SelectTemplate switches the invoice to another template variant
func (s *InvoiceService) SelectTemplate(ctx context.Context, id uuid.UUID, variant enum.TemplateVariant) (*entity.Invoice, error) {
	if !variant.Valid() {
		return nil, apperror.NewBadRequestError("Unknown template variant: " + variant.String())
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	invoice.Template = variant
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, id)
}

// Reset wipes the draft back to its initial state: all items removed, header
// fields cleared and a fresh invoice number generated. The invoice ID is kept
// so the caller's reference stays valid.
func (s *InvoiceService) Reset(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if err := s.itemRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return nil, err
	}

	*invoice = entity.Invoice{
		ID:            invoice.ID,
		CreatedAt:     invoice.CreatedAt,
		Number:        utils.GenerateInvoiceNo(s.numberPrefix),
		IssueDate:     time.Now(),
		PaymentMethod: DefaultPaymentMethod,
		Template:      enum.TemplateClassic,
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, id)
}

// Validate checks whether the draft is complete enough to be rendered as a
// final document. It returns a validation error listing every missing field.
func (s *InvoiceService) Validate(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(invoice.CompanyName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "company_name", Message: "Company name is required"})
	}
	if strings.TrimSpace(invoice.ClientName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "client_name", Message: "Client name is required"})
	}
	if strings.TrimSpace(invoice.Number) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "number", Message: "Invoice number is required"})
	}
	if len(invoice.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "At least one line item is required"})
	}
	if fieldErrors != nil {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	return invoice, nil
}

// DeleteInvoice deletes a draft and its items
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	if err := s.itemRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, id)
}
