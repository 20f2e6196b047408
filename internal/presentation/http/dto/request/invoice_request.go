package request

// UpdateInvoiceDetailsRequest carries a partial update of the invoice header.
// Absent fields are left untouched so each wizard step can submit only what it
// edits.
type UpdateInvoiceDetailsRequest struct {
	CompanyName    *string `json:"company_name"`
	CompanyAddress *string `json:"company_address"`
	CompanyPhone   *string `json:"company_phone"`
	CompanyEmail   *string `json:"company_email" binding:"omitempty,email"`
	CompanyTaxID   *string `json:"company_tax_id"`

	ClientName    *string `json:"client_name"`
	ClientAddress *string `json:"client_address"`
	ClientPhone   *string `json:"client_phone"`
	ClientEmail   *string `json:"client_email" binding:"omitempty,email"`
	ClientTaxID   *string `json:"client_tax_id"`

	Number    *string `json:"number"`
	IssueDate *string `json:"issue_date"` // "2006-01-02"
	DueDate   *string `json:"due_date"`

	PaymentMethod *string `json:"payment_method"`
	BankDetails   *string `json:"bank_details"`
	Observations  *string `json:"observations"`
}

// InvoiceItemRequest represents a line item in the request
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

// SelectTemplateRequest selects one of the template variants
type SelectTemplateRequest struct {
	Template string `json:"template" binding:"required"`
}

// RetrieveInvoiceRequest looks up an archived invoice by its code
type RetrieveInvoiceRequest struct {
	Code string `json:"code" binding:"required"`
}
