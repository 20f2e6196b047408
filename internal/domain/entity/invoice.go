package entity

import (
	"time"

	"github.com/faturango/fatura-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice represents an in-progress invoice being assembled step by step.
// It is created empty at wizard start, mutated field-by-field, and reset to a
// fresh draft when the user starts over.
type Invoice struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	// Company (issuer)
	CompanyName    string  `gorm:"size:255" json:"company_name"`
	CompanyAddress string  `gorm:"size:500" json:"company_address"`
	CompanyPhone   string  `gorm:"size:50" json:"company_phone"`
	CompanyEmail   string  `gorm:"size:255" json:"company_email"`
	CompanyTaxID   *string `gorm:"size:100" json:"company_tax_id,omitempty"`
	CompanyLogo    *string `gorm:"type:text" json:"company_logo,omitempty"` // data URL

	// Client (recipient)
	ClientName    string  `gorm:"size:255" json:"client_name"`
	ClientAddress string  `gorm:"size:500" json:"client_address"`
	ClientPhone   *string `gorm:"size:50" json:"client_phone,omitempty"`
	ClientEmail   *string `gorm:"size:255" json:"client_email,omitempty"`
	ClientTaxID   *string `gorm:"size:100" json:"client_tax_id,omitempty"`

	// Metadata
	Number    string     `gorm:"size:100;index" json:"number"`
	IssueDate time.Time  `gorm:"type:date" json:"issue_date"`
	DueDate   *time.Time `gorm:"type:date" json:"due_date,omitempty"`

	// Payment
	PaymentMethod string  `gorm:"size:100" json:"payment_method"`
	BankDetails   *string `gorm:"type:text" json:"bank_details,omitempty"`
	Observations  *string `gorm:"type:text" json:"observations,omitempty"`

	Template enum.TemplateVariant `gorm:"size:20;default:classic" json:"template"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships. Insertion order is significant: it determines page
	// assignment and display order, so items are always loaded by position.
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// TotalAmount sums the precomputed totals of every line item.
func (i *Invoice) TotalAmount() float64 {
	var sum float64
	for _, item := range i.Items {
		sum += item.Total
	}
	return sum
}

// InvoiceItem represents one billable line on an invoice
type InvoiceItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Position    int            `gorm:"not null" json:"position"`
	Description string         `gorm:"size:500;not null" json:"description"`
	Quantity    float64        `gorm:"type:decimal(15,3);not null" json:"quantity"`
	UnitPrice   float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total       float64        `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// Recalculate derives the line total from quantity and unit price. The total
// is never set independently; every mutation path calls this.
func (it *InvoiceItem) Recalculate() {
	it.Total = it.Quantity * it.UnitPrice
}
