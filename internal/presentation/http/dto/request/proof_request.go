package request

// SubmitProofRequest represents a client's payment proof submission
type SubmitProofRequest struct {
	ClientName     string  `json:"client_name" binding:"required"`
	ClientEmail    *string `json:"client_email" binding:"omitempty,email"`
	InvoiceCode    string  `json:"invoice_code" binding:"required"`
	ProofReference string  `json:"proof_reference" binding:"required"`
}

// ReviewProofRequest carries the optional note attached to a review decision
type ReviewProofRequest struct {
	Note *string `json:"note"`
}
