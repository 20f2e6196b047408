package handler

import (
	"github.com/faturango/fatura-api/internal/application/service"
	"github.com/faturango/fatura-api/internal/presentation/http/dto/request"
	"github.com/faturango/fatura-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProofHandler handles the public payment proof endpoints
type ProofHandler struct {
	proofService *service.ProofService
}

// NewProofHandler creates a new proof handler
func NewProofHandler(proofService *service.ProofService) *ProofHandler {
	return &ProofHandler{proofService: proofService}
}

// Submit handles a client's payment proof submission
// @Summary Submit Payment Proof
// @Description Submit a payment proof for manual review
// @Tags proofs
// @Accept json
// @Produce json
// @Param request body request.SubmitProofRequest true "Proof data"
// @Success 201 {object} response.APIResponse
// @Router /proofs [post]
func (h *ProofHandler) Submit(c *gin.Context) {
	var req request.SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	proof, err := h.proofService.SubmitProof(c.Request.Context(), &service.SubmitProofInput{
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		InvoiceCode:    req.InvoiceCode,
		ProofReference: req.ProofReference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payment proof submitted successfully", proof)
}

// Status handles checking the review status of a submission
// @Summary Get Proof Status
// @Tags proofs
// @Produce json
// @Param id path string true "Proof ID"
// @Success 200 {object} response.APIResponse
// @Router /proofs/{id} [get]
func (h *ProofHandler) Status(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid proof ID")
		return
	}

	proof, err := h.proofService.GetProof(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment proof retrieved successfully", proof)
}
