package handler

import (
	"context"

	"github.com/faturango/fatura-api/internal/application/service"
	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/enum"
	"github.com/faturango/fatura-api/internal/presentation/http/dto/request"
	"github.com/faturango/fatura-api/internal/presentation/http/dto/response"
	"github.com/faturango/fatura-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles the review dashboard HTTP requests
type AdminHandler struct {
	authService  *service.AuthService
	proofService *service.ProofService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authService *service.AuthService, proofService *service.ProofService) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		proofService: proofService,
	}
}

// Login handles the admin login
// @Summary Admin Login
// @Description Authenticate the review admin and issue a session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body request.AdminLoginRequest true "Credentials"
// @Success 200 {object} response.APIResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req request.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Login successful", gin.H{"token": token})
}

// ListProofs handles listing payment proofs for review
// @Summary List Payment Proofs
// @Description Get all payment proofs with pagination and filtering
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query int false "Status filter (0 pending, 1 approved, 2 rejected)"
// @Success 200 {object} response.APIResponse
// @Router /admin/proofs [get]
func (h *AdminHandler) ListProofs(c *gin.Context) {
	page := 1
	perPage := 15
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := parsePositiveInt(pp); err == nil {
			perPage = parsed
		}
	}

	var status *enum.ProofStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.ProofStatus(parsed)
			status = &st
		}
	}

	result, err := h.proofService.ListProofs(c.Request.Context(), &service.ListProofsInput{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
		Status: status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Payment proofs retrieved successfully", result)
}

// ApproveProof handles approving a pending proof
// @Summary Approve Payment Proof
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Proof ID"
// @Param request body request.ReviewProofRequest false "Optional note"
// @Success 200 {object} response.APIResponse
// @Router /admin/proofs/{id}/approve [post]
func (h *AdminHandler) ApproveProof(c *gin.Context) {
	h.review(c, h.proofService.ApproveProof, "Payment proof approved successfully")
}

// RejectProof handles rejecting a pending proof
// @Summary Reject Payment Proof
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Proof ID"
// @Param request body request.ReviewProofRequest false "Optional note"
// @Success 200 {object} response.APIResponse
// @Router /admin/proofs/{id}/reject [post]
func (h *AdminHandler) RejectProof(c *gin.Context) {
	h.review(c, h.proofService.RejectProof, "Payment proof rejected successfully")
}

func (h *AdminHandler) review(
	c *gin.Context,
	fn func(ctx context.Context, id uuid.UUID, note *string) (*entity.PaymentProof, error),
	message string,
) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid proof ID")
		return
	}

	// The note body is optional
	var req request.ReviewProofRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	proof, err := fn(c.Request.Context(), id, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, message, proof)
}

