package handler

import (
	"net/http"

	"github.com/faturango/fatura-api/internal/application/service"
	"github.com/faturango/fatura-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RenderHandler handles invoice rendering HTTP requests
type RenderHandler struct {
	renderService *service.RenderService
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(renderService *service.RenderService) *RenderHandler {
	return &RenderHandler{renderService: renderService}
}

// Page handles rendering one page of the interactive preview
// @Summary Render Invoice Page
// @Description Render one page of the invoice plus the navigation state
// @Tags render
// @Produce json
// @Param id path string true "Invoice ID"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/render [get]
func (h *RenderHandler) Page(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			page = parsed
		}
	}

	view, err := h.renderService.RenderPage(c.Request.Context(), id, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Page rendered successfully", view)
}

// Print handles rendering the full print view
// @Summary Render Print View
// @Description Render all pages concatenated with page-break markers
// @Tags render
// @Produce html
// @Param id path string true "Invoice ID"
// @Success 200 {string} string "HTML document"
// @Router /invoices/{id}/print [get]
func (h *RenderHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	html, err := h.renderService.RenderPrint(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PDF handles exporting the invoice as a PDF
// @Summary Export Invoice PDF
// @Tags render
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary "PDF document"
// @Router /invoices/{id}/pdf [get]
func (h *RenderHandler) PDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	pdf, err := h.renderService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="fatura.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
