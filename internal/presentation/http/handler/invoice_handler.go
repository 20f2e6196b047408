package handler

import (
	"time"

	"github.com/faturango/fatura-api/internal/application/service"
	"github.com/faturango/fatura-api/internal/domain/enum"
	"github.com/faturango/fatura-api/internal/presentation/http/dto/request"
	"github.com/faturango/fatura-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice draft HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	archiveService *service.ArchiveService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, archiveService *service.ArchiveService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		archiveService: archiveService,
	}
}

// Create handles creating a fresh invoice draft
// @Summary Create Invoice Draft
// @Description Start a new invoice draft with preset defaults
// @Tags invoices
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	invoice, err := h.invoiceService.CreateDraft(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Invoice draft created successfully", invoice)
}

// Get handles getting a single invoice
// @Summary Get Invoice
// @Description Get an invoice draft by ID with its items
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice retrieved successfully", invoice)
}

// UpdateDetails handles a partial update of the invoice header fields
// @Summary Update Invoice Details
// @Description Update company, client, metadata and payment fields
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body request.UpdateInvoiceDetailsRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id} [patch]
func (h *InvoiceHandler) UpdateDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateDetailsInput{
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		CompanyPhone:   req.CompanyPhone,
		CompanyEmail:   req.CompanyEmail,
		CompanyTaxID:   req.CompanyTaxID,
		ClientName:     req.ClientName,
		ClientAddress:  req.ClientAddress,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		ClientTaxID:    req.ClientTaxID,
		Number:         req.Number,
		PaymentMethod:  req.PaymentMethod,
		BankDetails:    req.BankDetails,
		Observations:   req.Observations,
	}
	if req.IssueDate != nil {
		issueDate, err := parseDate(*req.IssueDate)
		if err != nil {
			response.BadRequest(c, "Invalid issue date, expected YYYY-MM-DD")
			return
		}
		input.IssueDate = &issueDate
	}
	if req.DueDate != nil {
		var dueDate *time.Time
		if *req.DueDate != "" {
			parsed, err := parseDate(*req.DueDate)
			if err != nil {
				response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
				return
			}
			dueDate = &parsed
		}
		input.DueDate = dueDate
	}

	invoice, err := h.invoiceService.UpdateDetails(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice updated successfully", invoice)
}

// UploadLogo handles the company logo upload
// @Summary Upload Logo
// @Description Upload the company logo (max 2MB, any decodable image format)
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Invoice ID"
// @Param logo formData file true "Logo image"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/logo [post]
func (h *InvoiceHandler) UploadLogo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		response.BadRequest(c, "Logo file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Failed to read the uploaded file")
		return
	}
	defer file.Close()

	invoice, err := h.invoiceService.SetLogo(c.Request.Context(), id, file, fileHeader.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logo uploaded successfully", invoice)
}

// RemoveLogo handles removing the company logo
// @Summary Remove Logo
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/logo [delete]
func (h *InvoiceHandler) RemoveLogo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.RemoveLogo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logo removed successfully", invoice)
}

// AddItem handles appending a line item
// @Summary Add Invoice Item
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body request.InvoiceItemRequest true "Item data"
// @Success 201 {object} response.APIResponse
// @Router /invoices/{id}/items [post]
func (h *InvoiceHandler) AddItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.InvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.AddItem(c.Request.Context(), id, &service.ItemInput{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item added successfully", invoice)
}

// UpdateItem handles editing a line item in place
// @Summary Update Invoice Item
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param item_id path string true "Item ID"
// @Param request body request.InvoiceItemRequest true "Item data"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/items/{item_id} [put]
func (h *InvoiceHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.InvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateItem(c.Request.Context(), id, itemID, &service.ItemInput{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item updated successfully", invoice)
}

// RemoveItem handles deleting a line item
// @Summary Remove Invoice Item
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Param item_id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/items/{item_id} [delete]
func (h *InvoiceHandler) RemoveItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	invoice, err := h.invoiceService.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed successfully", invoice)
}

// SelectTemplate handles switching the template variant
// @Summary Select Template
// @Description Switch the invoice to the classic, modern or minimal template
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body request.SelectTemplateRequest true "Template variant"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/template [put]
func (h *InvoiceHandler) SelectTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.SelectTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.SelectTemplate(c.Request.Context(), id, enum.TemplateVariant(req.Template))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Template selected successfully", invoice)
}

// Reset handles wiping the draft back to its initial state
// @Summary Reset Invoice Draft
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/reset [post]
func (h *InvoiceHandler) Reset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Reset(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice reset successfully", invoice)
}

// Validate handles checking whether the draft is complete
// @Summary Validate Invoice
// @Description Check that the draft has everything a final document needs
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/validate [post]
func (h *InvoiceHandler) Validate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Validate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice is complete", invoice)
}

// Delete handles deleting a draft
// @Summary Delete Invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 204
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Archive handles storing the invoice under a retrieval code
// @Summary Archive Invoice
// @Description Store the invoice for later retrieval by code
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 201 {object} response.APIResponse
// @Router /invoices/{id}/archive [post]
func (h *InvoiceHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	code, err := h.archiveService.Archive(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Invoice archived successfully", gin.H{"code": code})
}

// Retrieve handles restoring an archived invoice by its code
// @Summary Retrieve Archived Invoice
// @Description Restore an archived invoice as a fresh draft
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body request.RetrieveInvoiceRequest true "Retrieval code"
// @Success 200 {object} response.APIResponse
// @Router /invoices/retrieve [post]
func (h *InvoiceHandler) Retrieve(c *gin.Context) {
	var req request.RetrieveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.archiveService.Retrieve(c.Request.Context(), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice retrieved successfully", invoice)
}
