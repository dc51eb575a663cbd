package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/comdesk/comdesk-api/internal/application/service"
	"github.com/comdesk/comdesk-api/internal/presentation/http/dto/request"
	"github.com/comdesk/comdesk-api/internal/presentation/http/dto/response"
	"github.com/comdesk/comdesk-api/pkg/utils"
)

// InvoiceHandler handles tax-invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// PreviewNumber returns the next invoice number without assigning it
// @Summary Preview invoice number
// @Tags invoices
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices/next-number [get]
func (h *InvoiceHandler) PreviewNumber(c *gin.Context) {
	number := h.invoiceService.PreviewNumber(c.Request.Context())
	response.OK(c, "Next invoice number", gin.H{
		"number":      number,
		"last_number": h.invoiceService.LastNumber(),
	})
}

// Generate finalizes a tax invoice and returns the rendered PDF
// @Summary Generate tax invoice
// @Tags invoices
// @Accept json
// @Produce application/pdf
// @Param request body request.GenerateInvoiceRequest true "Invoice form"
// @Success 200 {file} binary
// @Failure 400 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Generate(c *gin.Context) {
	var req request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.InvoiceItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.InvoiceItemInput{
			Description: it.Description,
			HSN:         it.HSN,
			Quantity:    it.Quantity,
			UnitRate:    it.UnitRate,
		})
	}

	output, err := h.invoiceService.Generate(c.Request.Context(), &service.GenerateInvoiceInput{
		BuyerName:          req.BuyerName,
		SuppliersReference: req.SuppliersReference,
		OtherReference:     req.OtherReference,
		BuyersOrderNo:      req.BuyersOrderNo,
		BuyersOrderDate:    req.BuyersOrderDate,
		DispatchedThrough:  req.DispatchedThrough,
		PaymentTerms:       req.PaymentTerms,
		TermsOfDelivery:    req.TermsOfDelivery,
		Destination:        req.Destination,
		Items:              items,
		NumberOverride:     req.NumberOverride,
		AutoIncrement:      req.AutoIncrement,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := utils.SafeFileName("Invoice", output.Invoice.Number) + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("X-Document-Number", output.Invoice.Number)
	c.Data(200, "application/pdf", output.PDF)
}

// ResetSequence restarts the invoice numbering run from 1
// @Summary Reset invoice sequence
// @Tags invoices
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices/sequence/reset [post]
func (h *InvoiceHandler) ResetSequence(c *gin.Context) {
	if err := h.invoiceService.ResetSequence(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice sequence reset", nil)
}
