package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/comdesk/comdesk-api/internal/application/service"
	"github.com/comdesk/comdesk-api/internal/presentation/http/dto/request"
	"github.com/comdesk/comdesk-api/internal/presentation/http/dto/response"
	"github.com/comdesk/comdesk-api/pkg/utils"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// PreviewNumber returns the next quotation number without assigning it
// @Summary Preview quotation number
// @Tags quotations
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /quotations/next-number [get]
func (h *QuotationHandler) PreviewNumber(c *gin.Context) {
	number := h.quotationService.PreviewNumber(c.Request.Context(), GetSalesPersonCode(c))
	response.OK(c, "Next quotation number", gin.H{
		"number":      number,
		"last_number": h.quotationService.LastNumber(),
	})
}

// Generate finalizes a quotation and returns the rendered PDF
// @Summary Generate quotation
// @Tags quotations
// @Accept json
// @Produce application/pdf
// @Param request body request.GenerateQuotationRequest true "Quotation form"
// @Success 200 {file} binary
// @Failure 400 {object} response.APIResponse
// @Router /quotations [post]
func (h *QuotationHandler) Generate(c *gin.Context) {
	var req request.GenerateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.QuotationItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.QuotationItemInput{
			Name:       it.Name,
			Basic:      it.Basic,
			TaxPercent: it.TaxPercent,
			Qty:        it.Qty,
		})
	}

	output, err := h.quotationService.Generate(c.Request.Context(), &service.GenerateQuotationInput{
		SalesPersonCode: GetSalesPersonCode(c),
		VendorName:      req.VendorName,
		Title:           req.Title,
		Subject:         req.Subject,
		Intro:           req.Intro,
		AnnexureText:    req.AnnexureText,
		PriceValidity:   req.PriceValidity,
		Items:           items,
		NumberOverride:  req.NumberOverride,
		AutoIncrement:   req.AutoIncrement,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := utils.SafeFileName("Quotation", output.Quotation.Number) + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("X-Document-Number", output.Quotation.Number)
	c.Data(200, "application/pdf", output.PDF)
}

// ResetSequence restarts the quotation numbering run from 1
// @Summary Reset quotation sequence
// @Tags quotations
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /quotations/sequence/reset [post]
func (h *QuotationHandler) ResetSequence(c *gin.Context) {
	if err := h.quotationService.ResetSequence(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quotation sequence reset", nil)
}
