package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/comdesk/comdesk-api/internal/application/service"
	"github.com/comdesk/comdesk-api/internal/presentation/http/dto/request"
	"github.com/comdesk/comdesk-api/internal/presentation/http/dto/response"
	"github.com/comdesk/comdesk-api/pkg/utils"
)

// PurchaseOrderHandler handles purchase-order-related HTTP requests
type PurchaseOrderHandler struct {
	purchaseOrderService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(purchaseOrderService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{purchaseOrderService: purchaseOrderService}
}

// PreviewNumber returns the next purchase-order number without assigning it
// @Summary Preview purchase-order number
// @Tags purchase-orders
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /purchase-orders/next-number [get]
func (h *PurchaseOrderHandler) PreviewNumber(c *gin.Context) {
	number := h.purchaseOrderService.PreviewNumber(c.Request.Context(), GetSalesPersonCode(c))
	response.OK(c, "Next purchase order number", gin.H{
		"number":      number,
		"last_number": h.purchaseOrderService.LastNumber(),
	})
}

// Generate finalizes a purchase order and returns the rendered PDF
// @Summary Generate purchase order
// @Tags purchase-orders
// @Accept json
// @Produce application/pdf
// @Param request body request.GeneratePurchaseOrderRequest true "Purchase order form"
// @Success 200 {file} binary
// @Failure 400 {object} response.APIResponse
// @Router /purchase-orders [post]
func (h *PurchaseOrderHandler) Generate(c *gin.Context) {
	var req request.GeneratePurchaseOrderRequest
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

	output, err := h.purchaseOrderService.Generate(c.Request.Context(), &service.GeneratePurchaseOrderInput{
		SalesPersonCode: GetSalesPersonCode(c),
		VendorName:      req.VendorName,
		BillToCompany:   req.BillToCompany,
		BillToAddress:   req.BillToAddress,
		ShipToCompany:   req.ShipToCompany,
		ShipToAddress:   req.ShipToAddress,
		EndUserName:     req.EndUserName,
		PaymentTerms:    req.PaymentTerms,
		DeliveryTerms:   req.DeliveryTerms,
		PreparedBy:      req.PreparedBy,
		AuthorizedBy:    req.AuthorizedBy,
		Items:           items,
		NumberOverride:  req.NumberOverride,
		AutoIncrement:   req.AutoIncrement,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := utils.SafeFileName("PO", output.PurchaseOrder.Number) + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("X-Document-Number", output.PurchaseOrder.Number)
	c.Data(200, "application/pdf", output.PDF)
}

// ResetSequence restarts the purchase-order numbering run from 1
// @Summary Reset purchase-order sequence
// @Tags purchase-orders
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /purchase-orders/sequence/reset [post]
func (h *PurchaseOrderHandler) ResetSequence(c *gin.Context) {
	if err := h.purchaseOrderService.ResetSequence(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Purchase order sequence reset", nil)
}
