package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/comdesk/comdesk-api/internal/application/service"
	"github.com/comdesk/comdesk-api/internal/presentation/http/dto/response"
)

// DirectoryHandler serves the read-only party and product directories
type DirectoryHandler struct {
	directoryService *service.DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// ListVendors lists all vendors
// @Summary List vendors
// @Tags directory
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /vendors [get]
func (h *DirectoryHandler) ListVendors(c *gin.Context) {
	vendors, err := h.directoryService.ListVendors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendors retrieved", vendors)
}

// GetVendor returns a single vendor by name
// @Summary Get vendor
// @Tags directory
// @Produce json
// @Param name path string true "Vendor name"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /vendors/{name} [get]
func (h *DirectoryHandler) GetVendor(c *gin.Context) {
	vendor, err := h.directoryService.GetVendor(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor retrieved", vendor)
}

// ListEndUsers lists all end users
// @Summary List end users
// @Tags directory
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /end-users [get]
func (h *DirectoryHandler) ListEndUsers(c *gin.Context) {
	endUsers, err := h.directoryService.ListEndUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "End users retrieved", endUsers)
}

// GetEndUser returns a single end user by name
// @Summary Get end user
// @Tags directory
// @Produce json
// @Param name path string true "End user name"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /end-users/{name} [get]
func (h *DirectoryHandler) GetEndUser(c *gin.Context) {
	endUser, err := h.directoryService.GetEndUser(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "End user retrieved", endUser)
}

// ListProducts lists the product catalog
// @Summary List products
// @Tags directory
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *DirectoryHandler) ListProducts(c *gin.Context) {
	products, err := h.directoryService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved", products)
}

// GetProduct returns a single catalog product by name
// @Summary Get product
// @Tags directory
// @Produce json
// @Param name path string true "Product name"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /products/{name} [get]
func (h *DirectoryHandler) GetProduct(c *gin.Context) {
	product, err := h.directoryService.GetProduct(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved", product)
}
