package handlers

import (
	"net/http"

	"everafter/services/booking"
	"everafter/services/catalog"

	"github.com/gin-gonic/gin"
)

// VendorHandler serves the public vendor directory.
type VendorHandler struct {
	Catalog   catalog.CatalogService
	Inquiries booking.InquiryService
}

func NewVendorHandler(cs catalog.CatalogService, is booking.InquiryService) *VendorHandler {
	return &VendorHandler{Catalog: cs, Inquiries: is}
}

// ListVendorsHandler handles GET /api/vendors?q=&category=&location=&price=&sort=.
func (h *VendorHandler) ListVendorsHandler(c *gin.Context) {
	var f catalog.Filters
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, "Invalid filters", err)
		return
	}
	result, err := h.Catalog.Search(c.Request.Context(), f, catalog.ParseSortKey(c.Query("sort")))
	if err != nil {
		respondError(c, "Failed to load vendors", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// FacetsHandler handles GET /api/vendors/facets.
func (h *VendorHandler) FacetsHandler(c *gin.Context) {
	facets, err := h.Catalog.Facets(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load filters", err)
		return
	}
	c.JSON(http.StatusOK, facets)
}

// GetVendorHandler handles GET /api/vendors/:slug.
func (h *VendorHandler) GetVendorHandler(c *gin.Context) {
	detail, err := h.Catalog.GetDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, "Vendor not found", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// QuoteHandler handles GET /api/vendors/:slug/quote?from=&to=.
func (h *VendorHandler) QuoteHandler(c *gin.Context) {
	quote, err := h.Inquiries.QuoteFor(c.Request.Context(), c.Param("slug"), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, "Unable to price these dates", err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
