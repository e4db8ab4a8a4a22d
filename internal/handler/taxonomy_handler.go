package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/taxonomy"
)

// TaxonomyHandler serves the banner reference data
type TaxonomyHandler struct {
	registry *taxonomy.Registry
}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler(registry *taxonomy.Registry) *TaxonomyHandler {
	return &TaxonomyHandler{registry: registry}
}

// GetTaxonomy godoc
// @Summary      Banner reference data
// @Description  Returns types, positions, categories, governorates and supported file types
// @Tags         taxonomy
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.TaxonomyResponse}
// @Router       /taxonomy [get]
func (h *TaxonomyHandler) GetTaxonomy(c *gin.Context) {
	common.SuccessResponse(c, h.registry.Snapshot(), nil)
}

// Reload godoc
// @Summary      Reload reference data (admin)
// @Description  Re-reads types, positions and governorates from the database
// @Tags         taxonomy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /admin/taxonomy/reload [post]
func (h *TaxonomyHandler) Reload(c *gin.Context) {
	if err := h.registry.Reload(); err != nil {
		common.ErrorResponse(c, 500, "Failed to reload taxonomy", err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Taxonomy reloaded"}, nil)
}
