package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/service"
)

// RecommendationHandler handles HTTP requests for the recommendation feed
type RecommendationHandler struct {
	service service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(svc service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: svc}
}

// Recommend godoc
// @Summary      Recommended banners for a position
// @Description  Returns live banners ranked by priority then lifetime views
// @Tags         banners
// @Accept       json
// @Produce      json
// @Param        position     path   string  true   "Position name"
// @Param        category     query  string  false  "Category filter"
// @Param        governorate  query  string  false  "Governorate code filter"
// @Success      200  {object}  common.APIResponse{data=[]domain.BannerResponse}
// @Failure      404  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /banners/position/{position}/recommended [get]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	position := c.Param("position")
	category := c.Query("category")

	var governorate *string
	if gov := c.Query("governorate"); gov != "" {
		governorate = &gov
	}

	data, err := h.service.Recommend(position, category, governorate)
	if err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, data, &common.Meta{Position: position})
}
