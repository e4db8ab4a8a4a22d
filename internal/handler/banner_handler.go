package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/repository"
	"github.com/naebak/banner-backend/internal/service"
	"github.com/naebak/banner-backend/pkg/ginutil"
)

// BannerHandler handles HTTP requests for banners
type BannerHandler struct {
	service   service.BannerService
	analytics service.AnalyticsService
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(svc service.BannerService, analytics service.AnalyticsService) *BannerHandler {
	return &BannerHandler{service: svc, analytics: analytics}
}

// DisplayBanners godoc
// @Summary      List banners for a position
// @Description  Returns the live banners to display in a position, after eligibility filtering and capacity truncation
// @Tags         banners
// @Accept       json
// @Produce      json
// @Param        position     path   string  true   "Position name (top, middle, bottom, sidebar_right, sidebar_left, floating)"
// @Param        category     query  string  false  "Category filter"
// @Param        governorate  query  string  false  "Governorate code filter"
// @Success      200  {object}  common.APIResponse{data=domain.BannerListResponse}
// @Failure      404  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /banners/position/{position} [get]
func (h *BannerHandler) DisplayBanners(c *gin.Context) {
	position := c.Param("position")
	category := c.Query("category")

	var governorate *string
	if gov := c.Query("governorate"); gov != "" {
		governorate = &gov
	}

	data, err := h.service.SelectForPosition(c.Request.Context(), position, category, governorate)
	if err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, data, &common.Meta{Position: position})
}

// GetBanner godoc
// @Summary      Get banner details
// @Tags         banners
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "Banner ID"
// @Success      200  {object}  common.APIResponse{data=domain.BannerResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /banners/{id} [get]
func (h *BannerHandler) GetBanner(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid banner ID", err)
		return
	}

	data, err := h.service.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// TrackView godoc
// @Summary      Record a banner view
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        id        path   int     true   "Banner ID"
// @Param        unique    query  bool    false  "First view by this visitor today"
// @Param        duration  query  number  false  "Dwell time in seconds, sent on view end"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /banners/{id}/view [post]
func (h *BannerHandler) TrackView(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid banner ID", err)
		return
	}

	unique := c.Query("unique") == "true"
	if err := h.analytics.RecordView(id, unique); err != nil {
		serviceError(c, err)
		return
	}

	if v := c.Query("duration"); v != "" {
		seconds, err := strconv.ParseFloat(v, 64)
		if err != nil {
			common.ErrorResponse(c, 400, "Invalid duration", err)
			return
		}
		if err := h.analytics.RecordViewDuration(id, seconds); err != nil {
			serviceError(c, err)
			return
		}
	}

	common.SuccessResponse(c, gin.H{"message": "View recorded"}, nil)
}

// TrackClick godoc
// @Summary      Record a banner click
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        id      path   int   true   "Banner ID"
// @Param        unique  query  bool  false  "First click by this visitor today"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /banners/{id}/click [post]
func (h *BannerHandler) TrackClick(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid banner ID", err)
		return
	}

	clickCtx := &domain.ClickContext{
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		Referer:   c.GetHeader("Referer"),
		Unique:    c.Query("unique") == "true",
	}
	clickCtx.UserID = actorFrom(c).UserID

	if err := h.analytics.RecordClick(id, clickCtx); err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Click recorded"}, nil)
}

// ClickRedirect godoc
// @Summary      Record a click and redirect to the banner's link
// @Description  Browser-facing variant of click tracking; records the click, then 302s to the banner's link URL
// @Tags         analytics
// @Param        id  path  int  true  "Banner ID"
// @Success      302
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /banners/{id}/click [get]
func (h *BannerHandler) ClickRedirect(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid banner ID", err)
		return
	}

	banner, err := h.service.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if banner.LinkURL == "" {
		common.ErrorResponse(c, 404, "Banner has no link", nil)
		return
	}

	clickCtx := &domain.ClickContext{
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		Referer:   c.GetHeader("Referer"),
		Unique:    c.Query("unique") == "true",
	}
	clickCtx.UserID = actorFrom(c).UserID
	if err := h.analytics.RecordClick(id, clickCtx); err != nil {
		serviceError(c, err)
		return
	}

	c.Redirect(302, banner.LinkURL)
}

// ============= Admin Endpoints =============

// ListBanners godoc
// @Summary      List banners (admin)
// @Description  Lists all banners with optional filters and paging
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category  query  string  false  "Category filter"
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Page size"
// @Success      200  {object}  common.APIResponse{data=[]domain.BannerResponse}
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /admin/banners [get]
func (h *BannerHandler) ListBanners(c *gin.Context) {
	filter := repository.BannerFilter{
		Category: c.Query("category"),
		Page:     ginutil.QueryInt(c, "page", 1),
		Limit:    ginutil.QueryInt(c, "limit", 20),
	}

	data, total, err := h.service.List(filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, data, &common.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	})
}

// CreateBanner godoc
// @Summary      Create a banner (admin)
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CreateBannerRequest  true  "Banner creation request"
// @Success      201  {object}  common.APIResponse{data=domain.BannerResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Router       /admin/banners [post]
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req domain.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	common.CreatedResponse(c, data)
}

// UpdateBanner godoc
// @Summary      Update a banner (admin)
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                         true  "Banner ID"
// @Param        request  body  domain.UpdateBannerRequest  true  "Banner update request"
// @Success      200  {object}  common.APIResponse{data=domain.BannerResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/banners/{id} [put]
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid banner ID", err)
		return
	}

	var req domain.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Update(c.Request.Context(), actorFrom(c), id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// DeleteBanner godoc
// @Summary      Delete a banner (admin)
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Banner ID"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/banners/{id} [delete]
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid banner ID", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Banner deleted successfully"}, nil)
}

// PublishBanner godoc
// @Summary      Publish a banner (admin)
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Banner ID"
// @Success      200  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/banners/{id}/publish [post]
func (h *BannerHandler) PublishBanner(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid banner ID", err)
		return
	}

	if err := h.service.Publish(c.Request.Context(), actorFrom(c), id); err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Banner published"}, nil)
}

// UnpublishBanner godoc
// @Summary      Unpublish a banner (admin)
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Banner ID"
// @Success      200  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/banners/{id}/unpublish [post]
func (h *BannerHandler) UnpublishBanner(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid banner ID", err)
		return
	}

	if err := h.service.Unpublish(c.Request.Context(), actorFrom(c), id); err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Banner unpublished"}, nil)
}
