package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/service"
	"github.com/naebak/banner-backend/pkg/ginutil"
)

// AnalyticsHandler handles HTTP requests for banner analytics
type AnalyticsHandler struct {
	service     service.AnalyticsService
	permissions service.PermissionService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(svc service.AnalyticsService, permissions service.PermissionService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc, permissions: permissions}
}

// parseRange reads from/to query dates (YYYY-MM-DD). An absent bound stays
// a zero time, which the stats queries treat as that side of the range
// being open; no bounds at all means the full recorded history.
func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	var from, to time.Time

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, err
		}
		to = parsed
	}
	return from, to, nil
}

// GetSummary godoc
// @Summary      Banner analytics summary (admin)
// @Description  Aggregates a banner's daily stats over a date range
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   int     true   "Banner ID"
// @Param        from  query  string  false  "Range start (YYYY-MM-DD)"
// @Param        to    query  string  false  "Range end (YYYY-MM-DD)"
// @Success      200  {object}  common.APIResponse{data=domain.AnalyticsSummary}
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Router       /admin/banners/{id}/analytics [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	actor := actorFrom(c)
	if err := h.permissions.Check(actor.UserID, actor.UserType, domain.ActionViewStats); err != nil {
		serviceError(c, err)
		return
	}

	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid banner ID", err)
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid date range", err)
		return
	}

	data, err := h.service.Summary(id, from, to)
	if err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// GetTopBanners godoc
// @Summary      Busiest banners in a range (admin)
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        from   query  string  false  "Range start (YYYY-MM-DD)"
// @Param        to     query  string  false  "Range end (YYYY-MM-DD)"
// @Param        limit  query  int     false  "Maximum rows"
// @Success      200  {object}  common.APIResponse{data=[]domain.BannerStat}
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Router       /admin/analytics/top [get]
func (h *AnalyticsHandler) GetTopBanners(c *gin.Context) {
	actor := actorFrom(c)
	if err := h.permissions.Check(actor.UserID, actor.UserType, domain.ActionViewStats); err != nil {
		serviceError(c, err)
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid date range", err)
		return
	}

	data, err := h.service.TopBanners(from, to, ginutil.QueryInt(c, "limit", 10))
	if err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}
