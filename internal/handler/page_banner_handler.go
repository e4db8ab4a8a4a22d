package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/service"
	"github.com/naebak/banner-backend/pkg/ginutil"
)

// PageBannerHandler handles HTTP requests for page hero banners
type PageBannerHandler struct {
	service service.PageBannerService
}

// NewPageBannerHandler creates a new PageBannerHandler
func NewPageBannerHandler(svc service.PageBannerService) *PageBannerHandler {
	return &PageBannerHandler{service: svc}
}

// Display godoc
// @Summary      Live page banner for a page key
// @Description  Returns the published, active hero banner of a page
// @Tags         page-banners
// @Produce      json
// @Param        page_key  path  string  true  "Page key, e.g. candidates"
// @Success      200  {object}  common.APIResponse{data=domain.PageBanner}
// @Failure      404  {object}  common.APIResponse
// @Router       /page-banners/{page_key} [get]
func (h *PageBannerHandler) Display(c *gin.Context) {
	pageKey := c.Param("page_key")

	data, err := h.service.Display(c.Request.Context(), pageKey)
	if err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, data, nil)
}

// ============= Admin Endpoints =============

// Create godoc
// @Summary      Create a page banner (admin)
// @Tags         page-banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CreatePageBannerRequest  true  "Page banner"
// @Success      201  {object}  common.APIResponse{data=domain.PageBanner}
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Router       /admin/page-banners [post]
func (h *PageBannerHandler) Create(c *gin.Context) {
	var req domain.CreatePageBannerRequest
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

// Update godoc
// @Summary      Update a page banner (admin)
// @Tags         page-banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                             true  "Page banner ID"
// @Param        request  body  domain.UpdatePageBannerRequest  true  "Partial update"
// @Success      200  {object}  common.APIResponse{data=domain.PageBanner}
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/page-banners/{id} [put]
func (h *PageBannerHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid page banner ID", err)
		return
	}

	var req domain.UpdatePageBannerRequest
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

// List godoc
// @Summary      List page banners (admin)
// @Tags         page-banners
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.PageBanner}
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/page-banners [get]
func (h *PageBannerHandler) List(c *gin.Context) {
	data, err := h.service.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, data, nil)
}

// Delete godoc
// @Summary      Delete a page banner (admin)
// @Tags         page-banners
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Page banner ID"
// @Success      200  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/page-banners/{id} [delete]
func (h *PageBannerHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid page banner ID", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Page banner deleted"}, nil)
}

// Publish godoc
// @Summary      Publish a page banner (admin)
// @Tags         page-banners
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Page banner ID"
// @Success      200  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/page-banners/{id}/publish [post]
func (h *PageBannerHandler) Publish(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid page banner ID", err)
		return
	}

	if err := h.service.Publish(c.Request.Context(), actorFrom(c), id); err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Page banner published"}, nil)
}

// Unpublish godoc
// @Summary      Unpublish a page banner (admin)
// @Tags         page-banners
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Page banner ID"
// @Success      200  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/page-banners/{id}/unpublish [post]
func (h *PageBannerHandler) Unpublish(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid page banner ID", err)
		return
	}

	if err := h.service.Unpublish(c.Request.Context(), actorFrom(c), id); err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Page banner unpublished"}, nil)
}
