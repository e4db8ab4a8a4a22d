package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/service"
)

// SettingHandler handles HTTP requests for banner settings and permissions
type SettingHandler struct {
	settings    service.SettingService
	permissions service.PermissionService
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(settings service.SettingService, permissions service.PermissionService) *SettingHandler {
	return &SettingHandler{settings: settings, permissions: permissions}
}

// ListSettings godoc
// @Summary      List banner settings (admin)
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.BannerSetting}
// @Failure      403  {object}  common.APIResponse
// @Router       /admin/settings [get]
func (h *SettingHandler) ListSettings(c *gin.Context) {
	data, err := h.settings.List(actorFrom(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, data, nil)
}

// UpdateSetting godoc
// @Summary      Update a banner setting (admin)
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key      path  string                       true  "Setting key"
// @Param        request  body  domain.UpdateSettingRequest  true  "New value"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/settings/{key} [put]
func (h *SettingHandler) UpdateSetting(c *gin.Context) {
	key := c.Param("key")

	var req domain.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	if err := h.settings.Update(actorFrom(c), key, req.Value); err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Setting updated"}, nil)
}

// ListPermissions godoc
// @Summary      List account permissions (admin)
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.BannerPermission}
// @Failure      403  {object}  common.APIResponse
// @Router       /admin/permissions [get]
func (h *SettingHandler) ListPermissions(c *gin.Context) {
	actor := actorFrom(c)
	if err := h.permissions.Check(actor.UserID, actor.UserType, domain.ActionManageSettings); err != nil {
		serviceError(c, err)
		return
	}

	data, err := h.permissions.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, data, nil)
}

// UpsertPermission godoc
// @Summary      Create or replace an account permission row (admin)
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.BannerPermission  true  "Permission row"
// @Success      200  {object}  common.APIResponse{data=domain.BannerPermission}
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Router       /admin/permissions [put]
func (h *SettingHandler) UpsertPermission(c *gin.Context) {
	actor := actorFrom(c)
	if err := h.permissions.Check(actor.UserID, actor.UserType, domain.ActionManageSettings); err != nil {
		serviceError(c, err)
		return
	}

	var row domain.BannerPermission
	if err := c.ShouldBindJSON(&row); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}
	if row.UserID == 0 || row.UserType == "" {
		common.ErrorResponse(c, 400, "Missing user ID or user type", nil)
		return
	}

	if err := h.permissions.Upsert(&row); err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, row, nil)
}
