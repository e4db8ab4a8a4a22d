package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/service"
	"github.com/naebak/banner-backend/pkg/ginutil"
)

var submissionValidator = validator.New()

// UserBannerHandler handles HTTP requests for user banner submissions
type UserBannerHandler struct {
	service service.UserBannerService
}

// NewUserBannerHandler creates a new UserBannerHandler
func NewUserBannerHandler(svc service.UserBannerService) *UserBannerHandler {
	return &UserBannerHandler{service: svc}
}

// Submit godoc
// @Summary      Submit a banner for moderation
// @Tags         user-banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CreateUserBannerRequest  true  "Submission request"
// @Success      201  {object}  common.APIResponse{data=domain.UserBanner}
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Router       /user-banners [post]
func (h *UserBannerHandler) Submit(c *gin.Context) {
	var req domain.CreateUserBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}
	if err := submissionValidator.Struct(&req); err != nil {
		common.ErrorResponse(c, 400, "Validation failed", err)
		return
	}

	data, err := h.service.Submit(actorFrom(c), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	common.CreatedResponse(c, data)
}

// ListMine godoc
// @Summary      List my submissions
// @Tags         user-banners
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.UserBanner}
// @Failure      401  {object}  common.APIResponse
// @Router       /user-banners/mine [get]
func (h *UserBannerHandler) ListMine(c *gin.Context) {
	data, err := h.service.ListMine(actorFrom(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, data, nil)
}

// Get godoc
// @Summary      Get a submission
// @Tags         user-banners
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Submission ID"
// @Success      200  {object}  common.APIResponse{data=domain.UserBanner}
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /user-banners/{id} [get]
func (h *UserBannerHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid submission ID", err)
		return
	}

	data, err := h.service.Get(actorFrom(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, data, nil)
}

// Update godoc
// @Summary      Update a pending submission
// @Tags         user-banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                             true  "Submission ID"
// @Param        request  body  domain.CreateUserBannerRequest  true  "New content"
// @Success      200  {object}  common.APIResponse{data=domain.UserBanner}
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /user-banners/{id} [put]
func (h *UserBannerHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid submission ID", err)
		return
	}

	var req domain.CreateUserBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Update(actorFrom(c), id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, data, nil)
}

// Withdraw godoc
// @Summary      Withdraw a pending submission
// @Tags         user-banners
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Submission ID"
// @Success      200  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /user-banners/{id} [delete]
func (h *UserBannerHandler) Withdraw(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid submission ID", err)
		return
	}

	if err := h.service.Withdraw(actorFrom(c), id); err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Submission withdrawn"}, nil)
}

// ============= Admin Endpoints =============

// ListPending godoc
// @Summary      Moderation queue (admin)
// @Tags         user-banners
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  common.APIResponse{data=[]domain.UserBanner}
// @Failure      403  {object}  common.APIResponse
// @Router       /admin/user-banners/pending [get]
func (h *UserBannerHandler) ListPending(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	data, total, err := h.service.ListPending(actorFrom(c), page, limit)
	if err != nil {
		serviceError(c, err)
		return
	}

	common.SuccessResponse(c, data, &common.Meta{Page: page, Limit: limit, Total: total})
}

// Review godoc
// @Summary      Approve or reject a submission (admin)
// @Tags         user-banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                             true  "Submission ID"
// @Param        request  body  domain.ReviewUserBannerRequest  true  "Decision"
// @Success      200  {object}  common.APIResponse{data=domain.UserBanner}
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/user-banners/{id}/review [post]
func (h *UserBannerHandler) Review(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid submission ID", err)
		return
	}

	var req domain.ReviewUserBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Review(actorFrom(c), id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	common.SuccessResponse(c, data, nil)
}
