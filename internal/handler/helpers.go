package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/service"
	"github.com/naebak/banner-backend/pkg/ginutil"
)

// actorFrom builds the service-layer actor from auth middleware context
func actorFrom(c *gin.Context) service.Actor {
	actor := service.Actor{
		UserType: "anonymous",
		Locale:   ginutil.Locale(c),
	}
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok {
			actor.UserID = id
		}
	}
	if v, ok := c.Get("user_type"); ok {
		if t, ok := v.(string); ok && t != "" {
			actor.UserType = t
		}
	}
	return actor
}

// serviceError maps service-layer errors onto HTTP responses. Validation
// failures carry their full field list.
func serviceError(c *gin.Context, err error) {
	var vErr *common.ValidationError
	if errors.As(err, &vErr) {
		common.ValidationErrorResponse(c, "Validation failed", vErr.Fields)
		return
	}

	switch {
	case errors.Is(err, common.ErrBannerNotFound),
		errors.Is(err, common.ErrUserBannerNotFound),
		errors.Is(err, common.ErrPageBannerNotFound),
		errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, 404, "Resource not found", err)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, 403, "Forbidden", err)
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrExpiredToken):
		common.ErrorResponse(c, 401, "Unauthorized", err)
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, 400, "Invalid input", err)
	case errors.Is(err, common.ErrStorageUnavailable):
		common.ErrorResponse(c, 503, "Storage unavailable", err)
	default:
		common.ErrorResponse(c, 500, "Internal server error", err)
	}
}
