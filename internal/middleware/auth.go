package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/pkg/jwt"
)

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, 401, "Missing authorization header", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := jwtManager.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_type", claims.UserType)
		c.Set("user_name", claims.Name)

		c.Next()
	}
}

// OptionalAuth decodes a bearer token when present but lets anonymous
// requests through. Used on public endpoints that personalize click logs.
func OptionalAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := jwtManager.VerifyToken(parts[1]); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_type", claims.UserType)
				c.Set("user_name", claims.Name)
			}
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from context
func GetUserID(c *gin.Context) int64 {
	v, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	if id, ok := v.(int64); ok {
		return id
	}
	return 0
}

// GetUserType extracts the authenticated user type from context
func GetUserType(c *gin.Context) string {
	v, exists := c.Get("user_type")
	if !exists {
		return ""
	}
	if t, ok := v.(string); ok {
		return t
	}
	return ""
}
