package ginutil

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/naebak/banner-backend/pkg/i18n"
)

// QueryInt extracts an integer from query parameters with default value
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// ParamInt64 extracts an int64 from path parameters
// Returns the parsed int64 and error if parsing fails
func ParamInt64(c *gin.Context, key string) (int64, error) {
	valueStr := c.Param(key)
	return strconv.ParseInt(valueStr, 10, 64)
}

// Locale resolves the response language from the lang query parameter or
// the Accept-Language header. Arabic is the default.
func Locale(c *gin.Context) i18n.Locale {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	if strings.HasPrefix(strings.ToLower(lang), "en") {
		return i18n.LocaleEn
	}
	return i18n.LocaleAr
}
