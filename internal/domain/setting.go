package domain

import (
	"strconv"
	"strings"
	"time"
)

// Setting value types
const (
	SettingTypeString = "string"
	SettingTypeInt    = "integer"
	SettingTypeBool   = "boolean"
	SettingTypeFloat  = "float"
)

// Well-known setting keys seeded at migration time
const (
	SettingRequireAltText   = "REQUIRE_ALT_TEXT"
	SettingMaxAltTextLength = "MAX_ALT_TEXT_LENGTH"
	SettingDefaultTimezone  = "DEFAULT_TIMEZONE"
	SettingCacheEnabled     = "CACHE_ENABLED"
	SettingMaxActivePopups  = "MAX_ACTIVE_POPUPS"
)

// BannerSetting is a typed key/value policy knob stored in the database so
// operators can adjust behavior without a redeploy. Values are stored as
// strings and interpreted through the declared type.
type BannerSetting struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Key         string `gorm:"column:setting_key;size:100;uniqueIndex;not null" json:"key"`
	Value       string `gorm:"column:setting_value;size:500" json:"value"`
	ValueType   string `gorm:"column:value_type;size:20;default:string" json:"value_type"`
	Description string `gorm:"column:description;size:300" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for BannerSetting model
func (BannerSetting) TableName() string {
	return "banner_settings"
}

// StringValue returns the raw value
func (s *BannerSetting) StringValue() string {
	return s.Value
}

// IntValue interprets the value as an integer, falling back on parse failure
func (s *BannerSetting) IntValue(fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s.Value))
	if err != nil {
		return fallback
	}
	return n
}

// BoolValue interprets the value as a boolean. Accepts true/false, 1/0,
// yes/no in any case; anything else yields the fallback.
func (s *BannerSetting) BoolValue(fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s.Value)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}

// FloatValue interprets the value as a float, falling back on parse failure
func (s *BannerSetting) FloatValue(fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
	if err != nil {
		return fallback
	}
	return f
}

// UpdateSettingRequest is the request body for changing a setting value
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
