package service

import (
	"strings"
	"time"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/taxonomy"
	"github.com/naebak/banner-backend/pkg/i18n"
)

// Title length bounds in characters, applied after trimming
const (
	TitleMinLength = 3
	TitleMaxLength = 200
)

// BannerValidator checks banner input against the taxonomy and the alt-text
// policy. Validation collects every violation instead of stopping at the
// first, so a form round-trip fixes everything at once.
type BannerValidator struct {
	registry         *taxonomy.Registry
	bundle           *i18n.Bundle
	requireAltText   bool
	maxAltTextLength int
}

// NewBannerValidator creates a new BannerValidator
func NewBannerValidator(registry *taxonomy.Registry, bundle *i18n.Bundle, requireAltText bool, maxAltTextLength int) *BannerValidator {
	if maxAltTextLength < 1 {
		maxAltTextLength = 125
	}
	return &BannerValidator{
		registry:         registry,
		bundle:           bundle,
		requireAltText:   requireAltText,
		maxAltTextLength: maxAltTextLength,
	}
}

// ValidateCreate checks a creation request and returns every violation
func (v *BannerValidator) ValidateCreate(req *domain.CreateBannerRequest, locale i18n.Locale) common.FieldErrors {
	var errs common.FieldErrors

	errs = append(errs, v.validateContent(req.Title, req.ImageURL, req.AltText, locale)...)

	if !v.registry.ValidType(req.BannerType) {
		errs = errs.Add(common.CodeInvalidType, "banner_type", v.bundle.T(locale, "banner.invalid_type"))
	}
	if !v.registry.ValidPosition(req.Position) {
		errs = errs.Add(common.CodeInvalidPosition, "position", v.bundle.T(locale, "banner.invalid_position"))
	}
	if !v.registry.ValidCategory(req.Category) {
		errs = errs.Add(common.CodeInvalidCategory, "category", v.bundle.T(locale, "banner.invalid_category"))
	}
	if req.Governorate != nil && !v.registry.ValidGovernorate(*req.Governorate) {
		errs = errs.Add(common.CodeInvalidGovernorate, "governorate", v.bundle.T(locale, "banner.invalid_governorate"))
	}

	errs = append(errs, v.validateDates(req.StartDate, req.EndDate, locale)...)

	for i := range req.Schedules {
		errs = append(errs, v.ValidateSchedule(&req.Schedules[i], locale)...)
	}

	return errs
}

// ValidateUpdate checks a partial update; only supplied fields are validated
func (v *BannerValidator) ValidateUpdate(req *domain.UpdateBannerRequest, existing *domain.Banner, locale i18n.Locale) common.FieldErrors {
	var errs common.FieldErrors

	if req.Title != nil {
		if n := len([]rune(strings.TrimSpace(*req.Title))); n < TitleMinLength || n > TitleMaxLength {
			errs = errs.Add(common.CodeTitleLength, "title", v.bundle.T(locale, "banner.title_length"))
		}
	}
	if req.AltText != nil && len([]rune(*req.AltText)) > v.maxAltTextLength {
		errs = errs.Add(common.CodeAltTextLength, "alt_text", v.bundle.T(locale, "banner.alt_text_length"))
	}
	if req.Category != nil && !v.registry.ValidCategory(*req.Category) {
		errs = errs.Add(common.CodeInvalidCategory, "category", v.bundle.T(locale, "banner.invalid_category"))
	}
	if req.Governorate != nil && *req.Governorate != "" && !v.registry.ValidGovernorate(*req.Governorate) {
		errs = errs.Add(common.CodeInvalidGovernorate, "governorate", v.bundle.T(locale, "banner.invalid_governorate"))
	}

	// Date bounds are checked against the resulting window, mixing new
	// values with whatever the banner already has
	start := existing.StartDate
	end := existing.EndDate
	if req.StartDate != nil {
		start = req.StartDate
	}
	if req.EndDate != nil {
		end = req.EndDate
	}
	errs = append(errs, v.validateDates(start, end, locale)...)

	return errs
}

// ValidateSchedule checks one recurring schedule entry
func (v *BannerValidator) ValidateSchedule(in *domain.ScheduleInput, locale i18n.Locale) common.FieldErrors {
	var errs common.FieldErrors

	for _, d := range in.DaysOfWeek {
		if d < 0 || d > 6 {
			errs = errs.Add(common.CodeScheduleDays, "days_of_week", v.bundle.T(locale, "schedule.days"))
			break
		}
	}

	var startMin, endMin int
	startOK, endOK := true, true
	if in.StartTime != nil {
		if m, ok := domain.ParseClock(*in.StartTime); ok {
			startMin = m
		} else {
			startOK = false
			errs = errs.Add(common.CodeScheduleTimeRange, "start_time", v.bundle.T(locale, "schedule.time_format"))
		}
	}
	if in.EndTime != nil {
		if m, ok := domain.ParseClock(*in.EndTime); ok {
			endMin = m
		} else {
			endOK = false
			errs = errs.Add(common.CodeScheduleTimeRange, "end_time", v.bundle.T(locale, "schedule.time_format"))
		}
	}

	// Bounds are literal clock comparisons; an end before the start would
	// be an empty window, not an overnight one. Overnight display is
	// configured as two schedule entries.
	if in.StartTime != nil && in.EndTime != nil && startOK && endOK && endMin < startMin {
		errs = errs.Add(common.CodeScheduleTimeRange, "end_time", v.bundle.T(locale, "schedule.time_range"))
	}

	if in.Timezone != "" {
		if _, err := time.LoadLocation(in.Timezone); err != nil {
			errs = errs.Add(common.CodeScheduleTimezone, "timezone", v.bundle.T(locale, "schedule.timezone"))
		}
	}

	return errs
}

func (v *BannerValidator) validateContent(title, imageURL, altText string, locale i18n.Locale) common.FieldErrors {
	var errs common.FieldErrors

	if n := len([]rune(strings.TrimSpace(title))); n < TitleMinLength || n > TitleMaxLength {
		errs = errs.Add(common.CodeTitleLength, "title", v.bundle.T(locale, "banner.title_length"))
	}
	if v.requireAltText && imageURL != "" && altText == "" {
		errs = errs.Add(common.CodeAltTextRequired, "alt_text", v.bundle.T(locale, "banner.alt_text_required"))
	}
	if len([]rune(altText)) > v.maxAltTextLength {
		errs = errs.Add(common.CodeAltTextLength, "alt_text", v.bundle.T(locale, "banner.alt_text_length"))
	}

	return errs
}

func (v *BannerValidator) validateDates(start, end *time.Time, locale i18n.Locale) common.FieldErrors {
	var errs common.FieldErrors
	if start != nil && end != nil && !end.After(*start) {
		errs = errs.Add(common.CodeDateRange, "end_date", v.bundle.T(locale, "banner.date_range"))
	}
	return errs
}
