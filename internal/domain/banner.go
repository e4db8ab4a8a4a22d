package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Link open modes
const (
	LinkTargetSelf  = "_self"
	LinkTargetBlank = "_blank"
)

// Banner is the central displayable unit: content, placement, scheduling,
// and counters. Counters are mutated only through the analytics aggregator.
type Banner struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	// Content
	Title    string `gorm:"column:title;size:200;not null" json:"title"`
	TitleAr  string `gorm:"column:title_ar;size:200" json:"title_ar,omitempty"`
	Content  string `gorm:"column:content;type:text" json:"content,omitempty"`
	ImageURL string `gorm:"column:image_url;size:500" json:"image_url,omitempty"`
	AltText  string `gorm:"column:alt_text;size:200" json:"alt_text,omitempty"`
	LinkURL  string `gorm:"column:link_url;size:500" json:"link_url,omitempty"`
	LinkText string `gorm:"column:link_text;size:100" json:"link_text,omitempty"`
	// _self or _blank
	LinkTarget string `gorm:"column:link_target;size:20;default:_self" json:"link_target"`

	// Classification
	TypeID     int64  `gorm:"column:type_id;not null" json:"type_id"`
	PositionID int64  `gorm:"column:position_id;not null;index" json:"position_id"`
	Category   string `gorm:"column:category;size:50;not null" json:"category"`
	// nil = all regions
	Governorate *string `gorm:"column:governorate;size:3" json:"governorate,omitempty"`

	// Scheduling: absolute window; either side may be open
	StartDate *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`

	// Lifecycle flags
	IsActive    bool       `gorm:"column:is_active;default:true" json:"is_active"`
	IsPublished bool       `gorm:"column:is_published;default:false" json:"is_published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`

	// Display hints
	Priority        int    `gorm:"column:priority;default:3" json:"priority"` // 1=highest, 5=lowest
	ShowCloseButton bool   `gorm:"column:show_close_button;default:true" json:"show_close_button"`
	AutoHideAfter   int    `gorm:"column:auto_hide_after;default:0" json:"auto_hide_after,omitempty"` // seconds, 0 = never
	AnimationType   string `gorm:"column:animation_type;size:50;default:fade" json:"animation_type"`
	CustomCSS       string `gorm:"column:custom_css;type:text" json:"custom_css,omitempty"`
	CustomJS        string `gorm:"column:custom_js;type:text" json:"custom_js,omitempty"`

	Metadata Metadata `gorm:"column:metadata;type:json" json:"metadata,omitempty"`

	// Counters: non-negative, increment-only
	ViewCount  int64 `gorm:"column:view_count;default:0" json:"view_count"`
	ClickCount int64 `gorm:"column:click_count;default:0" json:"click_count"`

	CreatedBy int64     `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Schedules []BannerSchedule `gorm:"foreignKey:BannerID;constraint:OnDelete:CASCADE" json:"schedules,omitempty"`
}

// TableName specifies the table name for Banner model
func (Banner) TableName() string {
	return "banners"
}

// IsLiveAt reports whether the banner may be shown at the given instant:
// both lifecycle flags set, inside the absolute date window, and matching
// at least one active recurring schedule when any is attached.
func (b *Banner) IsLiveAt(now time.Time) bool {
	if !b.IsActive || !b.IsPublished {
		return false
	}

	if b.StartDate != nil && now.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}

	// No active schedule attached means unconditionally eligible with
	// respect to recurrence. With several active schedules, matching any
	// one is enough (overnight windows are configured as two entries).
	hasActive := false
	for i := range b.Schedules {
		if !b.Schedules[i].IsActive {
			continue
		}
		hasActive = true
		if b.Schedules[i].IsScheduledAt(now) {
			return true
		}
	}

	return !hasActive
}

// CTR returns the overall click-through rate as a percentage rounded to
// two decimals
func (b *Banner) CTR() float64 {
	views := b.ViewCount
	if views < 1 {
		views = 1
	}
	return math.Round(float64(b.ClickCount)/float64(views)*100*100) / 100
}

// BannerSchedule restricts display to a weekly day set plus a daily
// time-of-day window, evaluated in the schedule's own timezone.
// Day numbering: 0=Sunday .. 6=Saturday.
type BannerSchedule struct {
	ID       int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BannerID int64 `gorm:"column:banner_id;not null;index" json:"banner_id"`

	// CSV of 0-6, e.g. "1,2,3,4,5". Empty = every day.
	DaysOfWeek string `gorm:"column:days_of_week;size:20" json:"-"`

	// Daily wall-clock bounds, "HH:MM". Nil = unbounded on that side.
	StartTime *string `gorm:"column:start_time;size:5" json:"start_time,omitempty"`
	EndTime   *string `gorm:"column:end_time;size:5" json:"end_time,omitempty"`

	Timezone string `gorm:"column:timezone;size:50;default:Africa/Cairo" json:"timezone"`
	IsActive bool   `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for BannerSchedule model
func (BannerSchedule) TableName() string {
	return "banner_schedules"
}

// DaysList returns the configured weekdays as integers
func (s *BannerSchedule) DaysList() []int {
	if s.DaysOfWeek == "" {
		return nil
	}
	parts := strings.Split(s.DaysOfWeek, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	return days
}

// SetDaysList stores the weekday set as CSV
func (s *BannerSchedule) SetDaysList(days []int) {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	s.DaysOfWeek = strings.Join(parts, ",")
}

// IsScheduledAt reports whether the schedule admits the given instant.
// The weekday and time-of-day are both taken from the instant converted
// into the schedule's timezone. The two clock bounds are evaluated
// independently without wraparound; an end_time before start_time yields
// an empty window and is rejected at validation time.
func (s *BannerSchedule) IsScheduledAt(now time.Time) bool {
	if !s.IsActive {
		return false
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)

	if days := s.DaysList(); len(days) > 0 {
		// time.Weekday already numbers Sunday as 0
		day := int(local.Weekday())
		found := false
		for _, d := range days {
			if d == day {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	minutes := local.Hour()*60 + local.Minute()
	if s.StartTime != nil {
		if start, ok := ParseClock(*s.StartTime); ok && minutes < start {
			return false
		}
	}
	if s.EndTime != nil {
		if end, ok := ParseClock(*s.EndTime); ok && minutes > end {
			return false
		}
	}

	return true
}

// ParseClock parses "HH:MM" into minutes since midnight
func ParseClock(v string) (int, bool) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// BannerClickLog is a best-effort audit row for a click event. Failing to
// store one never fails the counter update.
type BannerClickLog struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BannerID  int64     `gorm:"column:banner_id;not null;index" json:"banner_id"`
	UserID    int64     `gorm:"column:user_id" json:"user_id,omitempty"`
	IPAddress string    `gorm:"column:ip_address;size:45" json:"ip_address,omitempty"`
	UserAgent string    `gorm:"column:user_agent;size:500" json:"user_agent,omitempty"`
	Referer   string    `gorm:"column:referer;size:500" json:"referer,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for BannerClickLog model
func (BannerClickLog) TableName() string {
	return "banner_click_logs"
}

// ClickContext carries best-effort audit data for a click event
type ClickContext struct {
	UserID    int64  `json:"user_id,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Referer   string `json:"referer,omitempty"`
	// first click by this visitor today
	Unique bool `json:"unique,omitempty"`
}

// ScheduleInput is the request shape for a recurring schedule
type ScheduleInput struct {
	DaysOfWeek []int   `json:"days_of_week"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Timezone   string  `json:"timezone"`
}

// CreateBannerRequest is the request body for creating a banner
type CreateBannerRequest struct {
	Title       string          `json:"title" binding:"required"`
	TitleAr     string          `json:"title_ar"`
	Content     string          `json:"content"`
	ImageURL    string          `json:"image_url"`
	AltText     string          `json:"alt_text"`
	LinkURL     string          `json:"link_url"`
	LinkText    string          `json:"link_text"`
	LinkTarget  string          `json:"link_target"`
	BannerType  string          `json:"banner_type" binding:"required"`
	Position    string          `json:"position" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Governorate *string         `json:"governorate"`
	Priority    int             `json:"priority"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	Schedules   []ScheduleInput `json:"schedules"`
	Metadata    Metadata        `json:"metadata"`

	// Supplied by the upload collaborator, already validated
	ImageFileName string `json:"image_file_name"`
	ImageFileSize int64  `json:"image_file_size"`
}

// UpdateBannerRequest is the request body for updating a banner.
// Nil fields are left unchanged.
type UpdateBannerRequest struct {
	Title       *string    `json:"title"`
	TitleAr     *string    `json:"title_ar"`
	Content     *string    `json:"content"`
	ImageURL    *string    `json:"image_url"`
	AltText     *string    `json:"alt_text"`
	LinkURL     *string    `json:"link_url"`
	LinkTarget  *string    `json:"link_target"`
	Category    *string    `json:"category"`
	Governorate *string    `json:"governorate"`
	Priority    *int       `json:"priority"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsActive    *bool      `json:"is_active"`
}

// BannerResponse is the API response format for a banner
type BannerResponse struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	TitleAr         string           `json:"title_ar,omitempty"`
	Content         string           `json:"content,omitempty"`
	ImageURL        string           `json:"image_url,omitempty"`
	AltText         string           `json:"alt_text,omitempty"`
	LinkURL         string           `json:"link_url,omitempty"`
	LinkText        string           `json:"link_text,omitempty"`
	LinkTarget      string           `json:"link_target"`
	TypeID          int64            `json:"type_id"`
	PositionID      int64            `json:"position_id"`
	Category        string           `json:"category"`
	Governorate     *string          `json:"governorate,omitempty"`
	Priority        int              `json:"priority"`
	StartDate       *time.Time       `json:"start_date,omitempty"`
	EndDate         *time.Time       `json:"end_date,omitempty"`
	IsActive        bool             `json:"is_active"`
	IsPublished     bool             `json:"is_published"`
	ShowCloseButton bool             `json:"show_close_button"`
	AutoHideAfter   int              `json:"auto_hide_after,omitempty"`
	AnimationType   string           `json:"animation_type"`
	Metadata        Metadata         `json:"metadata,omitempty"`
	ViewCount       int64            `json:"view_count"`
	ClickCount      int64            `json:"click_count"`
	CTR             float64          `json:"ctr"`
	Schedules       []BannerSchedule `json:"schedules,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	PublishedAt     *time.Time       `json:"published_at,omitempty"`
}

// ToResponse converts Banner to BannerResponse
func (b *Banner) ToResponse() BannerResponse {
	return BannerResponse{
		ID:              b.ID,
		Title:           b.Title,
		TitleAr:         b.TitleAr,
		Content:         b.Content,
		ImageURL:        b.ImageURL,
		AltText:         b.AltText,
		LinkURL:         b.LinkURL,
		LinkText:        b.LinkText,
		LinkTarget:      b.LinkTarget,
		TypeID:          b.TypeID,
		PositionID:      b.PositionID,
		Category:        b.Category,
		Governorate:     b.Governorate,
		Priority:        b.Priority,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		IsActive:        b.IsActive,
		IsPublished:     b.IsPublished,
		ShowCloseButton: b.ShowCloseButton,
		AutoHideAfter:   b.AutoHideAfter,
		AnimationType:   b.AnimationType,
		Metadata:        b.Metadata,
		ViewCount:       b.ViewCount,
		ClickCount:      b.ClickCount,
		CTR:             b.CTR(),
		Schedules:       b.Schedules,
		CreatedAt:       b.CreatedAt,
		PublishedAt:     b.PublishedAt,
	}
}

// BannerListResponse is the response for a list of banners at a position
type BannerListResponse struct {
	Banners  []BannerResponse `json:"banners"`
	Total    int              `json:"total"`
	Position string           `json:"position,omitempty"`
}
