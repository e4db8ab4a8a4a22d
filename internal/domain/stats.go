package domain

import (
	"math"
	"time"
)

// BounceThresholdSeconds is the dwell time under which a reported view
// counts as a bounce.
const BounceThresholdSeconds = 10.0

// BannerStat is one banner's rollup for one calendar day. A row is created
// lazily on the first event of the day and updated in place afterwards.
// The rate columns are maintained as derived values so range queries never
// recompute them.
type BannerStat struct {
	ID       int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BannerID int64     `gorm:"column:banner_id;not null;uniqueIndex:idx_banner_date,priority:1" json:"banner_id"`
	Date     time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_banner_date,priority:2" json:"date"`

	Views        int64 `gorm:"column:views;default:0" json:"views"`
	Clicks       int64 `gorm:"column:clicks;default:0" json:"clicks"`
	UniqueViews  int64 `gorm:"column:unique_views;default:0" json:"unique_views"`
	UniqueClicks int64 `gorm:"column:unique_clicks;default:0" json:"unique_clicks"`

	// Raw dwell-time counters feeding the derived rates below. Duration is
	// only reported by clients that send a view-end ping, so the sample
	// count runs separately from the view count.
	DurationSum     float64 `gorm:"column:view_duration_sum;default:0" json:"-"`
	DurationSamples int64   `gorm:"column:view_duration_samples;default:0" json:"-"`
	Bounces         int64   `gorm:"column:bounces;default:0" json:"-"`

	// clicks / max(views, 1) * 100, rounded to 2 decimals
	CTR float64 `gorm:"column:ctr;default:0" json:"ctr"`
	// mean reported dwell time in seconds
	AvgViewDuration float64 `gorm:"column:avg_view_duration;default:0" json:"avg_view_duration"`
	// bounces / max(duration samples, 1) * 100
	BounceRate float64 `gorm:"column:bounce_rate;default:0" json:"bounce_rate"`
	// unique clicks / max(unique views, 1) * 100
	ConversionRate float64 `gorm:"column:conversion_rate;default:0" json:"conversion_rate"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for BannerStat model
func (BannerStat) TableName() string {
	return "banner_stats"
}

// RecalculateDerived refreshes the derived rate columns from the raw
// counters. Divisors clamp to 1 so a click or bounce recorded before its
// first view never divides by zero.
func (s *BannerStat) RecalculateDerived() {
	s.CTR = roundedRate(float64(s.Clicks)*100, float64(s.Views))
	s.AvgViewDuration = roundedRate(s.DurationSum, float64(s.DurationSamples))
	s.BounceRate = roundedRate(float64(s.Bounces)*100, float64(s.DurationSamples))
	s.ConversionRate = roundedRate(float64(s.UniqueClicks)*100, float64(s.UniqueViews))
}

func roundedRate(numerator, divisor float64) float64 {
	if divisor < 1 {
		divisor = 1
	}
	return math.Round(numerator/divisor*100) / 100
}

// DateKey truncates an instant to its UTC calendar day, the granularity at
// which rollup rows are keyed.
func DateKey(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC)
}

// AnalyticsSummary aggregates a banner's rollups over a date range
type AnalyticsSummary struct {
	BannerID     int64        `json:"banner_id"`
	From         *time.Time   `json:"from,omitempty"`
	To           *time.Time   `json:"to,omitempty"`
	TotalViews   int64        `json:"total_views"`
	TotalClicks  int64        `json:"total_clicks"`
	UniqueViews  int64        `json:"unique_views"`
	UniqueClicks int64        `json:"unique_clicks"`
	OverallCTR   float64      `json:"overall_ctr"`
	LastViewed   *time.Time   `json:"last_viewed,omitempty"`
	Daily        []BannerStat `json:"daily"`
}

// Recalculate fills the aggregate fields from the Daily rows.
// UniqueViews and UniqueClicks sum daily uniques, so a visitor active on
// several days is counted once per day. LastViewed is the update time of
// the most recent rollup that recorded at least one view.
func (a *AnalyticsSummary) Recalculate() {
	a.TotalViews = 0
	a.TotalClicks = 0
	a.UniqueViews = 0
	a.UniqueClicks = 0
	a.LastViewed = nil
	for i := range a.Daily {
		a.TotalViews += a.Daily[i].Views
		a.TotalClicks += a.Daily[i].Clicks
		a.UniqueViews += a.Daily[i].UniqueViews
		a.UniqueClicks += a.Daily[i].UniqueClicks
		if a.Daily[i].Views > 0 {
			if a.LastViewed == nil || a.Daily[i].UpdatedAt.After(*a.LastViewed) {
				at := a.Daily[i].UpdatedAt
				a.LastViewed = &at
			}
		}
	}
	a.OverallCTR = roundedRate(float64(a.TotalClicks)*100, float64(a.TotalViews))
}
