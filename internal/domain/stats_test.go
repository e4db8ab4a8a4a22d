package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateDerived(t *testing.T) {
	s := BannerStat{Views: 200, Clicks: 7}
	s.RecalculateDerived()
	assert.Equal(t, 3.5, s.CTR)

	s = BannerStat{Views: 0, Clicks: 0}
	s.RecalculateDerived()
	assert.Equal(t, 0.0, s.CTR)

	// A click recorded before any view must not divide by zero
	s = BannerStat{Views: 0, Clicks: 3}
	s.RecalculateDerived()
	assert.Equal(t, 300.0, s.CTR)
}

func TestRecalculateDerivedEngagement(t *testing.T) {
	s := BannerStat{
		Views:           100,
		UniqueViews:     80,
		UniqueClicks:    20,
		DurationSum:     90,
		DurationSamples: 4,
		Bounces:         1,
	}
	s.RecalculateDerived()

	assert.Equal(t, 22.5, s.AvgViewDuration)
	assert.Equal(t, 25.0, s.BounceRate)
	assert.Equal(t, 25.0, s.ConversionRate)

	// No dwell samples yet leaves the dwell-derived rates at zero
	s = BannerStat{Views: 10}
	s.RecalculateDerived()
	assert.Equal(t, 0.0, s.AvgViewDuration)
	assert.Equal(t, 0.0, s.BounceRate)
}

func TestDateKey(t *testing.T) {
	// 23:30 in Cairo on Jan 15 is 21:30 UTC the same day
	cairo, err := time.LoadLocation("Africa/Cairo")
	assert.NoError(t, err)

	at := time.Date(2025, 1, 15, 23, 30, 0, 0, cairo)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), DateKey(at))

	// 01:30 in Cairo on Jan 16 is still Jan 15 in UTC
	at = time.Date(2025, 1, 16, 1, 30, 0, 0, cairo)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), DateKey(at))
}

func TestAnalyticsSummaryRecalculate(t *testing.T) {
	day1 := time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 1, 16, 9, 30, 0, 0, time.UTC)

	sum := AnalyticsSummary{
		BannerID: 1,
		Daily: []BannerStat{
			{Views: 100, Clicks: 5, UniqueViews: 80, UniqueClicks: 4, UpdatedAt: day1},
			{Views: 300, Clicks: 10, UniqueViews: 200, UniqueClicks: 8, UpdatedAt: day2},
		},
	}
	sum.Recalculate()

	assert.Equal(t, int64(400), sum.TotalViews)
	assert.Equal(t, int64(15), sum.TotalClicks)
	assert.Equal(t, int64(280), sum.UniqueViews)
	assert.Equal(t, int64(12), sum.UniqueClicks)
	assert.Equal(t, 3.75, sum.OverallCTR)

	// LastViewed tracks the newest rollup that actually saw a view
	assert.NotNil(t, sum.LastViewed)
	assert.Equal(t, day2, *sum.LastViewed)
}

func TestAnalyticsSummaryLastViewedSkipsViewlessDays(t *testing.T) {
	viewed := time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)
	clickedOnly := time.Date(2025, 1, 16, 9, 30, 0, 0, time.UTC)

	sum := AnalyticsSummary{
		BannerID: 1,
		Daily: []BannerStat{
			{Views: 10, Clicks: 1, UpdatedAt: viewed},
			{Views: 0, Clicks: 2, UpdatedAt: clickedOnly},
		},
	}
	sum.Recalculate()

	assert.NotNil(t, sum.LastViewed)
	assert.Equal(t, viewed, *sum.LastViewed)
}

func TestAnalyticsSummaryRecalculateEmpty(t *testing.T) {
	sum := AnalyticsSummary{BannerID: 1}
	sum.Recalculate()
	assert.Equal(t, int64(0), sum.TotalViews)
	assert.Equal(t, 0.0, sum.OverallCTR)
	assert.Nil(t, sum.LastViewed)
}
