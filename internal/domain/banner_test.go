package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestBannerIsLiveAt(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 20, 23, 59, 59, 0, time.UTC)

	base := Banner{
		IsActive:    true,
		IsPublished: true,
		StartDate:   timePtr(start),
		EndDate:     timePtr(end),
	}

	t.Run("inside window", func(t *testing.T) {
		b := base
		assert.True(t, b.IsLiveAt(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("before start", func(t *testing.T) {
		b := base
		assert.False(t, b.IsLiveAt(time.Date(2025, 1, 9, 23, 0, 0, 0, time.UTC)))
	})

	t.Run("after end", func(t *testing.T) {
		b := base
		assert.False(t, b.IsLiveAt(time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("inactive never shows", func(t *testing.T) {
		b := base
		b.IsActive = false
		assert.False(t, b.IsLiveAt(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("unpublished never shows", func(t *testing.T) {
		b := base
		b.IsPublished = false
		assert.False(t, b.IsLiveAt(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("open-ended window", func(t *testing.T) {
		b := Banner{IsActive: true, IsPublished: true}
		assert.True(t, b.IsLiveAt(time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("schedule restricts weekday", func(t *testing.T) {
		b := base
		b.Schedules = []BannerSchedule{{
			DaysOfWeek: "6", // Saturday only
			Timezone:   "UTC",
			IsActive:   true,
		}}
		// 2025-01-18 is a Saturday, 2025-01-15 a Wednesday
		assert.True(t, b.IsLiveAt(time.Date(2025, 1, 18, 12, 0, 0, 0, time.UTC)))
		assert.False(t, b.IsLiveAt(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("matching any schedule is enough", func(t *testing.T) {
		b := base
		b.Schedules = []BannerSchedule{
			{DaysOfWeek: "1", Timezone: "UTC", IsActive: true},
			{DaysOfWeek: "6", Timezone: "UTC", IsActive: true},
		}
		assert.True(t, b.IsLiveAt(time.Date(2025, 1, 18, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("inactive schedules are ignored", func(t *testing.T) {
		b := base
		b.Schedules = []BannerSchedule{{
			DaysOfWeek: "1",
			Timezone:   "UTC",
			IsActive:   false,
		}}
		// Only schedule is inactive, so the banner behaves as unscheduled
		assert.True(t, b.IsLiveAt(time.Date(2025, 1, 18, 12, 0, 0, 0, time.UTC)))
	})
}

func TestScheduleTimeWindow(t *testing.T) {
	s := BannerSchedule{
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("17:00"),
		Timezone:  "UTC",
		IsActive:  true,
	}

	assert.True(t, s.IsScheduledAt(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)))
	assert.True(t, s.IsScheduledAt(time.Date(2025, 1, 15, 17, 0, 0, 0, time.UTC)))
	assert.False(t, s.IsScheduledAt(time.Date(2025, 1, 15, 8, 59, 0, 0, time.UTC)))
	assert.False(t, s.IsScheduledAt(time.Date(2025, 1, 15, 17, 1, 0, 0, time.UTC)))
}

func TestScheduleTimezoneConversion(t *testing.T) {
	// 07:30 UTC is 09:30 in Cairo (UTC+2 in January)
	s := BannerSchedule{
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("10:00"),
		Timezone:  "Africa/Cairo",
		IsActive:  true,
	}
	assert.True(t, s.IsScheduledAt(time.Date(2025, 1, 15, 7, 30, 0, 0, time.UTC)))
	assert.False(t, s.IsScheduledAt(time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)))
}

func TestScheduleUnknownTimezoneFallsBackToUTC(t *testing.T) {
	s := BannerSchedule{
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("10:00"),
		Timezone:  "Not/AZone",
		IsActive:  true,
	}
	assert.True(t, s.IsScheduledAt(time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)))
}

func TestDaysListRoundTrip(t *testing.T) {
	var s BannerSchedule
	s.SetDaysList([]int{0, 3, 6})
	assert.Equal(t, "0,3,6", s.DaysOfWeek)
	assert.Equal(t, []int{0, 3, 6}, s.DaysList())

	s.DaysOfWeek = ""
	assert.Nil(t, s.DaysList())

	s.DaysOfWeek = "1, 2 ,x,5"
	assert.Equal(t, []int{1, 2, 5}, s.DaysList())
}

func TestParseClock(t *testing.T) {
	m, ok := ParseClock("09:30")
	assert.True(t, ok)
	assert.Equal(t, 570, m)

	_, ok = ParseClock("25:00")
	assert.False(t, ok)
	_, ok = ParseClock("9am")
	assert.False(t, ok)
}

func TestBannerCTR(t *testing.T) {
	b := Banner{ViewCount: 1000, ClickCount: 37}
	assert.Equal(t, 3.7, b.CTR())

	// Zero views never divides by zero
	b = Banner{ViewCount: 0, ClickCount: 5}
	assert.Equal(t, 500.0, b.CTR())

	b = Banner{ViewCount: 3, ClickCount: 1}
	assert.Equal(t, 33.33, b.CTR())
}
