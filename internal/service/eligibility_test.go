package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naebak/banner-backend/internal/domain"
)

func liveBanner(id int64, priority int, created time.Time) *domain.Banner {
	return &domain.Banner{
		ID:          id,
		Priority:    priority,
		IsActive:    true,
		IsPublished: true,
		CreatedAt:   created,
	}
}

func TestFilterLive(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	past := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	expired := liveBanner(2, 1, past)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	expired.EndDate = &end

	unpublished := liveBanner(3, 1, past)
	unpublished.IsPublished = false

	live := FilterLive([]*domain.Banner{liveBanner(1, 1, past), expired, unpublished}, now)

	assert.Len(t, live, 1)
	assert.Equal(t, int64(1), live[0].ID)
}

func TestSelectForPosition(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	banners := []*domain.Banner{
		liveBanner(1, 3, base),
		liveBanner(2, 1, base),
		liveBanner(3, 1, base.Add(time.Hour)),
		liveBanner(4, 5, base),
	}

	t.Run("orders by priority then recency", func(t *testing.T) {
		out := SelectForPosition(banners, domain.BannerPosition{MaxBanners: 10})
		ids := []int64{out[0].ID, out[1].ID, out[2].ID, out[3].ID}
		assert.Equal(t, []int64{3, 2, 1, 4}, ids)
	})

	t.Run("capacity truncates", func(t *testing.T) {
		out := SelectForPosition(banners, domain.BannerPosition{MaxBanners: 1})
		assert.Len(t, out, 1)
		assert.Equal(t, int64(3), out[0].ID)
	})

	t.Run("zero capacity behaves as one", func(t *testing.T) {
		out := SelectForPosition(banners, domain.BannerPosition{})
		assert.Len(t, out, 1)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		SelectForPosition(banners, domain.BannerPosition{MaxBanners: 1})
		assert.Equal(t, int64(1), banners[0].ID)
	})
}

func TestRankForRecommendation(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	popular := liveBanner(1, 2, base)
	popular.ViewCount = 500
	quiet := liveBanner(2, 2, base)
	quiet.ViewCount = 10
	urgent := liveBanner(3, 1, base)

	out := RankForRecommendation([]*domain.Banner{quiet, popular, urgent}, 2)

	assert.Len(t, out, 2)
	assert.Equal(t, int64(3), out[0].ID)
	assert.Equal(t, int64(1), out[1].ID)
}

func TestRankForRecommendationDefaultLimit(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var banners []*domain.Banner
	for i := int64(1); i <= 8; i++ {
		banners = append(banners, liveBanner(i, 3, base))
	}

	out := RankForRecommendation(banners, 0)
	assert.Len(t, out, 5)
}

func TestRankForRecommendationCeiling(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var banners []*domain.Banner
	for i := int64(1); i <= 8; i++ {
		banners = append(banners, liveBanner(i, 3, base))
	}

	// A configured limit above the ceiling is clamped, never honored
	out := RankForRecommendation(banners, 20)
	assert.Len(t, out, MaxRecommendations)
}
