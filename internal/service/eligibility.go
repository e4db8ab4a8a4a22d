package service

import (
	"sort"
	"time"

	"github.com/naebak/banner-backend/internal/domain"
)

// FilterLive returns the banners eligible for display at the given instant,
// preserving input order. Pure function over already-loaded banners; all
// timezone handling lives in the schedule evaluation.
func FilterLive(banners []*domain.Banner, now time.Time) []*domain.Banner {
	live := make([]*domain.Banner, 0, len(banners))
	for _, b := range banners {
		if b.IsLiveAt(now) {
			live = append(live, b)
		}
	}
	return live
}

// SelectForPosition applies the display ordering and the position's capacity
// ceiling to a set of live banners. Ordering: priority ascending (1 first),
// then newest created. Input order is not trusted.
func SelectForPosition(live []*domain.Banner, position domain.BannerPosition) []*domain.Banner {
	selected := make([]*domain.Banner, len(live))
	copy(selected, live)

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Priority != selected[j].Priority {
			return selected[i].Priority < selected[j].Priority
		}
		return selected[i].CreatedAt.After(selected[j].CreatedAt)
	})

	max := position.MaxBanners
	if max < 1 {
		max = 1
	}
	if len(selected) > max {
		selected = selected[:max]
	}
	return selected
}

// MaxRecommendations is the hard ceiling on a recommendation feed. The
// configured limit can shrink the feed but never grow it past this.
const MaxRecommendations = 5

// RankForRecommendation orders live banners for the recommendation feed:
// priority ascending, then lifetime views descending, capped at limit.
func RankForRecommendation(live []*domain.Banner, limit int) []*domain.Banner {
	ranked := make([]*domain.Banner, len(live))
	copy(ranked, live)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority < ranked[j].Priority
		}
		return ranked[i].ViewCount > ranked[j].ViewCount
	})

	if limit < 1 || limit > MaxRecommendations {
		limit = MaxRecommendations
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
