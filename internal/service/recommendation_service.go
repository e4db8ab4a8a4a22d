package service

import (
	"time"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/repository"
	"github.com/naebak/banner-backend/internal/taxonomy"
)

// RecommendationService picks the banners most worth surfacing in a
// position's recommendation feed
type RecommendationService interface {
	Recommend(positionName string, category string, governorate *string) ([]domain.BannerResponse, error)
}

type recommendationService struct {
	repo     repository.BannerRepository
	registry *taxonomy.Registry
	limit    int
	now      func() time.Time
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(repo repository.BannerRepository, registry *taxonomy.Registry, limit int) RecommendationService {
	if limit < 1 || limit > MaxRecommendations {
		limit = MaxRecommendations
	}
	return &recommendationService{
		repo:     repo,
		registry: registry,
		limit:    limit,
		now:      time.Now,
	}
}

// Recommend returns live banners re-ranked by priority then lifetime views.
// Unlike position selection, the cap is the feed limit rather than the
// position's display capacity.
func (s *recommendationService) Recommend(positionName string, category string, governorate *string) ([]domain.BannerResponse, error) {
	pos, ok := s.registry.Position(positionName)
	if !ok {
		return nil, common.ErrNotFound
	}

	banners, err := s.repo.ListForPosition(pos.ID, category, governorate)
	if err != nil {
		return nil, err
	}

	ranked := RankForRecommendation(FilterLive(banners, s.now()), s.limit)

	responses := make([]domain.BannerResponse, len(ranked))
	for i, banner := range ranked {
		responses[i] = banner.ToResponse()
	}
	return responses, nil
}
