package service

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/repository"
)

var (
	bannerViewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "banner_views_total",
		Help: "Total number of recorded banner views",
	}, []string{"banner_id"})

	bannerClicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "banner_clicks_total",
		Help: "Total number of recorded banner clicks",
	}, []string{"banner_id"})
)

// AnalyticsService defines view/click recording and reporting
type AnalyticsService interface {
	RecordView(bannerID int64, unique bool) error
	RecordViewDuration(bannerID int64, seconds float64) error
	RecordClick(bannerID int64, clickCtx *domain.ClickContext) error

	Summary(bannerID int64, from, to time.Time) (*domain.AnalyticsSummary, error)
	TopBanners(from, to time.Time, limit int) ([]domain.BannerStat, error)
}

type analyticsService struct {
	stats repository.StatsRepository
	now   func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(stats repository.StatsRepository) AnalyticsService {
	return &analyticsService{stats: stats, now: time.Now}
}

// RecordView bumps the lifetime and daily view counters
func (s *analyticsService) RecordView(bannerID int64, unique bool) error {
	if err := s.stats.IncrementView(bannerID, s.now(), unique); err != nil {
		return err
	}
	bannerViewsTotal.WithLabelValues(strconv.FormatInt(bannerID, 10)).Inc()
	return nil
}

// RecordViewDuration folds a reported dwell time into today's rollup.
// Non-positive reports are dropped.
func (s *analyticsService) RecordViewDuration(bannerID int64, seconds float64) error {
	return s.stats.RecordViewDuration(bannerID, s.now(), seconds)
}

// RecordClick bumps the click counters and stores an audit row. The audit
// write is best effort: a failed log never loses the counted click.
func (s *analyticsService) RecordClick(bannerID int64, clickCtx *domain.ClickContext) error {
	unique := clickCtx != nil && clickCtx.Unique
	if err := s.stats.IncrementClick(bannerID, s.now(), unique); err != nil {
		return err
	}
	bannerClicksTotal.WithLabelValues(strconv.FormatInt(bannerID, 10)).Inc()

	if clickCtx != nil {
		logRow := &domain.BannerClickLog{
			BannerID:  bannerID,
			UserID:    clickCtx.UserID,
			IPAddress: clickCtx.IPAddress,
			UserAgent: clickCtx.UserAgent,
			Referer:   clickCtx.Referer,
		}
		if err := s.stats.CreateClickLog(logRow); err != nil {
			log.Warn().Err(err).Int64("banner_id", bannerID).Msg("click log write failed")
		}
	}

	return nil
}

// Summary aggregates a banner's daily rollups over an inclusive date range.
// A zero from or to leaves that side open, so two zero bounds cover the
// banner's full recorded history.
func (s *analyticsService) Summary(bannerID int64, from, to time.Time) (*domain.AnalyticsSummary, error) {
	daily, err := s.stats.Range(bannerID, from, to)
	if err != nil {
		return nil, err
	}

	summary := &domain.AnalyticsSummary{
		BannerID: bannerID,
		From:     dateBound(from),
		To:       dateBound(to),
		Daily:    daily,
	}
	summary.Recalculate()
	return summary, nil
}

func dateBound(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	day := domain.DateKey(t)
	return &day
}

// TopBanners returns the busiest rollup rows in a range
func (s *analyticsService) TopBanners(from, to time.Time, limit int) ([]domain.BannerStat, error) {
	return s.stats.TopByViews(from, to, limit)
}
