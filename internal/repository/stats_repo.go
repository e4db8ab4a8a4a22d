package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/naebak/banner-backend/internal/domain"
)

// StatsRepository defines the interface for banner analytics data access.
// Counter updates run as SQL arithmetic so concurrent recorders never lose
// increments to read-modify-write races.
type StatsRepository interface {
	IncrementView(bannerID int64, at time.Time, unique bool) error
	IncrementClick(bannerID int64, at time.Time, unique bool) error
	RecordViewDuration(bannerID int64, at time.Time, seconds float64) error
	CreateClickLog(log *domain.BannerClickLog) error

	FindDaily(bannerID int64, date time.Time) (*domain.BannerStat, error)
	Range(bannerID int64, from, to time.Time) ([]domain.BannerStat, error)
	TopByViews(from, to time.Time, limit int) ([]domain.BannerStat, error)
}

// statsRepository implements StatsRepository with GORM
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// IncrementView bumps the banner's lifetime view counter and the day's
// rollup in one transaction. The rollup row is upserted so the first event
// of a day creates it and later events land on the same row.
func (r *statsRepository) IncrementView(bannerID int64, at time.Time, unique bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Banner{}).
			Where("id = ?", bannerID).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
			return err
		}

		uniqueInc := int64(0)
		if unique {
			uniqueInc = 1
		}

		row := domain.BannerStat{
			BannerID:    bannerID,
			Date:        domain.DateKey(at),
			Views:       1,
			UniqueViews: uniqueInc,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "banner_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"views":        gorm.Expr("views + 1"),
				"unique_views": gorm.Expr("unique_views + ?", uniqueInc),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		return r.refreshDerived(tx, bannerID, at)
	})
}

// IncrementClick bumps the banner's lifetime click counter and the day's
// rollup in one transaction
func (r *statsRepository) IncrementClick(bannerID int64, at time.Time, unique bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Banner{}).
			Where("id = ?", bannerID).
			UpdateColumn("click_count", gorm.Expr("click_count + 1")).Error; err != nil {
			return err
		}

		uniqueInc := int64(0)
		if unique {
			uniqueInc = 1
		}

		row := domain.BannerStat{
			BannerID:     bannerID,
			Date:         domain.DateKey(at),
			Clicks:       1,
			UniqueClicks: uniqueInc,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "banner_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"clicks":        gorm.Expr("clicks + 1"),
				"unique_clicks": gorm.Expr("unique_clicks + ?", uniqueInc),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		return r.refreshDerived(tx, bannerID, at)
	})
}

// RecordViewDuration folds a reported dwell time into the day's rollup.
// A dwell below the bounce threshold also counts as a bounce.
func (r *statsRepository) RecordViewDuration(bannerID int64, at time.Time, seconds float64) error {
	if seconds <= 0 {
		return nil
	}

	bounceInc := int64(0)
	if seconds < domain.BounceThresholdSeconds {
		bounceInc = 1
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		row := domain.BannerStat{
			BannerID:        bannerID,
			Date:            domain.DateKey(at),
			DurationSum:     seconds,
			DurationSamples: 1,
			Bounces:         bounceInc,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "banner_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"view_duration_sum":     gorm.Expr("view_duration_sum + ?", seconds),
				"view_duration_samples": gorm.Expr("view_duration_samples + 1"),
				"bounces":               gorm.Expr("bounces + ?", bounceInc),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		return r.refreshDerived(tx, bannerID, at)
	})
}

// refreshDerived recomputes the derived rate columns on the day's rollup
// from its own counters. Plain SQL so it works on both MySQL and SQLite;
// each rate reads only raw counters, never another derived column.
func (r *statsRepository) refreshDerived(tx *gorm.DB, bannerID int64, at time.Time) error {
	return tx.Model(&domain.BannerStat{}).
		Where("banner_id = ? AND date = ?", bannerID, domain.DateKey(at)).
		UpdateColumns(map[string]interface{}{
			"ctr": gorm.Expr(
				"ROUND(clicks * 100.0 / (CASE WHEN views < 1 THEN 1 ELSE views END), 2)"),
			"avg_view_duration": gorm.Expr(
				"ROUND(view_duration_sum / (CASE WHEN view_duration_samples < 1 THEN 1 ELSE view_duration_samples END), 2)"),
			"bounce_rate": gorm.Expr(
				"ROUND(bounces * 100.0 / (CASE WHEN view_duration_samples < 1 THEN 1 ELSE view_duration_samples END), 2)"),
			"conversion_rate": gorm.Expr(
				"ROUND(unique_clicks * 100.0 / (CASE WHEN unique_views < 1 THEN 1 ELSE unique_views END), 2)"),
		}).Error
}

// CreateClickLog stores an audit row for a click event
func (r *statsRepository) CreateClickLog(log *domain.BannerClickLog) error {
	return r.db.Create(log).Error
}

// FindDaily returns one banner's rollup for one day
func (r *statsRepository) FindDaily(bannerID int64, date time.Time) (*domain.BannerStat, error) {
	var stat domain.BannerStat
	err := r.db.
		Where("banner_id = ? AND date = ?", bannerID, domain.DateKey(date)).
		First(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// Range returns a banner's rollups over an inclusive date range, oldest
// first. A zero from or to leaves that side of the range open, so two zero
// bounds return the banner's full history.
func (r *statsRepository) Range(bannerID int64, from, to time.Time) ([]domain.BannerStat, error) {
	var stats []domain.BannerStat
	err := boundedByDate(r.db.Where("banner_id = ?", bannerID), from, to).
		Order("date ASC").
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// TopByViews returns the busiest rollup rows in a range, for admin
// dashboards. Zero bounds leave the range open, as in Range.
func (r *statsRepository) TopByViews(from, to time.Time, limit int) ([]domain.BannerStat, error) {
	if limit < 1 {
		limit = 10
	}
	var stats []domain.BannerStat
	err := boundedByDate(r.db, from, to).
		Order("views DESC").
		Limit(limit).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func boundedByDate(q *gorm.DB, from, to time.Time) *gorm.DB {
	if !from.IsZero() {
		q = q.Where("date >= ?", domain.DateKey(from))
	}
	if !to.IsZero() {
		q = q.Where("date <= ?", domain.DateKey(to))
	}
	return q
}
