package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/naebak/banner-backend/internal/domain"
)

// openTestDB opens an isolated in-memory SQLite database per test. The
// shared-cache DSN keeps every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.BannerType{},
		&domain.BannerPosition{},
		&domain.Governorate{},
		&domain.Banner{},
		&domain.BannerSchedule{},
		&domain.BannerStat{},
		&domain.BannerClickLog{},
		&domain.UserBanner{},
		&domain.PageBanner{},
		&domain.BannerPermission{},
		&domain.BannerSetting{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func mustCreateBanner(t *testing.T, db *gorm.DB, b *domain.Banner) *domain.Banner {
	t.Helper()
	if b.Title == "" {
		b.Title = "test banner"
	}
	if b.Category == "" {
		b.Category = "political"
	}
	if b.TypeID == 0 {
		b.TypeID = 1
	}
	if b.PositionID == 0 {
		b.PositionID = 1
	}
	require.NoError(t, db.Create(b).Error)
	return b
}
