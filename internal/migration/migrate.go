package migration

import (
	"gorm.io/gorm"

	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/taxonomy"
)

// Run executes AutoMigrate for every banner table and seeds reference data
// into empty tables. Safe to run on every startup.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
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
	); err != nil {
		return err
	}

	return seed(db)
}

// seed inserts reference rows only when the table is empty, so operator
// edits survive restarts
func seed(db *gorm.DB) error {
	var count int64

	db.Model(&domain.BannerType{}).Count(&count)
	if count == 0 {
		types := taxonomy.SeedTypes()
		if err := db.Create(&types).Error; err != nil {
			return err
		}
	}

	db.Model(&domain.BannerPosition{}).Count(&count)
	if count == 0 {
		positions := taxonomy.SeedPositions()
		if err := db.Create(&positions).Error; err != nil {
			return err
		}
	}

	db.Model(&domain.Governorate{}).Count(&count)
	if count == 0 {
		govs := taxonomy.SeedGovernorates()
		if err := db.Create(&govs).Error; err != nil {
			return err
		}
	}

	db.Model(&domain.BannerSetting{}).Count(&count)
	if count == 0 {
		settings := taxonomy.SeedSettings()
		if err := db.Create(&settings).Error; err != nil {
			return err
		}
	}

	db.Model(&domain.BannerPermission{}).Count(&count)
	if count == 0 {
		perms := taxonomy.SeedPermissions()
		if err := db.Create(&perms).Error; err != nil {
			return err
		}
	}

	return nil
}
