package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
)

// SettingRepository defines the interface for banner settings
type SettingRepository interface {
	FindByKey(key string) (*domain.BannerSetting, error)
	List() ([]*domain.BannerSetting, error)
	UpdateValue(key, value string) error
}

// settingRepository implements SettingRepository with GORM
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// FindByKey returns one setting row
func (r *settingRepository) FindByKey(key string) (*domain.BannerSetting, error) {
	var s domain.BannerSetting
	err := r.db.Where("setting_key = ?", key).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns every setting ordered by key
func (r *settingRepository) List() ([]*domain.BannerSetting, error) {
	var settings []*domain.BannerSetting
	err := r.db.Order("setting_key ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateValue changes a setting's stored value
func (r *settingRepository) UpdateValue(key, value string) error {
	result := r.db.Model(&domain.BannerSetting{}).
		Where("setting_key = ?", key).
		Update("setting_value", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}
