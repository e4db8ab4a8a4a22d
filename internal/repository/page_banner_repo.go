package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
)

// PageBannerRepository defines the interface for page hero creatives
type PageBannerRepository interface {
	Create(pb *domain.PageBanner) error
	FindByID(id int64) (*domain.PageBanner, error)
	FindByPageKey(pageKey string) (*domain.PageBanner, error)
	Update(pb *domain.PageBanner) error
	Delete(id int64) error

	List() ([]*domain.PageBanner, error)
}

// pageBannerRepository implements PageBannerRepository with GORM
type pageBannerRepository struct {
	db *gorm.DB
}

// NewPageBannerRepository creates a new PageBannerRepository
func NewPageBannerRepository(db *gorm.DB) PageBannerRepository {
	return &pageBannerRepository{db: db}
}

// Create inserts a page banner
func (r *pageBannerRepository) Create(pb *domain.PageBanner) error {
	return r.db.Create(pb).Error
}

// FindByID finds a page banner by ID
func (r *pageBannerRepository) FindByID(id int64) (*domain.PageBanner, error) {
	var pb domain.PageBanner
	err := r.db.Where("id = ?", id).First(&pb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPageBannerNotFound
		}
		return nil, err
	}
	return &pb, nil
}

// FindByPageKey finds a page banner by its unique page key
func (r *pageBannerRepository) FindByPageKey(pageKey string) (*domain.PageBanner, error) {
	var pb domain.PageBanner
	err := r.db.Where("page_key = ?", pageKey).First(&pb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPageBannerNotFound
		}
		return nil, err
	}
	return &pb, nil
}

// Update persists a page banner
func (r *pageBannerRepository) Update(pb *domain.PageBanner) error {
	return r.db.Save(pb).Error
}

// Delete removes a page banner
func (r *pageBannerRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.PageBanner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPageBannerNotFound
	}
	return nil
}

// List returns every page banner, ordered by page key
func (r *pageBannerRepository) List() ([]*domain.PageBanner, error) {
	var banners []*domain.PageBanner
	err := r.db.Order("page_key ASC").Find(&banners).Error
	if err != nil {
		return nil, err
	}
	return banners, nil
}
