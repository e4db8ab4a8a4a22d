package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
)

// BannerRepository defines the interface for banner data access
type BannerRepository interface {
	Create(banner *domain.Banner) error
	FindByID(id int64) (*domain.Banner, error)
	Update(banner *domain.Banner) error
	UpdateFields(id int64, fields map[string]interface{}) error
	Delete(id int64) error

	List(filter BannerFilter) ([]*domain.Banner, int64, error)
	ListForPosition(positionID int64, category string, governorate *string) ([]*domain.Banner, error)
	CountByCreator(userID int64) (int64, error)

	ReplaceSchedules(bannerID int64, schedules []domain.BannerSchedule) error
	SetPublished(id int64, published bool) error
}

// BannerFilter narrows admin listings
type BannerFilter struct {
	PositionID *int64
	Category   string
	CreatedBy  *int64
	IsActive   *bool
	Page       int
	Limit      int
}

// bannerRepository implements BannerRepository with GORM
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a new BannerRepository
func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

// Create inserts a banner together with its schedules
func (r *bannerRepository) Create(banner *domain.Banner) error {
	return r.db.Create(banner).Error
}

// FindByID finds a banner by ID with its schedules preloaded
func (r *bannerRepository) FindByID(id int64) (*domain.Banner, error) {
	var banner domain.Banner
	err := r.db.
		Preload("Schedules").
		Where("id = ?", id).
		First(&banner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBannerNotFound
		}
		return nil, err
	}
	return &banner, nil
}

// Update persists every column of the banner
func (r *bannerRepository) Update(banner *domain.Banner) error {
	return r.db.Save(banner).Error
}

// UpdateFields writes a partial update without touching counters
func (r *bannerRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	result := r.db.Model(&domain.Banner{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrBannerNotFound
	}
	return nil
}

// Delete removes a banner; schedules cascade at the database level
func (r *bannerRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.Banner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrBannerNotFound
	}
	return nil
}

// List retrieves banners for admin views with paging
func (r *bannerRepository) List(filter BannerFilter) ([]*domain.Banner, int64, error) {
	query := r.db.Model(&domain.Banner{})

	if filter.PositionID != nil {
		query = query.Where("position_id = ?", *filter.PositionID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var banners []*domain.Banner
	err := query.
		Preload("Schedules").
		Order("priority ASC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&banners).Error
	if err != nil {
		return nil, 0, err
	}

	return banners, total, nil
}

// ListForPosition retrieves candidate banners for display selection.
// Liveness (date window, schedules) is evaluated in the service layer so
// the timezone logic stays in one place.
func (r *bannerRepository) ListForPosition(positionID int64, category string, governorate *string) ([]*domain.Banner, error) {
	query := r.db.
		Preload("Schedules").
		Where("position_id = ?", positionID).
		Where("is_active = ? AND is_published = ?", true, true)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if governorate != nil {
		// A banner without a governorate targets every region
		query = query.Where("governorate IS NULL OR governorate = ?", *governorate)
	}

	var banners []*domain.Banner
	err := query.
		Order("priority ASC, created_at DESC").
		Find(&banners).Error
	if err != nil {
		return nil, err
	}

	return banners, nil
}

// CountByCreator counts banners created by a user, for quota enforcement
func (r *bannerRepository) CountByCreator(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Banner{}).
		Where("created_by = ?", userID).
		Count(&count).Error
	return count, err
}

// ReplaceSchedules swaps the banner's recurring schedules atomically
func (r *bannerRepository) ReplaceSchedules(bannerID int64, schedules []domain.BannerSchedule) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("banner_id = ?", bannerID).Delete(&domain.BannerSchedule{}).Error; err != nil {
			return err
		}
		for i := range schedules {
			schedules[i].ID = 0
			schedules[i].BannerID = bannerID
		}
		if len(schedules) == 0 {
			return nil
		}
		return tx.Create(&schedules).Error
	})
}

// SetPublished flips the publish flag, stamping published_at on first publish
func (r *bannerRepository) SetPublished(id int64, published bool) error {
	fields := map[string]interface{}{
		"is_published": published,
	}
	if published {
		fields["published_at"] = gorm.Expr("CURRENT_TIMESTAMP")
	}
	result := r.db.Model(&domain.Banner{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrBannerNotFound
	}
	return nil
}
