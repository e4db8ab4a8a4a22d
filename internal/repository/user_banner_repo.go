package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
)

// UserBannerRepository defines the interface for user banner submissions
type UserBannerRepository interface {
	Create(ub *domain.UserBanner) error
	FindByID(id int64) (*domain.UserBanner, error)
	Update(ub *domain.UserBanner) error
	Delete(id int64) error

	ListByUser(userID int64) ([]*domain.UserBanner, error)
	ListByStatus(status string, page, limit int) ([]*domain.UserBanner, int64, error)
	CountByUser(userID int64) (int64, error)
}

// userBannerRepository implements UserBannerRepository with GORM
type userBannerRepository struct {
	db *gorm.DB
}

// NewUserBannerRepository creates a new UserBannerRepository
func NewUserBannerRepository(db *gorm.DB) UserBannerRepository {
	return &userBannerRepository{db: db}
}

// Create inserts a user banner submission
func (r *userBannerRepository) Create(ub *domain.UserBanner) error {
	return r.db.Create(ub).Error
}

// FindByID finds a submission by ID
func (r *userBannerRepository) FindByID(id int64) (*domain.UserBanner, error) {
	var ub domain.UserBanner
	err := r.db.Where("id = ?", id).First(&ub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserBannerNotFound
		}
		return nil, err
	}
	return &ub, nil
}

// Update persists a submission
func (r *userBannerRepository) Update(ub *domain.UserBanner) error {
	return r.db.Save(ub).Error
}

// Delete removes a submission
func (r *userBannerRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.UserBanner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrUserBannerNotFound
	}
	return nil
}

// ListByUser returns a user's submissions, newest first
func (r *userBannerRepository) ListByUser(userID int64) ([]*domain.UserBanner, error) {
	var subs []*domain.UserBanner
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// ListByStatus returns submissions in a moderation state with paging
func (r *userBannerRepository) ListByStatus(status string, page, limit int) ([]*domain.UserBanner, int64, error) {
	query := r.db.Model(&domain.UserBanner{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var subs []*domain.UserBanner
	err := query.
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

// CountByUser counts a user's submissions, for quota enforcement
func (r *userBannerRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.UserBanner{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
