package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
)

// PermissionRepository defines the interface for permission rows
type PermissionRepository interface {
	FindByUser(userID int64, userType string) (*domain.BannerPermission, error)
	List() ([]*domain.BannerPermission, error)
	Upsert(p *domain.BannerPermission) error
}

// permissionRepository implements PermissionRepository with GORM
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new PermissionRepository
func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

// FindByUser returns the permission row for an account
func (r *permissionRepository) FindByUser(userID int64, userType string) (*domain.BannerPermission, error) {
	var p domain.BannerPermission
	err := r.db.Where("user_id = ? AND user_type = ?", userID, userType).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns every permission row
func (r *permissionRepository) List() ([]*domain.BannerPermission, error) {
	var perms []*domain.BannerPermission
	err := r.db.Order("user_id ASC, user_type ASC").Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

// Upsert creates or replaces the row for the permission's account
func (r *permissionRepository) Upsert(p *domain.BannerPermission) error {
	var existing domain.BannerPermission
	err := r.db.Where("user_id = ? AND user_type = ?", p.UserID, p.UserType).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(p).Error
		}
		return err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	return r.db.Save(p).Error
}
