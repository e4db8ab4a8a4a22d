package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
)

// TaxonomyRepository defines the interface for reference-data access
type TaxonomyRepository interface {
	ListTypes(activeOnly bool) ([]domain.BannerType, error)
	FindTypeByName(name string) (*domain.BannerType, error)
	SaveType(t *domain.BannerType) error

	ListPositions(activeOnly bool) ([]domain.BannerPosition, error)
	FindPositionByName(name string) (*domain.BannerPosition, error)
	SavePosition(p *domain.BannerPosition) error

	ListGovernorates() ([]domain.Governorate, error)
}

// taxonomyRepository implements TaxonomyRepository with GORM
type taxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository creates a new TaxonomyRepository
func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

// ListTypes returns banner types ordered by priority
func (r *taxonomyRepository) ListTypes(activeOnly bool) ([]domain.BannerType, error) {
	query := r.db.Model(&domain.BannerType{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var types []domain.BannerType
	err := query.Order("priority ASC, name ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// FindTypeByName resolves a banner type by its unique name
func (r *taxonomyRepository) FindTypeByName(name string) (*domain.BannerType, error) {
	var t domain.BannerType
	err := r.db.Where("name = ?", name).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// SaveType creates or updates a banner type
func (r *taxonomyRepository) SaveType(t *domain.BannerType) error {
	return r.db.Save(t).Error
}

// ListPositions returns positions in display order
func (r *taxonomyRepository) ListPositions(activeOnly bool) ([]domain.BannerPosition, error) {
	query := r.db.Model(&domain.BannerPosition{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var positions []domain.BannerPosition
	err := query.Order("display_order ASC, name ASC").Find(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}

// FindPositionByName resolves a position by its unique name
func (r *taxonomyRepository) FindPositionByName(name string) (*domain.BannerPosition, error) {
	var p domain.BannerPosition
	err := r.db.Where("name = ?", name).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// SavePosition creates or updates a position
func (r *taxonomyRepository) SavePosition(p *domain.BannerPosition) error {
	return r.db.Save(p).Error
}

// ListGovernorates returns every governorate ordered by code
func (r *taxonomyRepository) ListGovernorates() ([]domain.Governorate, error) {
	var govs []domain.Governorate
	err := r.db.Order("code ASC").Find(&govs).Error
	if err != nil {
		return nil, err
	}
	return govs, nil
}
