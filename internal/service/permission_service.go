package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/repository"
	"github.com/naebak/banner-backend/pkg/i18n"
)

// PermissionService defines capability and quota checks
type PermissionService interface {
	Check(userID int64, userType, action string) error
	For(userID int64, userType string) (*domain.BannerPermission, error)
	List() ([]*domain.BannerPermission, error)
	Upsert(p *domain.BannerPermission) error

	// CheckBannerQuota returns quota violations for creating one more banner
	CheckBannerQuota(userID int64, userType string, locale i18n.Locale) (common.FieldErrors, error)
	// CheckUpload returns quota violations for a proposed image upload.
	// typeCeilingMB is the banner type's own size ceiling; the effective
	// limit is the stricter of the two.
	CheckUpload(userID int64, userType, filename string, sizeBytes int64, typeCeilingMB int, locale i18n.Locale) (common.FieldErrors, error)
	// CanModify reports whether the user may edit or delete the banner,
	// distinguishing own-content from all-content capabilities
	CanModify(userID int64, userType string, banner *domain.Banner, deletion bool) (bool, error)
}

type permissionService struct {
	repo       repository.PermissionRepository
	bannerRepo repository.BannerRepository
	bundle     *i18n.Bundle
}

// NewPermissionService creates a new PermissionService
func NewPermissionService(repo repository.PermissionRepository, bannerRepo repository.BannerRepository, bundle *i18n.Bundle) PermissionService {
	return &permissionService{repo: repo, bannerRepo: bannerRepo, bundle: bundle}
}

// Check verifies the account holds the capability; ErrForbidden otherwise.
// An account without a permission row has no capabilities.
func (s *permissionService) Check(userID int64, userType, action string) error {
	perm, err := s.repo.FindByUser(userID, userType)
	if err != nil {
		if err == common.ErrNotFound {
			return common.ErrForbidden
		}
		return err
	}
	if !perm.CanPerform(action) {
		return common.ErrForbidden
	}
	return nil
}

// For returns the permission row for an account
func (s *permissionService) For(userID int64, userType string) (*domain.BannerPermission, error) {
	return s.repo.FindByUser(userID, userType)
}

// List returns every permission row
func (s *permissionService) List() ([]*domain.BannerPermission, error) {
	return s.repo.List()
}

// Upsert creates or replaces a permission row
func (s *permissionService) Upsert(p *domain.BannerPermission) error {
	return s.repo.Upsert(p)
}

// CheckBannerQuota enforces the per-account banner ceiling. A non-positive
// ceiling means unlimited.
func (s *permissionService) CheckBannerQuota(userID int64, userType string, locale i18n.Locale) (common.FieldErrors, error) {
	perm, err := s.repo.FindByUser(userID, userType)
	if err != nil {
		return nil, err
	}
	if perm.MaxBanners < 1 {
		return nil, nil
	}

	count, err := s.bannerRepo.CountByCreator(userID)
	if err != nil {
		return nil, err
	}
	if count >= int64(perm.MaxBanners) {
		return common.FieldErrors{}.Add(common.CodeBannerLimit, "",
			s.bundle.T(locale, "quota.banner_limit")), nil
	}
	return nil, nil
}

// CheckUpload enforces extension allowlists and size ceilings
func (s *permissionService) CheckUpload(userID int64, userType, filename string, sizeBytes int64, typeCeilingMB int, locale i18n.Locale) (common.FieldErrors, error) {
	perm, err := s.repo.FindByUser(userID, userType)
	if err != nil {
		return nil, err
	}

	var errs common.FieldErrors

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" || !perm.AllowsExtension(ext) {
		errs = errs.Add(common.CodeFileType, "image_file_name",
			s.bundle.T(locale, "quota.file_type"))
	}

	limitBytes := int64(typeCeilingMB) * 1024 * 1024
	if perm.MaxFileSize > 0 && (limitBytes < 1 || perm.MaxFileSize < limitBytes) {
		limitBytes = perm.MaxFileSize
	}
	if limitBytes > 0 && sizeBytes > limitBytes {
		limitMB := float64(limitBytes) / (1024 * 1024)
		errs = errs.Add(common.CodeFileTooLarge, "image_file_size",
			fmt.Sprintf(s.bundle.T(locale, "quota.file_too_large"), int(limitMB)))
	}

	return errs, nil
}

// CanModify checks ownership-scoped edit/delete capabilities
func (s *permissionService) CanModify(userID int64, userType string, banner *domain.Banner, deletion bool) (bool, error) {
	perm, err := s.repo.FindByUser(userID, userType)
	if err != nil {
		if err == common.ErrNotFound {
			return false, nil
		}
		return false, err
	}

	all := domain.ActionEditBanners
	if deletion {
		all = domain.ActionDeleteBanners
	}
	if perm.CanPerform(all) {
		return true, nil
	}
	return perm.CanPerform(domain.ActionEditOwnBanner) && banner.CreatedBy == userID, nil
}
