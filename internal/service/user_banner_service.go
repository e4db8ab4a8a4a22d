package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/repository"
)

// UserBannerService defines the submission and moderation workflow for
// banners created by non-admin accounts
type UserBannerService interface {
	Submit(actor Actor, req *domain.CreateUserBannerRequest) (*domain.UserBanner, error)
	Get(actor Actor, id int64) (*domain.UserBanner, error)
	ListMine(actor Actor) ([]*domain.UserBanner, error)
	ListPending(actor Actor, page, limit int) ([]*domain.UserBanner, int64, error)
	Update(actor Actor, id int64, req *domain.CreateUserBannerRequest) (*domain.UserBanner, error)
	Withdraw(actor Actor, id int64) error

	// Review decides a pending submission. Approval also creates nothing by
	// itself; promotion into a display banner is a separate admin step.
	Review(actor Actor, id int64, req *domain.ReviewUserBannerRequest) (*domain.UserBanner, error)
}

type userBannerService struct {
	repo        repository.UserBannerRepository
	permissions PermissionService
	now         func() time.Time
}

// NewUserBannerService creates a new UserBannerService
func NewUserBannerService(repo repository.UserBannerRepository, permissions PermissionService) UserBannerService {
	return &userBannerService{
		repo:        repo,
		permissions: permissions,
		now:         time.Now,
	}
}

// Submit creates a pending submission, subject to the creation capability
// and the per-user quota
func (s *userBannerService) Submit(actor Actor, req *domain.CreateUserBannerRequest) (*domain.UserBanner, error) {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionEditOwnBanner); err != nil {
		return nil, err
	}

	perm, err := s.permissions.For(actor.UserID, actor.UserType)
	if err != nil {
		return nil, err
	}
	if perm.MaxBanners > 0 {
		count, err := s.repo.CountByUser(actor.UserID)
		if err != nil {
			return nil, err
		}
		if count >= int64(perm.MaxBanners) {
			return nil, common.NewValidationError(
				common.FieldErrors{}.Add(common.CodeBannerLimit, "", "banner limit exceeded"))
		}
	}

	ub := &domain.UserBanner{
		UserID:   actor.UserID,
		UserType: actor.UserType,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		AltText:  req.AltText,
		LinkURL:  req.LinkURL,
		Status:   domain.UserBannerStatusPending,
	}
	if err := s.repo.Create(ub); err != nil {
		return nil, err
	}

	log.Info().Int64("user_banner_id", ub.ID).Int64("user_id", actor.UserID).Msg("user banner submitted")
	return ub, nil
}

// Get returns a submission visible to the caller: its owner or a moderator
func (s *userBannerService) Get(actor Actor, id int64) (*domain.UserBanner, error) {
	ub, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if ub.UserID != actor.UserID {
		if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionApproveUserBanners); err != nil {
			return nil, common.ErrForbidden
		}
	}
	return ub, nil
}

// ListMine returns the caller's own submissions
func (s *userBannerService) ListMine(actor Actor) ([]*domain.UserBanner, error) {
	return s.repo.ListByUser(actor.UserID)
}

// ListPending returns the moderation queue, oldest first
func (s *userBannerService) ListPending(actor Actor, page, limit int) ([]*domain.UserBanner, int64, error) {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionApproveUserBanners); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByStatus(domain.UserBannerStatusPending, page, limit)
}

// Update modifies a submission while it is still editable by its owner
func (s *userBannerService) Update(actor Actor, id int64, req *domain.CreateUserBannerRequest) (*domain.UserBanner, error) {
	ub, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ub.CanBeEditedBy(actor.UserID) {
		return nil, common.ErrForbidden
	}

	ub.Title = req.Title
	ub.ImageURL = req.ImageURL
	ub.AltText = req.AltText
	ub.LinkURL = req.LinkURL

	if err := s.repo.Update(ub); err != nil {
		return nil, err
	}
	return ub, nil
}

// Withdraw deletes a submission while it is still pending
func (s *userBannerService) Withdraw(actor Actor, id int64) error {
	ub, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if !ub.CanBeEditedBy(actor.UserID) {
		return common.ErrForbidden
	}
	return s.repo.Delete(id)
}

// Review approves or rejects a pending submission
func (s *userBannerService) Review(actor Actor, id int64, req *domain.ReviewUserBannerRequest) (*domain.UserBanner, error) {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionApproveUserBanners); err != nil {
		return nil, err
	}

	ub, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ub.IsPending() {
		return nil, common.ErrInvalidInput
	}

	if req.Approve {
		ub.Approve(actor.UserID, s.now())
	} else {
		ub.Reject(actor.UserID, req.Reason, s.now())
	}

	if err := s.repo.Update(ub); err != nil {
		return nil, err
	}

	log.Info().
		Int64("user_banner_id", ub.ID).
		Int64("admin_id", actor.UserID).
		Str("status", ub.Status).
		Msg("user banner reviewed")
	return ub, nil
}
