package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/repository"
	"github.com/naebak/banner-backend/internal/taxonomy"
	"github.com/naebak/banner-backend/pkg/cache"
	"github.com/naebak/banner-backend/pkg/i18n"
)

// Actor identifies the authenticated caller for ownership and quota checks
type Actor struct {
	UserID   int64
	UserType string
	Locale   i18n.Locale
}

// BannerService defines the business logic for banners
type BannerService interface {
	Create(ctx context.Context, actor Actor, req *domain.CreateBannerRequest) (*domain.BannerResponse, error)
	Get(id int64) (*domain.BannerResponse, error)
	List(filter repository.BannerFilter) ([]domain.BannerResponse, int64, error)
	Update(ctx context.Context, actor Actor, id int64, req *domain.UpdateBannerRequest) (*domain.BannerResponse, error)
	Delete(ctx context.Context, actor Actor, id int64) error

	Publish(ctx context.Context, actor Actor, id int64) error
	Unpublish(ctx context.Context, actor Actor, id int64) error

	// SelectForPosition returns the banners to display in a position right
	// now, after eligibility filtering, ordering and capacity truncation
	SelectForPosition(ctx context.Context, positionName, category string, governorate *string) (*domain.BannerListResponse, error)
}

type bannerService struct {
	repo        repository.BannerRepository
	registry    *taxonomy.Registry
	validator   *BannerValidator
	permissions PermissionService
	cache       cache.Service
	now         func() time.Time
}

// NewBannerService creates a new BannerService
func NewBannerService(
	repo repository.BannerRepository,
	registry *taxonomy.Registry,
	validator *BannerValidator,
	permissions PermissionService,
	cacheSvc cache.Service,
) BannerService {
	return &bannerService{
		repo:        repo,
		registry:    registry,
		validator:   validator,
		permissions: permissions,
		cache:       cacheSvc,
		now:         time.Now,
	}
}

// Create validates, applies quotas and inserts a new banner
func (s *bannerService) Create(ctx context.Context, actor Actor, req *domain.CreateBannerRequest) (*domain.BannerResponse, error) {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionCreateBanners); err != nil {
		return nil, err
	}

	errs := s.validator.ValidateCreate(req, actor.Locale)

	quotaErrs, err := s.permissions.CheckBannerQuota(actor.UserID, actor.UserType, actor.Locale)
	if err != nil {
		return nil, err
	}
	errs = append(errs, quotaErrs...)

	bt, typeOK := s.registry.Type(req.BannerType)
	pos, posOK := s.registry.Position(req.Position)

	if req.ImageFileName != "" && typeOK {
		uploadErrs, err := s.permissions.CheckUpload(actor.UserID, actor.UserType, req.ImageFileName, req.ImageFileSize, bt.MaxFileSizeMB, actor.Locale)
		if err != nil {
			return nil, err
		}
		errs = append(errs, uploadErrs...)
	}

	if len(errs) > 0 {
		return nil, common.NewValidationError(errs)
	}
	if !typeOK || !posOK {
		return nil, common.ErrInvalidInput
	}

	linkTarget := req.LinkTarget
	if linkTarget == "" {
		linkTarget = domain.LinkTargetSelf
	}
	priority := req.Priority
	if priority < 1 || priority > 5 {
		priority = 3
	}

	banner := &domain.Banner{
		Title:       req.Title,
		TitleAr:     req.TitleAr,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		AltText:     req.AltText,
		LinkURL:     req.LinkURL,
		LinkText:    req.LinkText,
		LinkTarget:  linkTarget,
		TypeID:      bt.ID,
		PositionID:  pos.ID,
		Category:    req.Category,
		Governorate: req.Governorate,
		Priority:    priority,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    true,
		Metadata:    req.Metadata,
		CreatedBy:   actor.UserID,
		Schedules:   buildSchedules(req.Schedules),
	}

	if err := s.repo.Create(banner); err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	log.Info().Int64("banner_id", banner.ID).Int64("user_id", actor.UserID).Msg("banner created")

	resp := banner.ToResponse()
	return &resp, nil
}

// Get retrieves a banner by ID
func (s *bannerService) Get(id int64) (*domain.BannerResponse, error) {
	banner, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := banner.ToResponse()
	return &resp, nil
}

// List retrieves banners for admin views
func (s *bannerService) List(filter repository.BannerFilter) ([]domain.BannerResponse, int64, error) {
	banners, total, err := s.repo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]domain.BannerResponse, len(banners))
	for i, banner := range banners {
		responses[i] = banner.ToResponse()
	}
	return responses, total, nil
}

// Update applies a partial update after ownership and validation checks
func (s *bannerService) Update(ctx context.Context, actor Actor, id int64, req *domain.UpdateBannerRequest) (*domain.BannerResponse, error) {
	banner, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.permissions.CanModify(actor.UserID, actor.UserType, banner, false)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, common.ErrForbidden
	}

	if errs := s.validator.ValidateUpdate(req, banner, actor.Locale); len(errs) > 0 {
		return nil, common.NewValidationError(errs)
	}

	applyUpdate(banner, req)

	if err := s.repo.Update(banner); err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)

	resp := banner.ToResponse()
	return &resp, nil
}

// Delete removes a banner after ownership checks
func (s *bannerService) Delete(ctx context.Context, actor Actor, id int64) error {
	banner, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	allowed, err := s.permissions.CanModify(actor.UserID, actor.UserType, banner, true)
	if err != nil {
		return err
	}
	if !allowed {
		return common.ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateLists(ctx)
	log.Info().Int64("banner_id", id).Int64("user_id", actor.UserID).Msg("banner deleted")
	return nil
}

// Publish flips a banner live
func (s *bannerService) Publish(ctx context.Context, actor Actor, id int64) error {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionApproveBanners); err != nil {
		return err
	}
	if err := s.repo.SetPublished(id, true); err != nil {
		return err
	}
	s.invalidateLists(ctx)
	log.Info().Int64("banner_id", id).Int64("user_id", actor.UserID).Msg("banner published")
	return nil
}

// Unpublish flips a banner dark
func (s *bannerService) Unpublish(ctx context.Context, actor Actor, id int64) error {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionApproveBanners); err != nil {
		return err
	}
	if err := s.repo.SetPublished(id, false); err != nil {
		return err
	}
	s.invalidateLists(ctx)
	log.Info().Int64("banner_id", id).Int64("user_id", actor.UserID).Msg("banner unpublished")
	return nil
}

// SelectForPosition resolves the position, loads candidates, filters by
// liveness and truncates to the position's capacity. Results are served
// from Redis when a fresh list is cached.
func (s *bannerService) SelectForPosition(ctx context.Context, positionName, category string, governorate *string) (*domain.BannerListResponse, error) {
	pos, ok := s.registry.Position(positionName)
	if !ok {
		return nil, common.ErrNotFound
	}

	gov := ""
	if governorate != nil {
		gov = *governorate
	}

	var cached domain.BannerListResponse
	if err := s.cache.GetBannerList(ctx, positionName, category, gov, &cached); err == nil {
		return &cached, nil
	}

	banners, err := s.repo.ListForPosition(pos.ID, category, governorate)
	if err != nil {
		return nil, err
	}

	selected := SelectForPosition(FilterLive(banners, s.now()), pos)

	responses := make([]domain.BannerResponse, len(selected))
	for i, banner := range selected {
		responses[i] = banner.ToResponse()
	}

	result := &domain.BannerListResponse{
		Banners:  responses,
		Total:    len(responses),
		Position: positionName,
	}

	if err := s.cache.SetBannerList(ctx, positionName, category, gov, result); err != nil {
		log.Warn().Err(err).Str("position", positionName).Msg("banner list cache write failed")
	}

	return result, nil
}

func (s *bannerService) invalidateLists(ctx context.Context) {
	if err := s.cache.InvalidateBannerLists(ctx); err != nil {
		log.Warn().Err(err).Msg("banner list cache invalidation failed")
	}
}

func buildSchedules(inputs []domain.ScheduleInput) []domain.BannerSchedule {
	schedules := make([]domain.BannerSchedule, 0, len(inputs))
	for _, in := range inputs {
		sched := domain.BannerSchedule{
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Timezone:  in.Timezone,
			IsActive:  true,
		}
		if sched.Timezone == "" {
			sched.Timezone = "Africa/Cairo"
		}
		sched.SetDaysList(in.DaysOfWeek)
		schedules = append(schedules, sched)
	}
	return schedules
}

func applyUpdate(banner *domain.Banner, req *domain.UpdateBannerRequest) {
	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.TitleAr != nil {
		banner.TitleAr = *req.TitleAr
	}
	if req.Content != nil {
		banner.Content = *req.Content
	}
	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}
	if req.AltText != nil {
		banner.AltText = *req.AltText
	}
	if req.LinkURL != nil {
		banner.LinkURL = *req.LinkURL
	}
	if req.LinkTarget != nil {
		banner.LinkTarget = *req.LinkTarget
	}
	if req.Category != nil {
		banner.Category = *req.Category
	}
	if req.Governorate != nil {
		if *req.Governorate == "" {
			banner.Governorate = nil
		} else {
			banner.Governorate = req.Governorate
		}
	}
	if req.Priority != nil {
		banner.Priority = *req.Priority
	}
	if req.StartDate != nil {
		banner.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		banner.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
}
