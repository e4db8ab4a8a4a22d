package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/repository"
	"github.com/naebak/banner-backend/pkg/cache"
)

// PageBannerService manages per-page hero creatives and serves the public
// per-page display lookup
type PageBannerService interface {
	Create(ctx context.Context, actor Actor, req *domain.CreatePageBannerRequest) (*domain.PageBanner, error)
	Update(ctx context.Context, actor Actor, id int64, req *domain.UpdatePageBannerRequest) (*domain.PageBanner, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	List() ([]*domain.PageBanner, error)

	Publish(ctx context.Context, actor Actor, id int64) error
	Unpublish(ctx context.Context, actor Actor, id int64) error

	// Display returns the published, active page banner for a page key,
	// served from Redis when cached
	Display(ctx context.Context, pageKey string) (*domain.PageBanner, error)
}

type pageBannerService struct {
	repo        repository.PageBannerRepository
	permissions PermissionService
	cache       cache.Service
	now         func() time.Time
}

// NewPageBannerService creates a new PageBannerService
func NewPageBannerService(
	repo repository.PageBannerRepository,
	permissions PermissionService,
	cacheSvc cache.Service,
) PageBannerService {
	return &pageBannerService{
		repo:        repo,
		permissions: permissions,
		cache:       cacheSvc,
		now:         time.Now,
	}
}

// Create inserts a page banner for a page key not yet taken
func (s *pageBannerService) Create(ctx context.Context, actor Actor, req *domain.CreatePageBannerRequest) (*domain.PageBanner, error) {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionEditPageBanners); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByPageKey(req.PageKey); err == nil {
		return nil, common.NewValidationError(
			common.FieldErrors{}.Add(common.CodePageKeyTaken, "page_key", "page key already has a banner"))
	} else if err != common.ErrPageBannerNotFound {
		return nil, err
	}

	pb := &domain.PageBanner{
		PageKey:            req.PageKey,
		PageName:           req.PageName,
		PageNameEn:         req.PageNameEn,
		Title:              req.Title,
		TitleEn:            req.TitleEn,
		Subtitle:           req.Subtitle,
		SubtitleEn:         req.SubtitleEn,
		Description:        req.Description,
		DescriptionEn:      req.DescriptionEn,
		ImageURL:           req.ImageURL,
		BackgroundImageURL: req.BackgroundImageURL,
		MobileImageURL:     req.MobileImageURL,
		BackgroundColor:    defaultStr(req.BackgroundColor, "#007BFF"),
		TextColor:          defaultStr(req.TextColor, "#FFFFFF"),
		OverlayOpacity:     0.5,
		Height:             defaultStr(req.Height, "400px"),
		Alignment:          defaultStr(req.Alignment, "center"),
		AnimationType:      defaultStr(req.AnimationType, "fade"),
		CTAText:            req.CTAText,
		CTATextEn:          req.CTATextEn,
		CTAURL:             req.CTAURL,
		CTAStyle:           defaultStr(req.CTAStyle, "primary"),
		IsActive:           true,
		CreatedBy:          actor.UserID,
		CustomCSS:          req.CustomCSS,
		CustomJS:           req.CustomJS,
		Metadata:           req.Metadata,
	}
	if req.OverlayOpacity != nil {
		pb.OverlayOpacity = *req.OverlayOpacity
	}

	if err := s.repo.Create(pb); err != nil {
		return nil, err
	}

	s.invalidate(ctx, pb.PageKey)
	return pb, nil
}

// Update applies a partial update and stamps the editor
func (s *pageBannerService) Update(ctx context.Context, actor Actor, id int64, req *domain.UpdatePageBannerRequest) (*domain.PageBanner, error) {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionEditPageBanners); err != nil {
		return nil, err
	}

	pb, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	applyPageBannerUpdate(pb, req)
	pb.UpdatedBy = &actor.UserID

	if err := s.repo.Update(pb); err != nil {
		return nil, err
	}

	s.invalidate(ctx, pb.PageKey)
	return pb, nil
}

// Delete removes a page banner
func (s *pageBannerService) Delete(ctx context.Context, actor Actor, id int64) error {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionEditPageBanners); err != nil {
		return err
	}

	pb, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidate(ctx, pb.PageKey)
	return nil
}

// List returns every page banner, published or not
func (s *pageBannerService) List() ([]*domain.PageBanner, error) {
	return s.repo.List()
}

// Publish flips a page banner live
func (s *pageBannerService) Publish(ctx context.Context, actor Actor, id int64) error {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionPublishPageBanners); err != nil {
		return err
	}

	pb, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	pb.Publish(actor.UserID, s.now())
	if err := s.repo.Update(pb); err != nil {
		return err
	}

	s.invalidate(ctx, pb.PageKey)
	log.Info().Int64("page_banner_id", id).Str("page_key", pb.PageKey).Msg("page banner published")
	return nil
}

// Unpublish flips a page banner dark
func (s *pageBannerService) Unpublish(ctx context.Context, actor Actor, id int64) error {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionPublishPageBanners); err != nil {
		return err
	}

	pb, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	pb.Unpublish(actor.UserID)
	if err := s.repo.Update(pb); err != nil {
		return err
	}

	s.invalidate(ctx, pb.PageKey)
	log.Info().Int64("page_banner_id", id).Str("page_key", pb.PageKey).Msg("page banner unpublished")
	return nil
}

// Display returns the live page banner for a page key
func (s *pageBannerService) Display(ctx context.Context, pageKey string) (*domain.PageBanner, error) {
	var cached domain.PageBanner
	if err := s.cache.GetPageBanner(ctx, pageKey, &cached); err == nil {
		return &cached, nil
	}

	pb, err := s.repo.FindByPageKey(pageKey)
	if err != nil {
		return nil, err
	}
	if !pb.IsLive() {
		return nil, common.ErrPageBannerNotFound
	}

	if err := s.cache.SetPageBanner(ctx, pageKey, pb); err != nil {
		log.Warn().Err(err).Str("page_key", pageKey).Msg("page banner cache write failed")
	}

	return pb, nil
}

func (s *pageBannerService) invalidate(ctx context.Context, pageKey string) {
	if err := s.cache.InvalidatePageBanner(ctx, pageKey); err != nil {
		log.Warn().Err(err).Str("page_key", pageKey).Msg("page banner cache invalidation failed")
	}
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func applyPageBannerUpdate(pb *domain.PageBanner, req *domain.UpdatePageBannerRequest) {
	if req.PageName != nil {
		pb.PageName = *req.PageName
	}
	if req.PageNameEn != nil {
		pb.PageNameEn = *req.PageNameEn
	}
	if req.Title != nil {
		pb.Title = *req.Title
	}
	if req.TitleEn != nil {
		pb.TitleEn = *req.TitleEn
	}
	if req.Subtitle != nil {
		pb.Subtitle = *req.Subtitle
	}
	if req.SubtitleEn != nil {
		pb.SubtitleEn = *req.SubtitleEn
	}
	if req.Description != nil {
		pb.Description = *req.Description
	}
	if req.DescriptionEn != nil {
		pb.DescriptionEn = *req.DescriptionEn
	}
	if req.ImageURL != nil {
		pb.ImageURL = *req.ImageURL
	}
	if req.BackgroundImageURL != nil {
		pb.BackgroundImageURL = *req.BackgroundImageURL
	}
	if req.MobileImageURL != nil {
		pb.MobileImageURL = *req.MobileImageURL
	}
	if req.BackgroundColor != nil {
		pb.BackgroundColor = *req.BackgroundColor
	}
	if req.TextColor != nil {
		pb.TextColor = *req.TextColor
	}
	if req.OverlayOpacity != nil {
		pb.OverlayOpacity = *req.OverlayOpacity
	}
	if req.Height != nil {
		pb.Height = *req.Height
	}
	if req.Alignment != nil {
		pb.Alignment = *req.Alignment
	}
	if req.AnimationType != nil {
		pb.AnimationType = *req.AnimationType
	}
	if req.CTAText != nil {
		pb.CTAText = *req.CTAText
	}
	if req.CTATextEn != nil {
		pb.CTATextEn = *req.CTATextEn
	}
	if req.CTAURL != nil {
		pb.CTAURL = *req.CTAURL
	}
	if req.CTAStyle != nil {
		pb.CTAStyle = *req.CTAStyle
	}
	if req.IsActive != nil {
		pb.IsActive = *req.IsActive
	}
	if req.CustomCSS != nil {
		pb.CustomCSS = *req.CustomCSS
	}
	if req.CustomJS != nil {
		pb.CustomJS = *req.CustomJS
	}
	if req.Metadata != nil {
		pb.Metadata = req.Metadata
	}
}
