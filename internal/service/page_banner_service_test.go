package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/pkg/cache"
	"github.com/naebak/banner-backend/pkg/i18n"
)

// --- Mock PageBannerRepository ---

type mockPageBannerRepo struct {
	mock.Mock
}

func (m *mockPageBannerRepo) Create(pb *domain.PageBanner) error {
	return m.Called(pb).Error(0)
}

func (m *mockPageBannerRepo) FindByID(id int64) (*domain.PageBanner, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PageBanner), args.Error(1)
}

func (m *mockPageBannerRepo) FindByPageKey(pageKey string) (*domain.PageBanner, error) {
	args := m.Called(pageKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PageBanner), args.Error(1)
}

func (m *mockPageBannerRepo) Update(pb *domain.PageBanner) error {
	return m.Called(pb).Error(0)
}

func (m *mockPageBannerRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockPageBannerRepo) List() ([]*domain.PageBanner, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PageBanner), args.Error(1)
}

func newPageBannerFixture(permRepo *mockPermissionRepo, repo *mockPageBannerRepo) PageBannerService {
	permissions := NewPermissionService(permRepo, new(mockBannerRepo), i18n.Default())
	return NewPageBannerService(repo, permissions, cache.NewService(nil))
}

func TestPageBannerCreateAppliesDefaults(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(1), "admin").Return(adminPermission(), nil)

	repo := new(mockPageBannerRepo)
	repo.On("FindByPageKey", "candidates").Return(nil, common.ErrPageBannerNotFound)
	repo.On("Create", mock.AnythingOfType("*domain.PageBanner")).Return(nil)

	svc := newPageBannerFixture(permRepo, repo)
	pb, err := svc.Create(context.Background(), adminActor(), &domain.CreatePageBannerRequest{
		PageKey: "candidates",
		Title:   "Meet the candidates",
	})
	require.NoError(t, err)

	assert.Equal(t, "candidates", pb.PageKey)
	assert.Equal(t, "#007BFF", pb.BackgroundColor)
	assert.Equal(t, "#FFFFFF", pb.TextColor)
	assert.Equal(t, 0.5, pb.OverlayOpacity)
	assert.Equal(t, "400px", pb.Height)
	assert.Equal(t, "center", pb.Alignment)
	assert.Equal(t, "fade", pb.AnimationType)
	assert.Equal(t, "primary", pb.CTAStyle)
	assert.True(t, pb.IsActive)
	assert.False(t, pb.IsPublished)
	assert.Equal(t, int64(1), pb.CreatedBy)
}

func TestPageBannerCreateTakenKey(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(1), "admin").Return(adminPermission(), nil)

	repo := new(mockPageBannerRepo)
	repo.On("FindByPageKey", "home").Return(&domain.PageBanner{ID: 4, PageKey: "home"}, nil)

	svc := newPageBannerFixture(permRepo, repo)
	_, err := svc.Create(context.Background(), adminActor(), &domain.CreatePageBannerRequest{
		PageKey: "home",
		Title:   "Welcome",
	})

	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Fields.HasCode(common.CodePageKeyTaken))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPageBannerCreateForbidden(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(7), "candidate").Return(candidatePermission(), nil)

	svc := newPageBannerFixture(permRepo, new(mockPageBannerRepo))
	actor := Actor{UserID: 7, UserType: "candidate"}
	_, err := svc.Create(context.Background(), actor, &domain.CreatePageBannerRequest{
		PageKey: "home",
		Title:   "Welcome",
	})
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestPageBannerUpdateStampsEditor(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(1), "admin").Return(adminPermission(), nil)

	existing := &domain.PageBanner{ID: 4, PageKey: "home", Title: "Old", OverlayOpacity: 0.5}
	repo := new(mockPageBannerRepo)
	repo.On("FindByID", int64(4)).Return(existing, nil)
	repo.On("Update", mock.AnythingOfType("*domain.PageBanner")).Return(nil)

	svc := newPageBannerFixture(permRepo, repo)

	title := "Spring welcome"
	opacity := 0.8
	pb, err := svc.Update(context.Background(), adminActor(), 4, &domain.UpdatePageBannerRequest{
		Title:          &title,
		OverlayOpacity: &opacity,
	})
	require.NoError(t, err)

	assert.Equal(t, "Spring welcome", pb.Title)
	assert.Equal(t, 0.8, pb.OverlayOpacity)
	// Untouched fields survive a partial update
	assert.Equal(t, "home", pb.PageKey)
	require.NotNil(t, pb.UpdatedBy)
	assert.Equal(t, int64(1), *pb.UpdatedBy)
}

func TestPageBannerPublishCycle(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(1), "admin").Return(adminPermission(), nil)

	pb := &domain.PageBanner{ID: 4, PageKey: "home", IsActive: true}
	repo := new(mockPageBannerRepo)
	repo.On("FindByID", int64(4)).Return(pb, nil)
	repo.On("Update", mock.AnythingOfType("*domain.PageBanner")).Return(nil)

	svc := newPageBannerFixture(permRepo, repo)

	require.NoError(t, svc.Publish(context.Background(), adminActor(), 4))
	assert.True(t, pb.IsPublished)
	require.NotNil(t, pb.PublishedAt)
	require.NotNil(t, pb.UpdatedBy)
	assert.Equal(t, int64(1), *pb.UpdatedBy)

	publishedAt := *pb.PublishedAt
	require.NoError(t, svc.Unpublish(context.Background(), adminActor(), 4))
	assert.False(t, pb.IsPublished)
	// The last publication stays traceable after unpublish
	require.NotNil(t, pb.PublishedAt)
	assert.Equal(t, publishedAt, *pb.PublishedAt)
}

func TestPageBannerPublishForbidden(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(7), "candidate").Return(candidatePermission(), nil)

	svc := newPageBannerFixture(permRepo, new(mockPageBannerRepo))
	actor := Actor{UserID: 7, UserType: "candidate"}
	assert.ErrorIs(t, svc.Publish(context.Background(), actor, 4), common.ErrForbidden)
}

func TestPageBannerDisplay(t *testing.T) {
	t.Run("live banner served", func(t *testing.T) {
		now := time.Now()
		live := &domain.PageBanner{
			ID: 4, PageKey: "home", Title: "Welcome",
			IsActive: true, IsPublished: true, PublishedAt: &now,
		}
		repo := new(mockPageBannerRepo)
		repo.On("FindByPageKey", "home").Return(live, nil)

		svc := newPageBannerFixture(new(mockPermissionRepo), repo)
		pb, err := svc.Display(context.Background(), "home")
		require.NoError(t, err)
		assert.Equal(t, "Welcome", pb.Title)
	})

	t.Run("unpublished banner hidden", func(t *testing.T) {
		draft := &domain.PageBanner{ID: 4, PageKey: "home", IsActive: true, IsPublished: false}
		repo := new(mockPageBannerRepo)
		repo.On("FindByPageKey", "home").Return(draft, nil)

		svc := newPageBannerFixture(new(mockPermissionRepo), repo)
		_, err := svc.Display(context.Background(), "home")
		assert.ErrorIs(t, err, common.ErrPageBannerNotFound)
	})

	t.Run("deactivated banner hidden", func(t *testing.T) {
		dark := &domain.PageBanner{ID: 4, PageKey: "home", IsActive: false, IsPublished: true}
		repo := new(mockPageBannerRepo)
		repo.On("FindByPageKey", "home").Return(dark, nil)

		svc := newPageBannerFixture(new(mockPermissionRepo), repo)
		_, err := svc.Display(context.Background(), "home")
		assert.ErrorIs(t, err, common.ErrPageBannerNotFound)
	})

	t.Run("unknown page key", func(t *testing.T) {
		repo := new(mockPageBannerRepo)
		repo.On("FindByPageKey", "nowhere").Return(nil, common.ErrPageBannerNotFound)

		svc := newPageBannerFixture(new(mockPermissionRepo), repo)
		_, err := svc.Display(context.Background(), "nowhere")
		assert.ErrorIs(t, err, common.ErrPageBannerNotFound)
	})
}
