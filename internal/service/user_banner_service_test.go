package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/pkg/i18n"
)

// --- Mock UserBannerRepository ---

type mockUserBannerRepo struct {
	mock.Mock
}

func (m *mockUserBannerRepo) Create(ub *domain.UserBanner) error {
	return m.Called(ub).Error(0)
}

func (m *mockUserBannerRepo) FindByID(id int64) (*domain.UserBanner, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserBanner), args.Error(1)
}

func (m *mockUserBannerRepo) Update(ub *domain.UserBanner) error {
	return m.Called(ub).Error(0)
}

func (m *mockUserBannerRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockUserBannerRepo) ListByUser(userID int64) ([]*domain.UserBanner, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserBanner), args.Error(1)
}

func (m *mockUserBannerRepo) ListByStatus(status string, page, limit int) ([]*domain.UserBanner, int64, error) {
	args := m.Called(status, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.UserBanner), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserBannerRepo) CountByUser(userID int64) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func newUserBannerFixture(permRepo *mockPermissionRepo, repo *mockUserBannerRepo) UserBannerService {
	permissions := NewPermissionService(permRepo, new(mockBannerRepo), i18n.Default())
	return NewUserBannerService(repo, permissions)
}

func TestUserBannerSubmit(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(7), "candidate").Return(candidatePermission(), nil)

	repo := new(mockUserBannerRepo)
	repo.On("CountByUser", int64(7)).Return(int64(2), nil)
	repo.On("Create", mock.AnythingOfType("*domain.UserBanner")).Return(nil)

	svc := newUserBannerFixture(permRepo, repo)
	actor := Actor{UserID: 7, UserType: "candidate"}

	ub, err := svc.Submit(actor, &domain.CreateUserBannerRequest{
		Title:    "My campaign",
		ImageURL: "https://cdn.example.org/c.png",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UserBannerStatusPending, ub.Status)
	assert.Equal(t, int64(7), ub.UserID)
	assert.Equal(t, "candidate", ub.UserType)
}

func TestUserBannerSubmitQuota(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(7), "candidate").Return(candidatePermission(), nil)

	repo := new(mockUserBannerRepo)
	repo.On("CountByUser", int64(7)).Return(int64(10), nil)

	svc := newUserBannerFixture(permRepo, repo)
	actor := Actor{UserID: 7, UserType: "candidate"}

	_, err := svc.Submit(actor, &domain.CreateUserBannerRequest{Title: "x", ImageURL: "y"})

	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Fields.HasCode(common.CodeBannerLimit))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserBannerGetVisibility(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(7), "candidate").Return(candidatePermission(), nil)
	permRepo.On("FindByUser", int64(8), "candidate").Return(candidatePermission(), nil)
	permRepo.On("FindByUser", int64(99), "admin").Return(adminPermission(), nil)

	repo := new(mockUserBannerRepo)
	repo.On("FindByID", int64(3)).Return(&domain.UserBanner{ID: 3, UserID: 7}, nil)

	svc := newUserBannerFixture(permRepo, repo)

	_, err := svc.Get(Actor{UserID: 7, UserType: "candidate"}, 3)
	assert.NoError(t, err)

	_, err = svc.Get(Actor{UserID: 99, UserType: "admin"}, 3)
	assert.NoError(t, err)

	_, err = svc.Get(Actor{UserID: 8, UserType: "candidate"}, 3)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestUserBannerReview(t *testing.T) {
	permRepo := new(mockPermissionRepo)
	permRepo.On("FindByUser", int64(50), "admin").Return(adminPermission(), nil)

	admin := Actor{UserID: 50, UserType: "admin"}

	t.Run("approve", func(t *testing.T) {
		repo := new(mockUserBannerRepo)
		repo.On("FindByID", int64(3)).Return(&domain.UserBanner{ID: 3, UserID: 7, Status: domain.UserBannerStatusPending}, nil)
		repo.On("Update", mock.AnythingOfType("*domain.UserBanner")).Return(nil)

		svc := newUserBannerFixture(permRepo, repo)
		ub, err := svc.Review(admin, 3, &domain.ReviewUserBannerRequest{Approve: true})
		require.NoError(t, err)
		assert.Equal(t, domain.UserBannerStatusApproved, ub.Status)
		assert.Equal(t, int64(50), *ub.ApprovedBy)
	})

	t.Run("reject with reason", func(t *testing.T) {
		repo := new(mockUserBannerRepo)
		repo.On("FindByID", int64(3)).Return(&domain.UserBanner{ID: 3, UserID: 7, Status: domain.UserBannerStatusPending}, nil)
		repo.On("Update", mock.AnythingOfType("*domain.UserBanner")).Return(nil)

		svc := newUserBannerFixture(permRepo, repo)
		ub, err := svc.Review(admin, 3, &domain.ReviewUserBannerRequest{Reason: "blurry image"})
		require.NoError(t, err)
		assert.Equal(t, domain.UserBannerStatusRejected, ub.Status)
		assert.Equal(t, "blurry image", ub.RejectionReason)
	})

	t.Run("already decided", func(t *testing.T) {
		repo := new(mockUserBannerRepo)
		repo.On("FindByID", int64(3)).Return(&domain.UserBanner{ID: 3, Status: domain.UserBannerStatusApproved}, nil)

		svc := newUserBannerFixture(permRepo, repo)
		_, err := svc.Review(admin, 3, &domain.ReviewUserBannerRequest{Approve: true})
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})

	t.Run("non-moderator", func(t *testing.T) {
		candRepo := new(mockPermissionRepo)
		candRepo.On("FindByUser", int64(7), "candidate").Return(candidatePermission(), nil)

		svc := newUserBannerFixture(candRepo, new(mockUserBannerRepo))
		_, err := svc.Review(Actor{UserID: 7, UserType: "candidate"}, 3, &domain.ReviewUserBannerRequest{Approve: true})
		assert.ErrorIs(t, err, common.ErrForbidden)
	})
}

func TestUserBannerWithdraw(t *testing.T) {
	permRepo := new(mockPermissionRepo)

	repo := new(mockUserBannerRepo)
	repo.On("FindByID", int64(3)).Return(&domain.UserBanner{ID: 3, UserID: 7, Status: domain.UserBannerStatusPending}, nil)
	repo.On("Delete", int64(3)).Return(nil)

	svc := newUserBannerFixture(permRepo, repo)

	assert.NoError(t, svc.Withdraw(Actor{UserID: 7, UserType: "candidate"}, 3))
	assert.ErrorIs(t, svc.Withdraw(Actor{UserID: 8, UserType: "candidate"}, 3), common.ErrForbidden)
}
