package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/naebak/banner-backend/internal/domain"
)

// --- Mock StatsRepository ---

type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) IncrementView(bannerID int64, at time.Time, unique bool) error {
	return m.Called(bannerID, at, unique).Error(0)
}

func (m *mockStatsRepo) IncrementClick(bannerID int64, at time.Time, unique bool) error {
	return m.Called(bannerID, at, unique).Error(0)
}

func (m *mockStatsRepo) RecordViewDuration(bannerID int64, at time.Time, seconds float64) error {
	return m.Called(bannerID, at, seconds).Error(0)
}

func (m *mockStatsRepo) CreateClickLog(log *domain.BannerClickLog) error {
	return m.Called(log).Error(0)
}

func (m *mockStatsRepo) FindDaily(bannerID int64, date time.Time) (*domain.BannerStat, error) {
	args := m.Called(bannerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BannerStat), args.Error(1)
}

func (m *mockStatsRepo) Range(bannerID int64, from, to time.Time) ([]domain.BannerStat, error) {
	args := m.Called(bannerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BannerStat), args.Error(1)
}

func (m *mockStatsRepo) TopByViews(from, to time.Time, limit int) ([]domain.BannerStat, error) {
	args := m.Called(from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BannerStat), args.Error(1)
}

func TestRecordView(t *testing.T) {
	stats := new(mockStatsRepo)
	stats.On("IncrementView", int64(1), mock.Anything, true).Return(nil)

	svc := NewAnalyticsService(stats)
	assert.NoError(t, svc.RecordView(1, true))
	stats.AssertExpectations(t)
}

func TestRecordClickStoresAuditRow(t *testing.T) {
	stats := new(mockStatsRepo)
	stats.On("IncrementClick", int64(1), mock.Anything, false).Return(nil)
	stats.On("CreateClickLog", mock.MatchedBy(func(l *domain.BannerClickLog) bool {
		return l.BannerID == 1 && l.IPAddress == "10.0.0.1"
	})).Return(nil)

	svc := NewAnalyticsService(stats)
	err := svc.RecordClick(1, &domain.ClickContext{UserID: 7, IPAddress: "10.0.0.1"})
	assert.NoError(t, err)
	stats.AssertExpectations(t)
}

func TestRecordClickSurvivesLogFailure(t *testing.T) {
	stats := new(mockStatsRepo)
	stats.On("IncrementClick", int64(1), mock.Anything, false).Return(nil)
	stats.On("CreateClickLog", mock.Anything).Return(errors.New("table locked"))

	svc := NewAnalyticsService(stats)
	// The counted click must not be lost to a failed audit write
	assert.NoError(t, svc.RecordClick(1, &domain.ClickContext{UserID: 7}))
}

func TestRecordClickWithoutContext(t *testing.T) {
	stats := new(mockStatsRepo)
	stats.On("IncrementClick", int64(1), mock.Anything, false).Return(nil)

	svc := NewAnalyticsService(stats)
	assert.NoError(t, svc.RecordClick(1, nil))
	stats.AssertNotCalled(t, "CreateClickLog", mock.Anything)
}

func TestRecordClickUniqueFlag(t *testing.T) {
	stats := new(mockStatsRepo)
	stats.On("IncrementClick", int64(1), mock.Anything, true).Return(nil)

	svc := NewAnalyticsService(stats)
	assert.NoError(t, svc.RecordClick(1, &domain.ClickContext{UserID: 7, Unique: true}))
	stats.AssertExpectations(t)
}

func TestRecordViewDuration(t *testing.T) {
	stats := new(mockStatsRepo)
	stats.On("RecordViewDuration", int64(1), mock.Anything, 42.5).Return(nil)

	svc := NewAnalyticsService(stats)
	assert.NoError(t, svc.RecordViewDuration(1, 42.5))
	stats.AssertExpectations(t)
}

func TestSummary(t *testing.T) {
	from := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)

	stats := new(mockStatsRepo)
	stats.On("Range", int64(1), from, to).Return([]domain.BannerStat{
		{BannerID: 1, Views: 100, Clicks: 4, UniqueViews: 90},
		{BannerID: 1, Views: 100, Clicks: 6, UniqueViews: 70},
	}, nil)

	svc := NewAnalyticsService(stats)
	sum, err := svc.Summary(1, from, to)
	assert.NoError(t, err)

	assert.Equal(t, int64(200), sum.TotalViews)
	assert.Equal(t, int64(10), sum.TotalClicks)
	assert.Equal(t, int64(160), sum.UniqueViews)
	assert.Equal(t, 5.0, sum.OverallCTR)
	assert.NotNil(t, sum.From)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *sum.From)
	assert.Len(t, sum.Daily, 2)
}

func TestSummaryOpenRange(t *testing.T) {
	stats := new(mockStatsRepo)
	stats.On("Range", int64(1), time.Time{}, time.Time{}).Return([]domain.BannerStat{
		{BannerID: 1, Views: 40, Clicks: 2},
	}, nil)

	svc := NewAnalyticsService(stats)
	sum, err := svc.Summary(1, time.Time{}, time.Time{})
	assert.NoError(t, err)

	// Absent bounds pass through untouched and stay absent in the result
	assert.Nil(t, sum.From)
	assert.Nil(t, sum.To)
	assert.Equal(t, int64(40), sum.TotalViews)
}

func TestSummaryPropagatesRepoError(t *testing.T) {
	stats := new(mockStatsRepo)
	stats.On("Range", int64(1), mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	svc := NewAnalyticsService(stats)
	_, err := svc.Summary(1, time.Now(), time.Now())
	assert.Error(t, err)
}
