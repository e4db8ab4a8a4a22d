package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/taxonomy"
	"github.com/naebak/banner-backend/pkg/i18n"
)

// stubTaxonomyRepo serves the seed reference data without a database
type stubTaxonomyRepo struct{}

func (stubTaxonomyRepo) ListTypes(bool) ([]domain.BannerType, error) {
	return taxonomy.SeedTypes(), nil
}

func (stubTaxonomyRepo) FindTypeByName(string) (*domain.BannerType, error) {
	return nil, common.ErrNotFound
}

func (stubTaxonomyRepo) SaveType(*domain.BannerType) error { return nil }

func (stubTaxonomyRepo) ListPositions(bool) ([]domain.BannerPosition, error) {
	return taxonomy.SeedPositions(), nil
}

func (stubTaxonomyRepo) FindPositionByName(string) (*domain.BannerPosition, error) {
	return nil, common.ErrNotFound
}

func (stubTaxonomyRepo) SavePosition(*domain.BannerPosition) error { return nil }

func (stubTaxonomyRepo) ListGovernorates() ([]domain.Governorate, error) {
	return taxonomy.SeedGovernorates(), nil
}

func newTestValidator(t *testing.T) *BannerValidator {
	t.Helper()
	registry, err := taxonomy.NewRegistry(stubTaxonomyRepo{})
	require.NoError(t, err)
	return NewBannerValidator(registry, i18n.Default(), true, 125)
}

func validCreateRequest() *domain.CreateBannerRequest {
	return &domain.CreateBannerRequest{
		Title:      "Vote for change",
		ImageURL:   "https://cdn.example.org/banners/1.png",
		AltText:    "Campaign banner",
		BannerType: "hero",
		Position:   "top",
		Category:   taxonomy.CategoryPolitical,
	}
}

func codes(errs common.FieldErrors) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidateCreateOK(t *testing.T) {
	v := newTestValidator(t)
	errs := v.ValidateCreate(validCreateRequest(), i18n.LocaleEn)
	assert.Empty(t, errs)
}

func TestValidateCreateCollectsAllViolations(t *testing.T) {
	v := newTestValidator(t)

	req := validCreateRequest()
	req.Title = "  ab  "
	req.BannerType = "jumbotron"
	req.Category = "sports"

	errs := v.ValidateCreate(req, i18n.LocaleEn)

	got := codes(errs)
	assert.Contains(t, got, common.CodeTitleLength)
	assert.Contains(t, got, common.CodeInvalidType)
	assert.Contains(t, got, common.CodeInvalidCategory)
	assert.Len(t, errs, 3)
}

func TestValidateCreateAltTextPolicy(t *testing.T) {
	v := newTestValidator(t)

	req := validCreateRequest()
	req.AltText = ""
	errs := v.ValidateCreate(req, i18n.LocaleEn)
	assert.Equal(t, []string{common.CodeAltTextRequired}, codes(errs))

	// Without an image there is nothing to describe
	req.ImageURL = ""
	errs = v.ValidateCreate(req, i18n.LocaleEn)
	assert.Empty(t, errs)
}

func TestValidateCreateGovernorate(t *testing.T) {
	v := newTestValidator(t)

	req := validCreateRequest()
	cai := "CAI"
	req.Governorate = &cai
	assert.Empty(t, v.ValidateCreate(req, i18n.LocaleEn))

	bogus := "XYZ"
	req.Governorate = &bogus
	errs := v.ValidateCreate(req, i18n.LocaleEn)
	assert.Equal(t, []string{common.CodeInvalidGovernorate}, codes(errs))
}

func TestValidateCreateDateRange(t *testing.T) {
	v := newTestValidator(t)

	req := validCreateRequest()
	start := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	req.StartDate = &start
	req.EndDate = &end

	errs := v.ValidateCreate(req, i18n.LocaleEn)
	assert.Equal(t, []string{common.CodeDateRange}, codes(errs))
}

func TestValidateCreateEqualDatesRejected(t *testing.T) {
	v := newTestValidator(t)

	// The window must be non-empty: end strictly after start
	req := validCreateRequest()
	day := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	req.StartDate = &day
	req.EndDate = &day

	errs := v.ValidateCreate(req, i18n.LocaleEn)
	assert.Equal(t, []string{common.CodeDateRange}, codes(errs))

	after := day.Add(24 * time.Hour)
	req.EndDate = &after
	assert.Empty(t, v.ValidateCreate(req, i18n.LocaleEn))
}

func TestValidateSchedule(t *testing.T) {
	v := newTestValidator(t)

	str := func(s string) *string { return &s }

	t.Run("valid", func(t *testing.T) {
		in := domain.ScheduleInput{
			DaysOfWeek: []int{1, 2, 3, 4, 5},
			StartTime:  str("09:00"),
			EndTime:    str("17:00"),
			Timezone:   "Africa/Cairo",
		}
		assert.Empty(t, v.ValidateSchedule(&in, i18n.LocaleEn))
	})

	t.Run("day out of range", func(t *testing.T) {
		in := domain.ScheduleInput{DaysOfWeek: []int{7}}
		errs := v.ValidateSchedule(&in, i18n.LocaleEn)
		assert.Equal(t, []string{common.CodeScheduleDays}, codes(errs))
	})

	t.Run("overnight window rejected", func(t *testing.T) {
		in := domain.ScheduleInput{StartTime: str("22:00"), EndTime: str("02:00")}
		errs := v.ValidateSchedule(&in, i18n.LocaleEn)
		assert.Equal(t, []string{common.CodeScheduleTimeRange}, codes(errs))
	})

	t.Run("bad clock format", func(t *testing.T) {
		in := domain.ScheduleInput{StartTime: str("9am")}
		errs := v.ValidateSchedule(&in, i18n.LocaleEn)
		assert.Equal(t, []string{common.CodeScheduleTimeRange}, codes(errs))
	})

	t.Run("unknown timezone", func(t *testing.T) {
		in := domain.ScheduleInput{Timezone: "Mars/Olympus"}
		errs := v.ValidateSchedule(&in, i18n.LocaleEn)
		assert.Equal(t, []string{common.CodeScheduleTimezone}, codes(errs))
	})
}

func TestValidateUpdate(t *testing.T) {
	v := newTestValidator(t)

	existing := &domain.Banner{Title: "Current title"}
	start := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	existing.StartDate = &start

	t.Run("only supplied fields are checked", func(t *testing.T) {
		errs := v.ValidateUpdate(&domain.UpdateBannerRequest{}, existing, i18n.LocaleEn)
		assert.Empty(t, errs)
	})

	t.Run("short title rejected", func(t *testing.T) {
		short := "ab"
		errs := v.ValidateUpdate(&domain.UpdateBannerRequest{Title: &short}, existing, i18n.LocaleEn)
		assert.Equal(t, []string{common.CodeTitleLength}, codes(errs))
	})

	t.Run("new end date checked against existing start", func(t *testing.T) {
		end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
		errs := v.ValidateUpdate(&domain.UpdateBannerRequest{EndDate: &end}, existing, i18n.LocaleEn)
		assert.Equal(t, []string{common.CodeDateRange}, codes(errs))
	})
}
