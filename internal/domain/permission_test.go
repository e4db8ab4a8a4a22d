package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	p := BannerPermission{
		UserID:           2,
		UserType:         "candidate",
		CanEditOwnBanner: true,
		CanViewStats:     true,
		IsActive:         true,
	}

	assert.True(t, p.CanPerform(ActionEditOwnBanner))
	assert.True(t, p.CanPerform(ActionViewStats))
	assert.False(t, p.CanPerform(ActionCreateBanners))
	assert.False(t, p.CanPerform(ActionApproveBanners))
	assert.False(t, p.CanPerform(ActionManageSettings))

	// Unknown actions are denied, never silently allowed
	assert.False(t, p.CanPerform("format_disk"))
}

func TestCanPerformFullGrant(t *testing.T) {
	p := BannerPermission{
		UserID:                1,
		UserType:              "admin",
		CanCreateBanners:      true,
		CanEditBanners:        true,
		CanDeleteBanners:      true,
		CanApproveBanners:     true,
		CanEditOwnBanner:      true,
		CanEditUserBanners:    true,
		CanApproveUserBanners: true,
		CanEditPageBanners:    true,
		CanPublishPageBanners: true,
		CanViewStats:          true,
		CanManageSettings:     true,
		IsActive:              true,
	}

	for _, action := range []string{
		ActionCreateBanners,
		ActionEditBanners,
		ActionDeleteBanners,
		ActionApproveBanners,
		ActionEditOwnBanner,
		ActionEditUserBanners,
		ActionApproveUserBanners,
		ActionEditPageBanners,
		ActionPublishPageBanners,
		ActionViewStats,
		ActionManageSettings,
	} {
		assert.True(t, p.CanPerform(action), action)
	}
}

func TestCanPerformInactive(t *testing.T) {
	p := BannerPermission{
		UserID:           2,
		UserType:         "candidate",
		CanEditOwnBanner: true,
		CanViewStats:     true,
		IsActive:         false,
	}

	// Deactivation overrides every granted capability
	assert.False(t, p.CanPerform(ActionEditOwnBanner))
	assert.False(t, p.CanPerform(ActionViewStats))
}

func TestAllowedFileTypes(t *testing.T) {
	p := BannerPermission{AllowedFileTypes: "jpg, PNG ,webp"}

	assert.Equal(t, []string{"jpg", "png", "webp"}, p.AllowedFileTypesList())
	assert.True(t, p.AllowsExtension("png"))
	assert.True(t, p.AllowsExtension(".JPG"))
	assert.False(t, p.AllowsExtension("svg"))

	// Empty allowlist admits anything
	p.AllowedFileTypes = ""
	assert.Nil(t, p.AllowedFileTypesList())
	assert.True(t, p.AllowsExtension("gif"))
}
