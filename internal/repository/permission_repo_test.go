package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
)

func TestPermissionFindByUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewPermissionRepository(db)

	require.NoError(t, repo.Upsert(&domain.BannerPermission{
		UserID:           2,
		UserType:         "candidate",
		CanEditOwnBanner: true,
		MaxBanners:       1,
		IsActive:         true,
	}))

	p, err := repo.FindByUser(2, "candidate")
	require.NoError(t, err)
	assert.True(t, p.CanEditOwnBanner)
	assert.Equal(t, 1, p.MaxBanners)

	// The same user ID under another account type is a different row
	_, err = repo.FindByUser(2, "representative")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPermissionUpsertKeepsOneRowPerUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewPermissionRepository(db)

	require.NoError(t, repo.Upsert(&domain.BannerPermission{
		UserID:   3,
		UserType: "representative",
		IsActive: true,
	}))
	require.NoError(t, repo.Upsert(&domain.BannerPermission{
		UserID:       3,
		UserType:     "representative",
		CanViewStats: true,
		IsActive:     true,
	}))

	rows, err := repo.List()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].CanViewStats)
}

func TestPermissionUserTypePairIsUnique(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&domain.BannerPermission{UserID: 5, UserType: "candidate"}).Error)
	assert.Error(t, db.Create(&domain.BannerPermission{UserID: 5, UserType: "candidate"}).Error)
	// A different type for the same user is allowed
	assert.NoError(t, db.Create(&domain.BannerPermission{UserID: 5, UserType: "representative"}).Error)
}
