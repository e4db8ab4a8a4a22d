package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naebak/banner-backend/internal/common"
	"github.com/naebak/banner-backend/internal/domain"
)

func TestPageBannerPageKeyIsUnique(t *testing.T) {
	db := openTestDB(t)
	repo := NewPageBannerRepository(db)

	require.NoError(t, repo.Create(&domain.PageBanner{PageKey: "home", Title: "Welcome"}))
	assert.Error(t, repo.Create(&domain.PageBanner{PageKey: "home", Title: "Second welcome"}))
}

func TestPageBannerFindByPageKey(t *testing.T) {
	db := openTestDB(t)
	repo := NewPageBannerRepository(db)

	require.NoError(t, repo.Create(&domain.PageBanner{PageKey: "candidates", Title: "Meet them"}))

	pb, err := repo.FindByPageKey("candidates")
	require.NoError(t, err)
	assert.Equal(t, "Meet them", pb.Title)

	_, err = repo.FindByPageKey("nowhere")
	assert.ErrorIs(t, err, common.ErrPageBannerNotFound)
}

func TestPageBannerDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewPageBannerRepository(db)

	pb := &domain.PageBanner{PageKey: "home", Title: "Welcome"}
	require.NoError(t, repo.Create(pb))

	require.NoError(t, repo.Delete(pb.ID))
	assert.ErrorIs(t, repo.Delete(pb.ID), common.ErrPageBannerNotFound)
}

func TestPageBannerListOrdersByPageKey(t *testing.T) {
	db := openTestDB(t)
	repo := NewPageBannerRepository(db)

	require.NoError(t, repo.Create(&domain.PageBanner{PageKey: "news", Title: "News"}))
	require.NoError(t, repo.Create(&domain.PageBanner{PageKey: "about", Title: "About"}))

	banners, err := repo.List()
	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, "about", banners[0].PageKey)
	assert.Equal(t, "news", banners[1].PageKey)
}
