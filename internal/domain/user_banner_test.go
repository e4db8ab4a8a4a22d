package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserBannerModeration(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	ub := UserBanner{ID: 1, UserID: 7, Status: UserBannerStatusPending}
	assert.True(t, ub.IsPending())

	ub.Reject(99, "image too blurry", now)
	assert.Equal(t, UserBannerStatusRejected, ub.Status)
	assert.Equal(t, "image too blurry", ub.RejectionReason)
	assert.False(t, ub.IsPending())

	// Re-review clears the stale rejection reason
	ub.Approve(99, now)
	assert.Equal(t, UserBannerStatusApproved, ub.Status)
	assert.Empty(t, ub.RejectionReason)
	assert.Equal(t, int64(99), *ub.ApprovedBy)
	assert.Equal(t, now, *ub.ApprovedAt)
}

func TestUserBannerCanBeEditedBy(t *testing.T) {
	ub := UserBanner{UserID: 7, Status: UserBannerStatusPending}

	assert.True(t, ub.CanBeEditedBy(7))
	assert.False(t, ub.CanBeEditedBy(8))

	ub.Status = UserBannerStatusApproved
	assert.False(t, ub.CanBeEditedBy(7))
}
