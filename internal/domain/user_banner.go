package domain

import "time"

// User banner approval states
const (
	UserBannerStatusPending  = "pending"
	UserBannerStatusApproved = "approved"
	UserBannerStatusRejected = "rejected"
)

// UserBanner is a banner submitted by a non-admin account (candidate or
// current member) that must pass moderation before it can be displayed.
type UserBanner struct {
	ID     int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"column:user_id;not null;index" json:"user_id"`
	// candidate or member
	UserType string `gorm:"column:user_type;size:20;not null" json:"user_type"`

	Title    string `gorm:"column:title;size:200;not null" json:"title"`
	ImageURL string `gorm:"column:image_url;size:500;not null" json:"image_url"`
	AltText  string `gorm:"column:alt_text;size:200" json:"alt_text,omitempty"`
	LinkURL  string `gorm:"column:link_url;size:500" json:"link_url,omitempty"`

	// pending, approved or rejected
	Status          string     `gorm:"column:status;size:20;default:pending;index" json:"status"`
	ApprovedBy      *int64     `gorm:"column:approved_by" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	RejectionReason string     `gorm:"column:rejection_reason;size:500" json:"rejection_reason,omitempty"`

	// Set once moderation promotes the submission into a display banner
	BannerID *int64 `gorm:"column:banner_id" json:"banner_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for UserBanner model
func (UserBanner) TableName() string {
	return "user_banners"
}

// Approve marks the submission approved by the given admin. Any prior
// rejection reason is cleared.
func (ub *UserBanner) Approve(adminID int64, now time.Time) {
	ub.Status = UserBannerStatusApproved
	ub.ApprovedBy = &adminID
	ub.ApprovedAt = &now
	ub.RejectionReason = ""
}

// Reject marks the submission rejected with a reason. Approval fields are
// cleared so a re-reviewed submission carries no stale approver.
func (ub *UserBanner) Reject(adminID int64, reason string, now time.Time) {
	ub.Status = UserBannerStatusRejected
	ub.ApprovedBy = &adminID
	ub.ApprovedAt = &now
	ub.RejectionReason = reason
}

// IsPending reports whether the submission still awaits moderation
func (ub *UserBanner) IsPending() bool {
	return ub.Status == UserBannerStatusPending
}

// CanBeEditedBy reports whether the given user may still modify the
// submission: only the owner, and only while it has not been decided.
func (ub *UserBanner) CanBeEditedBy(userID int64) bool {
	return ub.UserID == userID && ub.Status == UserBannerStatusPending
}

// CreateUserBannerRequest is the request body for submitting a user banner
type CreateUserBannerRequest struct {
	Title    string `json:"title" binding:"required" validate:"required,min=3,max=200"`
	ImageURL string `json:"image_url" binding:"required" validate:"required,url"`
	AltText  string `json:"alt_text" validate:"max=500"`
	LinkURL  string `json:"link_url" validate:"omitempty,url"`
}

// ReviewUserBannerRequest is the request body for a moderation decision
type ReviewUserBannerRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}
