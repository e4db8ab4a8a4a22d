package domain

import (
	"strings"
	"time"
)

// Banner actions checkable against a permission row. The vocabulary is
// fixed; an action outside it is denied.
const (
	ActionCreateBanners      = "create_banners"
	ActionEditBanners        = "edit_banners"
	ActionDeleteBanners      = "delete_banners"
	ActionApproveBanners     = "approve_banners"
	ActionEditOwnBanner      = "edit_own_banner"
	ActionEditUserBanners    = "edit_user_banners"
	ActionApproveUserBanners = "approve_user_banners"
	ActionEditPageBanners    = "edit_page_banners"
	ActionPublishPageBanners = "publish_page_banners"
	ActionViewStats          = "view_stats"
	ActionManageSettings     = "manage_settings"
)

// BannerPermission is the per-account capability and quota row, keyed by
// (user_id, user_type). A row that is not active grants nothing, whatever
// its flags say.
type BannerPermission struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID   int64  `gorm:"column:user_id;not null;uniqueIndex:idx_user_permissions,priority:1" json:"user_id"`
	UserType string `gorm:"column:user_type;size:20;not null;uniqueIndex:idx_user_permissions,priority:2" json:"user_type"`

	CanCreateBanners      bool `gorm:"column:can_create_banners;default:false" json:"can_create_banners"`
	CanEditBanners        bool `gorm:"column:can_edit_banners;default:false" json:"can_edit_banners"`
	CanDeleteBanners      bool `gorm:"column:can_delete_banners;default:false" json:"can_delete_banners"`
	CanApproveBanners     bool `gorm:"column:can_approve_banners;default:false" json:"can_approve_banners"`
	CanEditOwnBanner      bool `gorm:"column:can_edit_own_banner;default:false" json:"can_edit_own_banner"`
	CanEditUserBanners    bool `gorm:"column:can_edit_user_banners;default:false" json:"can_edit_user_banners"`
	CanApproveUserBanners bool `gorm:"column:can_approve_user_banners;default:false" json:"can_approve_user_banners"`
	CanEditPageBanners    bool `gorm:"column:can_edit_page_banners;default:false" json:"can_edit_page_banners"`
	CanPublishPageBanners bool `gorm:"column:can_publish_page_banners;default:false" json:"can_publish_page_banners"`
	CanViewStats          bool `gorm:"column:can_view_stats;default:false" json:"can_view_stats"`
	CanManageSettings     bool `gorm:"column:can_manage_settings;default:false" json:"can_manage_settings"`

	// Quotas. MaxFileSize is in bytes.
	MaxBanners  int   `gorm:"column:max_banners;default:1" json:"max_banners"`
	MaxFileSize int64 `gorm:"column:max_file_size;default:5242880" json:"max_file_size"`
	// CSV of allowed extensions, e.g. "jpg,png". Empty = all known types.
	AllowedFileTypes string `gorm:"column:allowed_file_types;size:200;default:jpg,jpeg,png,gif" json:"allowed_file_types,omitempty"`

	IsActive bool `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for BannerPermission model
func (BannerPermission) TableName() string {
	return "banner_permissions"
}

// CanPerform maps an action name onto the matching capability flag. An
// inactive row denies everything; unknown actions are denied.
func (p *BannerPermission) CanPerform(action string) bool {
	if !p.IsActive {
		return false
	}
	switch action {
	case ActionCreateBanners:
		return p.CanCreateBanners
	case ActionEditBanners:
		return p.CanEditBanners
	case ActionDeleteBanners:
		return p.CanDeleteBanners
	case ActionApproveBanners:
		return p.CanApproveBanners
	case ActionEditOwnBanner:
		return p.CanEditOwnBanner
	case ActionEditUserBanners:
		return p.CanEditUserBanners
	case ActionApproveUserBanners:
		return p.CanApproveUserBanners
	case ActionEditPageBanners:
		return p.CanEditPageBanners
	case ActionPublishPageBanners:
		return p.CanPublishPageBanners
	case ActionViewStats:
		return p.CanViewStats
	case ActionManageSettings:
		return p.CanManageSettings
	default:
		return false
	}
}

// AllowedFileTypesList returns the extension allowlist, lowercased.
// Nil means no restriction beyond the globally known file types.
func (p *BannerPermission) AllowedFileTypesList() []string {
	if p.AllowedFileTypes == "" {
		return nil
	}
	parts := strings.Split(p.AllowedFileTypes, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		ext := strings.ToLower(strings.TrimSpace(part))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// AllowsExtension reports whether the quota row admits the extension
func (p *BannerPermission) AllowsExtension(ext string) bool {
	allowed := p.AllowedFileTypesList()
	if allowed == nil {
		return true
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, a := range allowed {
		if a == ext {
			return true
		}
	}
	return false
}
