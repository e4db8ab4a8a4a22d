package domain

import "time"

// PageBanner is the hero creative of a site page. Each page carries at most
// one, addressed by its unique page key, with its own publish switch and
// bilingual content independent of the positioned Banner inventory.
type PageBanner struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PageKey string `gorm:"column:page_key;size:100;uniqueIndex;not null" json:"page_key"`

	PageName   string `gorm:"column:page_name;size:200" json:"page_name"`
	PageNameEn string `gorm:"column:page_name_en;size:200" json:"page_name_en,omitempty"`

	Title         string `gorm:"column:title;size:200" json:"title"`
	TitleEn       string `gorm:"column:title_en;size:200" json:"title_en,omitempty"`
	Subtitle      string `gorm:"column:subtitle;size:300" json:"subtitle,omitempty"`
	SubtitleEn    string `gorm:"column:subtitle_en;size:300" json:"subtitle_en,omitempty"`
	Description   string `gorm:"column:description;type:text" json:"description,omitempty"`
	DescriptionEn string `gorm:"column:description_en;type:text" json:"description_en,omitempty"`

	ImageURL           string `gorm:"column:image_url;size:500" json:"image_url,omitempty"`
	BackgroundImageURL string `gorm:"column:background_image_url;size:500" json:"background_image_url,omitempty"`
	MobileImageURL     string `gorm:"column:mobile_image_url;size:500" json:"mobile_image_url,omitempty"`

	BackgroundColor string  `gorm:"column:background_color;size:7;default:#007BFF" json:"background_color"`
	TextColor       string  `gorm:"column:text_color;size:7;default:#FFFFFF" json:"text_color"`
	OverlayOpacity  float64 `gorm:"column:overlay_opacity;default:0.5" json:"overlay_opacity"`

	Height        string `gorm:"column:height;size:20;default:400px" json:"height"`
	Alignment     string `gorm:"column:alignment;size:20;default:center" json:"alignment"`
	AnimationType string `gorm:"column:animation_type;size:30;default:fade" json:"animation_type"`

	CTAText   string `gorm:"column:cta_text;size:100" json:"cta_text,omitempty"`
	CTATextEn string `gorm:"column:cta_text_en;size:100" json:"cta_text_en,omitempty"`
	CTAURL    string `gorm:"column:cta_url;size:500" json:"cta_url,omitempty"`
	CTAStyle  string `gorm:"column:cta_style;size:20;default:primary" json:"cta_style"`

	IsActive    bool `gorm:"column:is_active;default:true" json:"is_active"`
	IsPublished bool `gorm:"column:is_published;default:false" json:"is_published"`

	CreatedBy int64  `gorm:"column:created_by" json:"created_by"`
	UpdatedBy *int64 `gorm:"column:updated_by" json:"updated_by,omitempty"`

	CustomCSS string   `gorm:"column:custom_css;type:text" json:"custom_css,omitempty"`
	CustomJS  string   `gorm:"column:custom_js;type:text" json:"custom_js,omitempty"`
	Metadata  Metadata `gorm:"column:metadata;type:text" json:"metadata,omitempty"`

	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
}

// TableName specifies the table name for PageBanner model
func (PageBanner) TableName() string {
	return "page_banners"
}

// Publish turns the page banner live and records who flipped it
func (pb *PageBanner) Publish(adminID int64, now time.Time) {
	pb.IsPublished = true
	pb.PublishedAt = &now
	pb.UpdatedBy = &adminID
}

// Unpublish turns the page banner dark. The publish timestamp is kept so
// the last publication remains traceable.
func (pb *PageBanner) Unpublish(adminID int64) {
	pb.IsPublished = false
	pb.UpdatedBy = &adminID
}

// IsLive reports whether the page banner should be served publicly
func (pb *PageBanner) IsLive() bool {
	return pb.IsActive && pb.IsPublished
}

// CreatePageBannerRequest is the request body for creating a page banner
type CreatePageBannerRequest struct {
	PageKey    string `json:"page_key" binding:"required"`
	PageName   string `json:"page_name"`
	PageNameEn string `json:"page_name_en"`

	Title         string `json:"title" binding:"required"`
	TitleEn       string `json:"title_en"`
	Subtitle      string `json:"subtitle"`
	SubtitleEn    string `json:"subtitle_en"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`

	ImageURL           string `json:"image_url"`
	BackgroundImageURL string `json:"background_image_url"`
	MobileImageURL     string `json:"mobile_image_url"`

	BackgroundColor string   `json:"background_color"`
	TextColor       string   `json:"text_color"`
	OverlayOpacity  *float64 `json:"overlay_opacity"`

	Height        string `json:"height"`
	Alignment     string `json:"alignment"`
	AnimationType string `json:"animation_type"`

	CTAText   string `json:"cta_text"`
	CTATextEn string `json:"cta_text_en"`
	CTAURL    string `json:"cta_url"`
	CTAStyle  string `json:"cta_style"`

	CustomCSS string   `json:"custom_css"`
	CustomJS  string   `json:"custom_js"`
	Metadata  Metadata `json:"metadata"`
}

// UpdatePageBannerRequest carries a partial page banner update; nil fields
// are left untouched
type UpdatePageBannerRequest struct {
	PageName   *string `json:"page_name"`
	PageNameEn *string `json:"page_name_en"`

	Title         *string `json:"title"`
	TitleEn       *string `json:"title_en"`
	Subtitle      *string `json:"subtitle"`
	SubtitleEn    *string `json:"subtitle_en"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`

	ImageURL           *string `json:"image_url"`
	BackgroundImageURL *string `json:"background_image_url"`
	MobileImageURL     *string `json:"mobile_image_url"`

	BackgroundColor *string  `json:"background_color"`
	TextColor       *string  `json:"text_color"`
	OverlayOpacity  *float64 `json:"overlay_opacity"`

	Height        *string `json:"height"`
	Alignment     *string `json:"alignment"`
	AnimationType *string `json:"animation_type"`

	CTAText   *string `json:"cta_text"`
	CTATextEn *string `json:"cta_text_en"`
	CTAURL    *string `json:"cta_url"`
	CTAStyle  *string `json:"cta_style"`

	IsActive *bool `json:"is_active"`

	CustomCSS *string  `json:"custom_css"`
	CustomJS  *string  `json:"custom_js"`
	Metadata  Metadata `json:"metadata"`
}
