package domain

import "time"

// BannerType is reference data describing a kind of banner creative
// (hero, sidebar, header, ...). Created at setup time, effectively immutable.
type BannerType struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"column:name;size:100;uniqueIndex;not null" json:"name"`
	NameAr          string    `gorm:"column:name_ar;size:100" json:"name_ar,omitempty"`
	Description     string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Icon            string    `gorm:"column:icon;size:50" json:"icon,omitempty"`
	Color           string    `gorm:"column:color;size:7;default:#007BFF" json:"color"`
	Priority        int       `gorm:"column:priority;default:1" json:"priority"` // 1=high, 5=low
	RecommendedSize string    `gorm:"column:recommended_size;size:20" json:"recommended_size,omitempty"`
	MaxFileSizeMB   int       `gorm:"column:max_file_size_mb;default:5" json:"max_file_size_mb"`
	IsActive        bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for BannerType model
func (BannerType) TableName() string {
	return "banner_types"
}

// BannerPosition is a named slot on a page where banners appear, with a
// capacity ceiling for concurrent display.
type BannerPosition struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;size:100;uniqueIndex;not null" json:"name"`
	NameAr       string    `gorm:"column:name_ar;size:100" json:"name_ar,omitempty"`
	Description  string    `gorm:"column:description;type:text" json:"description,omitempty"`
	CSSClass     string    `gorm:"column:css_class;size:100" json:"css_class,omitempty"`
	MaxBanners   int       `gorm:"column:max_banners;default:1" json:"max_banners"`
	DisplayOrder int       `gorm:"column:display_order;default:0" json:"display_order"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for BannerPosition model
func (BannerPosition) TableName() string {
	return "banner_positions"
}

// Governorate is a geographic targeting region. A banner with no governorate
// targets all regions.
type Governorate struct {
	ID     int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code   string `gorm:"column:code;size:3;uniqueIndex;not null" json:"code"`
	Name   string `gorm:"column:name;size:100;not null" json:"name"`
	NameAr string `gorm:"column:name_ar;size:100" json:"name_ar,omitempty"`
}

// TableName specifies the table name for Governorate model
func (Governorate) TableName() string {
	return "governorates"
}

// FileType describes an allowed upload format. Static reference data,
// never persisted.
type FileType struct {
	Extension string `json:"extension"`
	MimeType  string `json:"mime_type"`
	Name      string `json:"name"`
	MaxSizeMB int    `json:"max_size_mb"`
}

// TaxonomyResponse bundles all reference data for front-end consumption
type TaxonomyResponse struct {
	Types        []BannerType     `json:"types"`
	Positions    []BannerPosition `json:"positions"`
	Categories   []string         `json:"categories"`
	Governorates []Governorate    `json:"governorates"`
	FileTypes    []FileType       `json:"file_types"`
}
