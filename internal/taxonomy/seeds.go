package taxonomy

import "github.com/naebak/banner-backend/internal/domain"

// Banner categories. Fixed vocabulary, not persisted.
const (
	CategoryPolitical     = "political"
	CategoryInformational = "informational"
	CategoryService       = "service"
	CategoryEvent         = "event"
	CategoryAnnouncement  = "announcement"
	CategoryEmergency     = "emergency"
)

// Categories lists the fixed banner category vocabulary
var Categories = []string{
	CategoryPolitical,
	CategoryInformational,
	CategoryService,
	CategoryEvent,
	CategoryAnnouncement,
	CategoryEmergency,
}

// FileTypes lists the supported upload formats with per-format size ceilings
var FileTypes = []domain.FileType{
	{Extension: "jpg", MimeType: "image/jpeg", Name: "JPEG", MaxSizeMB: 5},
	{Extension: "jpeg", MimeType: "image/jpeg", Name: "JPEG", MaxSizeMB: 5},
	{Extension: "png", MimeType: "image/png", Name: "PNG", MaxSizeMB: 5},
	{Extension: "gif", MimeType: "image/gif", Name: "GIF", MaxSizeMB: 3},
	{Extension: "webp", MimeType: "image/webp", Name: "WebP", MaxSizeMB: 4},
	{Extension: "svg", MimeType: "image/svg+xml", Name: "SVG", MaxSizeMB: 1},
}

// SeedTypes returns the initial banner type rows
func SeedTypes() []domain.BannerType {
	return []domain.BannerType{
		{Name: "hero", NameAr: "بنر رئيسي", Description: "Main banner at the top of the page", RecommendedSize: "1920x600", MaxFileSizeMB: 5, Priority: 1, IsActive: true},
		{Name: "sidebar", NameAr: "بنر جانبي", Description: "Sidebar banner", RecommendedSize: "300x250", MaxFileSizeMB: 2, Priority: 2, IsActive: true},
		{Name: "header", NameAr: "بنر علوي", Description: "Page header banner", RecommendedSize: "728x90", MaxFileSizeMB: 1, Priority: 3, IsActive: true},
		{Name: "footer", NameAr: "بنر سفلي", Description: "Page footer banner", RecommendedSize: "728x90", MaxFileSizeMB: 1, Priority: 4, IsActive: true},
		{Name: "popup", NameAr: "بنر منبثق", Description: "Popup banner", RecommendedSize: "600x400", MaxFileSizeMB: 3, Priority: 5, IsActive: true},
		{Name: "mobile", NameAr: "بنر الهاتف", Description: "Mobile-only banner", RecommendedSize: "320x100", MaxFileSizeMB: 1, Priority: 6, IsActive: true},
	}
}

// SeedPositions returns the initial position rows
func SeedPositions() []domain.BannerPosition {
	return []domain.BannerPosition{
		{Name: "top", NameAr: "أعلى الصفحة", CSSClass: "banner-top", MaxBanners: 1, DisplayOrder: 1, IsActive: true},
		{Name: "middle", NameAr: "وسط الصفحة", CSSClass: "banner-middle", MaxBanners: 2, DisplayOrder: 2, IsActive: true},
		{Name: "bottom", NameAr: "أسفل الصفحة", CSSClass: "banner-bottom", MaxBanners: 1, DisplayOrder: 3, IsActive: true},
		{Name: "sidebar_right", NameAr: "الشريط الجانبي الأيمن", CSSClass: "banner-sidebar-right", MaxBanners: 3, DisplayOrder: 4, IsActive: true},
		{Name: "sidebar_left", NameAr: "الشريط الجانبي الأيسر", CSSClass: "banner-sidebar-left", MaxBanners: 3, DisplayOrder: 5, IsActive: true},
		{Name: "floating", NameAr: "عائم", CSSClass: "banner-floating", MaxBanners: 1, DisplayOrder: 6, IsActive: true},
	}
}

// SeedGovernorates returns the 27 Egyptian governorates
func SeedGovernorates() []domain.Governorate {
	return []domain.Governorate{
		{Code: "CAI", Name: "Cairo", NameAr: "القاهرة"},
		{Code: "GIZ", Name: "Giza", NameAr: "الجيزة"},
		{Code: "ALX", Name: "Alexandria", NameAr: "الإسكندرية"},
		{Code: "DAK", Name: "Dakahlia", NameAr: "الدقهلية"},
		{Code: "RSS", Name: "Red Sea", NameAr: "البحر الأحمر"},
		{Code: "BEH", Name: "Beheira", NameAr: "البحيرة"},
		{Code: "FAY", Name: "Fayoum", NameAr: "الفيوم"},
		{Code: "GHR", Name: "Gharbia", NameAr: "الغربية"},
		{Code: "ISM", Name: "Ismailia", NameAr: "الإسماعيلية"},
		{Code: "MNF", Name: "Monufia", NameAr: "المنوفية"},
		{Code: "MNY", Name: "Minya", NameAr: "المنيا"},
		{Code: "QLY", Name: "Qalyubia", NameAr: "القليوبية"},
		{Code: "WAD", Name: "New Valley", NameAr: "الوادي الجديد"},
		{Code: "NSI", Name: "North Sinai", NameAr: "شمال سيناء"},
		{Code: "SSI", Name: "South Sinai", NameAr: "جنوب سيناء"},
		{Code: "SHR", Name: "Sharqia", NameAr: "الشرقية"},
		{Code: "SOH", Name: "Sohag", NameAr: "سوهاج"},
		{Code: "SUZ", Name: "Suez", NameAr: "السويس"},
		{Code: "ASW", Name: "Aswan", NameAr: "أسوان"},
		{Code: "ASY", Name: "Asyut", NameAr: "أسيوط"},
		{Code: "BNS", Name: "Beni Suef", NameAr: "بني سويف"},
		{Code: "PTS", Name: "Port Said", NameAr: "بورسعيد"},
		{Code: "DAM", Name: "Damietta", NameAr: "دمياط"},
		{Code: "KFS", Name: "Kafr El Sheikh", NameAr: "كفر الشيخ"},
		{Code: "MAT", Name: "Matrouh", NameAr: "مطروح"},
		{Code: "LUX", Name: "Luxor", NameAr: "الأقصر"},
		{Code: "QEN", Name: "Qena", NameAr: "قنا"},
	}
}

// SeedSettings returns the initial policy settings
func SeedSettings() []domain.BannerSetting {
	return []domain.BannerSetting{
		{Key: domain.SettingRequireAltText, Value: "true", ValueType: domain.SettingTypeBool, Description: "Reject banners whose image carries no alt text"},
		{Key: domain.SettingMaxAltTextLength, Value: "125", ValueType: domain.SettingTypeInt, Description: "Maximum alt text length in characters"},
		{Key: domain.SettingDefaultTimezone, Value: "Africa/Cairo", ValueType: domain.SettingTypeString, Description: "Timezone applied to schedules created without one"},
		{Key: domain.SettingCacheEnabled, Value: "true", ValueType: domain.SettingTypeBool, Description: "Serve display lists from Redis when available"},
		{Key: domain.SettingMaxActivePopups, Value: "1", ValueType: domain.SettingTypeInt, Description: "Popup banners shown concurrently on one page"},
	}
}

// SeedPermissions returns the default per-account capability rows
func SeedPermissions() []domain.BannerPermission {
	return []domain.BannerPermission{
		{
			UserID: 1, UserType: "admin",
			CanCreateBanners: true, CanEditBanners: true, CanDeleteBanners: true,
			CanApproveBanners: true, CanEditOwnBanner: true,
			CanEditUserBanners: true, CanApproveUserBanners: true,
			CanEditPageBanners: true, CanPublishPageBanners: true,
			CanViewStats: true, CanManageSettings: true,
			MaxBanners: 100, MaxFileSize: 10485760,
			AllowedFileTypes: "jpg,jpeg,png,gif,webp",
			IsActive:         true,
		},
		{
			UserID: 2, UserType: "candidate",
			CanEditOwnBanner: true,
			MaxBanners:       1, MaxFileSize: 5242880,
			AllowedFileTypes: "jpg,jpeg,png",
			IsActive:         true,
		},
		{
			UserID: 3, UserType: "representative",
			CanEditOwnBanner: true, CanViewStats: true,
			MaxBanners: 1, MaxFileSize: 5242880,
			AllowedFileTypes: "jpg,jpeg,png",
			IsActive:         true,
		},
	}
}
