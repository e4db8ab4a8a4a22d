package i18n

// DefaultMessages returns built-in translations for all supported locales.
// These can be overridden by loading JSON files from a directory.
func DefaultMessages() map[Locale]map[string]string {
	return map[Locale]map[string]string{
		LocaleAr: arMessages,
		LocaleEn: enMessages,
	}
}

var arMessages = map[string]string{
	// Common errors
	"error.not_found":    "المورد المطلوب غير موجود",
	"error.unauthorized": "غير مخول للوصول",
	"error.forbidden":    "ليس لديك صلاحية لتنفيذ هذا الإجراء",
	"error.bad_request":  "طلب غير صحيح",
	"error.internal":     "حدث خطأ داخلي في الخادم",
	"error.validation":   "البيانات المدخلة غير صحيحة",

	// Banner validation
	"banner.title_length":        "العنوان مطلوب ويجب أن يكون 3 أحرف على الأقل",
	"banner.alt_text_required":   "النص البديل مطلوب",
	"banner.alt_text_length":     "النص البديل طويل جداً (الحد الأقصى: %d حرفاً)",
	"banner.invalid_type":        "نوع البنر غير صحيح",
	"banner.invalid_position":    "موضع البنر غير صحيح",
	"banner.invalid_category":    "فئة البنر غير صحيحة",
	"banner.invalid_governorate": "المحافظة غير صحيحة",
	"banner.date_range":          "تاريخ البداية يجب أن يكون قبل تاريخ النهاية",

	// Schedule validation
	"schedule.days":        "أيام الأسبوع يجب أن تكون بين 0 و 6",
	"schedule.time_range":  "وقت البداية يجب أن يكون قبل وقت النهاية",
	"schedule.time_format": "صيغة الوقت يجب أن تكون HH:MM",
	"schedule.timezone":    "المنطقة الزمنية غير صحيحة",

	// Quotas
	"quota.banner_limit":   "تم تجاوز الحد الأقصى للبنرات",
	"quota.file_too_large": "حجم الملف كبير جداً (الحد الأقصى: %dMB)",
	"quota.file_type":      "نوع الملف غير مدعوم",

	// Workflows
	"banner.approved":    "تمت الموافقة على البنر",
	"banner.published":   "تم نشر البنر",
	"banner.unpublished": "تم إلغاء نشر البنر",
}

var enMessages = map[string]string{
	// Common errors
	"error.not_found":    "The requested resource was not found",
	"error.unauthorized": "Authentication required",
	"error.forbidden":    "You are not allowed to perform this action",
	"error.bad_request":  "Bad request",
	"error.internal":     "An internal server error occurred",
	"error.validation":   "The submitted data is invalid",

	// Banner validation
	"banner.title_length":        "Title is required and must be at least 3 characters",
	"banner.alt_text_required":   "Alt text is required",
	"banner.alt_text_length":     "Alt text is too long (maximum: %d characters)",
	"banner.invalid_type":        "Invalid banner type",
	"banner.invalid_position":    "Invalid banner position",
	"banner.invalid_category":    "Invalid banner category",
	"banner.invalid_governorate": "Invalid governorate",
	"banner.date_range":          "Start date must be before end date",

	// Schedule validation
	"schedule.days":        "Days of week must be between 0 and 6",
	"schedule.time_range":  "Start time must be before end time",
	"schedule.time_format": "Time must be formatted as HH:MM",
	"schedule.timezone":    "Invalid timezone",

	// Quotas
	"quota.banner_limit":   "Maximum number of banners exceeded",
	"quota.file_too_large": "File is too large (maximum: %dMB)",
	"quota.file_type":      "Unsupported file type",

	// Workflows
	"banner.approved":    "Banner approved",
	"banner.published":   "Banner published",
	"banner.unpublished": "Banner unpublished",
}
