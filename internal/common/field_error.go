package common

// Stable validation and quota error codes. UIs key remediation text off
// these, so they must never change once published.
const (
	CodeTitleLength        = "title_length"
	CodeAltTextRequired    = "alt_text_required"
	CodeAltTextLength      = "alt_text_length"
	CodeInvalidType        = "invalid_type"
	CodeInvalidPosition    = "invalid_position"
	CodeInvalidCategory    = "invalid_category"
	CodeInvalidGovernorate = "invalid_governorate"
	CodeDateRange          = "date_range"
	CodeScheduleDays       = "schedule_days"
	CodeScheduleTimeRange  = "schedule_time_range"
	CodeScheduleTimezone   = "schedule_timezone"
	CodeBannerLimit        = "banner_limit"
	CodeFileTooLarge       = "file_too_large"
	CodeFileType           = "file_type"
	CodePageKeyTaken       = "page_key_taken"
)

// FieldError is a single validation or quota failure. Failures are always
// collected into a full list so one round-trip reports everything wrong.
type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// FieldErrors is a collected list of validation failures. An empty list
// means the input is valid.
type FieldErrors []FieldError

// ValidationError carries a collected failure list across the service
// boundary as an error value
type ValidationError struct {
	Fields FieldErrors
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Fields[0].Code
}

// NewValidationError wraps a non-empty failure list
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Add appends a failure and returns the extended list
func (e FieldErrors) Add(code, field, message string) FieldErrors {
	return append(e, FieldError{Code: code, Field: field, Message: message})
}

// HasCode reports whether any collected failure carries the given code
func (e FieldErrors) HasCode(code string) bool {
	for _, fe := range e {
		if fe.Code == code {
			return true
		}
	}
	return false
}
