package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Banner errors
	ErrBannerNotFound     = errors.New("banner not found")
	ErrUserBannerNotFound = errors.New("user banner not found")
	ErrPageBannerNotFound = errors.New("page banner not found")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Storage errors. The only class eligible for caller-side retry;
	// the core never retries and never swallows counter failures.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
