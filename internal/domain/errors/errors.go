// Package errors defines the application error taxonomy. Every error that
// crosses the usecase boundary is an AppError so the delivery layer can map
// it to an HTTP status and a stable business code.
package errors

import (
	"net/http"

	"calshare/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrInvalidRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_REFRESH_TOKEN",
		"refresh token is invalid or expired",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// Calendar-related errors
	ErrCalendarNotFound = NewBaseError(
		http.StatusNotFound,
		"CALENDAR_NOT_FOUND",
		"calendar not found",
		"",
	)

	// Share-link errors. ErrShareUnauthorized is deliberately the single
	// outcome for every authorization failure on the public feed path:
	// malformed token, index miss and hash mismatch must be
	// indistinguishable to the caller.
	ErrShareUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"SHARE_UNAUTHORIZED",
		"share link is invalid or has been revoked",
		"",
	)

	ErrShareNotFound = NewBaseError(
		http.StatusNotFound,
		"SHARE_NOT_FOUND",
		"share link not found",
		"",
	)

	ErrShareConflict = NewBaseError(
		http.StatusConflict,
		"SHARE_CONFLICT",
		"share link creation conflicted, retry",
		"",
	)

	// ErrStorageUnavailable marks retryable infrastructure failure. It is
	// never collapsed into an authorization outcome.
	ErrStorageUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
		"storage backend temporarily unavailable",
		"",
	)

	// Generic errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"permission denied",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)
