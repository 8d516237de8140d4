package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// The pgx text is still matched because GORM only translates errors
	// when TranslateError is enabled.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

// isStorageUnavailable reports whether the backend could not be reached at
// all, as opposed to rejecting the statement. Serving paths map this to a
// retryable failure instead of an authorization failure.
func isStorageUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "bad connection") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "57p01") || // admin_shutdown
		strings.Contains(errMsg, "53300") // too_many_connections
}
