package repository

import (
	"context"

	"calshare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAuthNotFound is returned when no credential exists for a provider/identifier pair.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines persistence operations for login credentials.
type AuthRepository interface {
	// CreateAuthentication persists a new credential for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by provider and provider-side user id.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}
