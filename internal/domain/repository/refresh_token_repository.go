package repository

import (
	"context"

	"calshare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository defines the interface for management-session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its stored hash.
	// Expired tokens are reported as ErrRefreshTokenExpired.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending the session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID removes all sessions for a user.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// CountActiveSessionsByUserID returns the number of non-expired sessions for a user.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
