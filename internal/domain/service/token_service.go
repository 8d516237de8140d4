package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService issues and validates the JWT pair used by the management API.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns the user it
	// was issued to.
	ValidateAccessToken(token string) (uuid.UUID, error)

	// ValidateRefreshToken verifies a refresh token and returns the user it
	// was issued to.
	ValidateRefreshToken(token string) (uuid.UUID, error)

	// HashToken returns the deterministic hash under which a refresh token
	// is stored; the raw token never reaches the database.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured refresh-token lifetime.
	RefreshTokenDuration() time.Duration
}
