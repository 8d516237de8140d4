package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only authentication provider the management API
// supports: email plus password.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider; currently always "email".
	ProviderUserID string    // The user's unique ID at the provider; the email address for "email".
	PasswordHash   string    // The bcrypt-hashed password.
	CreatedAt      time.Time // Timestamp of when this authentication method was created.
}

// RefreshToken represents a long-lived, authorized management session.
// It is used to obtain a new access token after the old one expires.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token; the raw token is never stored.
	ExpiresAt time.Time // When this refresh token expires and becomes invalid.
	CreatedAt time.Time // When this session was created.
}
