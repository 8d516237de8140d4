// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns calendars and issues share links.
type User struct {
	ID        uuid.UUID // The unique identifier for the account.
	Email     string    // The user's primary contact email, used as the login identifier.
	Name      string    // The user's display name.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
