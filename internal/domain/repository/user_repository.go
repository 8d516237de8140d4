// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"calshare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user lookup matches no account.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their login email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
