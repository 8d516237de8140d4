package repository

import (
	"context"
	"time"

	"calshare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrShareLinkNotFound is returned when no share-link record matches.
var ErrShareLinkNotFound = errors.New("share link not found")

// ShareLinkRepository is the record store for issued share links. The
// record is the source of truth; the reverse index is derived from it and
// the two mutate together inside one transaction (see TransactionManager).
type ShareLinkRepository interface {
	// Create persists a new share-link record under its owning user.
	Create(ctx context.Context, link *entity.ShareLink) error

	// FindForUser retrieves a record by share id, scoped to the owning user.
	FindForUser(ctx context.Context, userID uuid.UUID, shareID string) (*entity.ShareLink, error)

	// ListByUser returns all links of a user in creation order. Secrets are
	// never part of the record, so nothing needs redacting.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShareLink, error)

	// Delete removes a record by share id, scoped to the owning user.
	// Returns ErrShareLinkNotFound when nothing was deleted.
	Delete(ctx context.Context, userID uuid.UUID, shareID string) error

	// TouchLastUsed sets the last-used timestamp. Best effort: callers on
	// the serving path log failures instead of surfacing them.
	TouchLastUsed(ctx context.Context, userID uuid.UUID, shareID string, usedAt time.Time) error
}
