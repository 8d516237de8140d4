package repository

import (
	"context"

	"calshare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrIndexConflict is returned when Put finds the lookup key already mapped
// to a different owner. With 256-bit secrets this indicates a configuration
// problem rather than bad luck, so creation must fail instead of silently
// overwriting the existing entry.
var ErrIndexConflict = errors.New("reverse index key conflict")

// ReverseIndexRepository maps a secret's lookup key to the owning account
// and share record, replacing the full account scan a naive resolution
// would need. Entries are derived state: an entry whose record is gone is
// stale and may be removed lazily.
type ReverseIndexRepository interface {
	// Put associates a lookup key with its owner. Re-putting the identical
	// entry is a no-op; a key owned by a different pair is ErrIndexConflict.
	Put(ctx context.Context, entry *entity.ReverseIndexEntry) error

	// Get resolves a lookup key. A miss is (nil, nil): the caller treats it
	// as an authorization failure, not an infrastructure error.
	Get(ctx context.Context, lookupKey string) (*entity.ReverseIndexEntry, error)

	// Remove deletes a lookup key. Idempotent; removing an absent key is
	// not an error.
	Remove(ctx context.Context, lookupKey string) error

	// RemoveByShareID deletes whatever entries point at a share record.
	// Revocation uses this: the lookup key is derived from the secret,
	// which the server no longer has. Idempotent.
	RemoveByShareID(ctx context.Context, shareID string) error
}
