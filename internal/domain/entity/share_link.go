package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShareSecret is the raw 256-bit bearer credential for one share link.
// It exists in memory only at creation time: the caller receives its
// encoded form exactly once and only a one-way hash is ever persisted.
type ShareSecret [32]byte

// ShareLink is the durable record of one issued share link. It never
// carries the secret itself, only the salted verification hash.
type ShareLink struct {
	// ShareID is the stable management-API handle for this link, derived
	// from the verification hash so clients never need the plaintext
	// token to reference a link.
	ShareID string

	UserID      uuid.UUID // The owning account.
	CalendarID  uuid.UUID // The single calendar this link authorizes.
	Description string    // Owner-supplied free-text label.

	// SecretHash is the PHC-encoded argon2id hash of the raw secret.
	SecretHash string

	CreatedAt time.Time

	// LastUsed is nil until the first successful public access and
	// updated on each one thereafter. Updates are best effort.
	LastUsed *time.Time
}

// ReverseIndexEntry maps a lookup key derived from a secret to the owning
// account and share record. It is a performance structure: the ShareLink
// is authoritative, and an entry without a matching record is stale.
type ReverseIndexEntry struct {
	LookupKey string
	UserID    uuid.UUID
	ShareID   string
}
