package usecase

import (
	"context"
	"time"

	"calshare/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateShareLinkInput defines the data required to issue a share link.
type CreateShareLinkInput struct {
	UserID      uuid.UUID
	CalendarID  uuid.UUID
	Description string
}

// --- Output DTOs ---

// CreateShareLinkOutput carries the one and only disclosure of the
// plaintext token. It is never reconstructible afterwards.
type CreateShareLinkOutput struct {
	ShareID   string
	Token     string
	URL       string
	CreatedAt time.Time
}

// ShareUsecase defines management operations on share links. All
// operations are scoped to the authenticated account.
type ShareUsecase interface {
	// CreateShareLink mints a fresh secret for one calendar and persists
	// only its derived hashes. The returned token is shown exactly once.
	CreateShareLink(ctx context.Context, input *CreateShareLinkInput) (*CreateShareLinkOutput, error)

	// ListShareLinks returns the account's links in creation order. The
	// records carry no secret material.
	ListShareLinks(ctx context.Context, userID uuid.UUID) ([]*entity.ShareLink, error)

	// DeleteShareLink revokes a link: record and index entry are removed
	// together, so the token stops working immediately.
	DeleteShareLink(ctx context.Context, userID uuid.UUID, shareID string) error

	// ShareLinkQRCode renders the public feed URL of a link as a PNG. The
	// caller supplies the plaintext token, which the server cannot
	// recover; it is verified against the link's stored hash first.
	ShareLinkQRCode(ctx context.Context, userID uuid.UUID, shareID, token string) ([]byte, error)
}
