// Package secret implements the share-secret primitives: generation, the
// URL-safe token encoding, the memory-hard verification hash and the fast
// reverse-index lookup key.
package secret

import (
	"crypto/rand"
	"encoding/base32"

	"calshare/internal/domain/entity"
	"calshare/internal/domain/service"

	"github.com/pkg/errors"
)

// TokenLength is the exact length of every encoded share token: 32 random
// bytes in unpadded base32.
const TokenLength = 52

// tokenEncoding is RFC 4648 base32 without padding. The standard alphabet
// (A-Z, 2-7) needs no escaping in a URL path segment.
var tokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type codec struct{}

// NewCodec is the constructor for the share-secret codec.
func NewCodec() service.SecretCodec {
	return &codec{}
}

// Generate produces a fresh 256-bit secret. An entropy failure aborts the
// whole creation request; there is no degraded mode.
func (c *codec) Generate() (entity.ShareSecret, error) {
	var s entity.ShareSecret
	if _, err := rand.Read(s[:]); err != nil {
		return entity.ShareSecret{}, errors.Wrap(err, "secure random source unavailable")
	}

	return s, nil
}

// Encode renders the secret as its fixed-length bearer token.
func (c *codec) Encode(s entity.ShareSecret) string {
	return tokenEncoding.EncodeToString(s[:])
}

// Decode parses a presented token. Length and alphabet are checked before
// any hashing so malformed tokens fail without touching index or verifier.
func (c *codec) Decode(token string) (entity.ShareSecret, error) {
	if len(token) != TokenLength {
		return entity.ShareSecret{}, service.ErrMalformedToken
	}

	raw, err := tokenEncoding.DecodeString(token)
	if err != nil || len(raw) != len(entity.ShareSecret{}) {
		return entity.ShareSecret{}, service.ErrMalformedToken
	}

	var s entity.ShareSecret
	copy(s[:], raw)

	return s, nil
}
