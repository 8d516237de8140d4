package service

import (
	"calshare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrMalformedToken rejects tokens that cannot possibly be valid (wrong
// length, invalid alphabet) before any hashing happens. It is routine bad
// input, not a security event.
var ErrMalformedToken = errors.New("malformed share token")

// SecretCodec generates share secrets and converts between the raw value
// and the URL-safe token a client holds.
type SecretCodec interface {
	// Generate produces a fresh 256-bit secret from a cryptographically
	// secure source. Failure of the entropy source is unrecoverable and
	// aborts the creation request.
	Generate() (entity.ShareSecret, error)

	// Encode renders the secret as a fixed-length token safe in a URL path
	// segment without escaping.
	Encode(secret entity.ShareSecret) string

	// Decode parses a token back into the secret, returning
	// ErrMalformedToken for anything that is not a well-formed encoding.
	Decode(token string) (entity.ShareSecret, error)
}

// SecretVerifier owns the two one-way derivations of a share secret: the
// memory-hard verification hash that gates authorization, and the cheap
// keyed lookup hash that feeds the reverse index. The lookup key is never
// the sole gate; resolution always re-confirms through Verify.
type SecretVerifier interface {
	// Hash produces the salted, PHC-encoded verification hash for storage.
	Hash(secret entity.ShareSecret) (string, error)

	// Verify checks a presented secret against a stored hash. It never
	// fails on malformed stored hashes; they simply verify as false.
	Verify(secret entity.ShareSecret, encodedHash string) bool

	// LookupKey derives the fast, server-wide-keyed index key.
	LookupKey(secret entity.ShareSecret) string

	// ShareID derives the stable management handle from a stored hash.
	ShareID(encodedHash string) string
}
