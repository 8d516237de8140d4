package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"calshare/config"
	"calshare/internal/domain/entity"
	"calshare/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
)

const (
	saltLength = 16
	keyLength  = 32

	// indexKeyLength is the required size of the server-wide lookup key.
	indexKeyLength = 32

	// shareIDBytes of the digest become the management handle; 128 bits is
	// collision-resistant and reveals nothing about the underlying hash.
	shareIDBytes = 16
)

// phcEncoding is the unpadded base64 used inside PHC hash strings.
var phcEncoding = base64.RawStdEncoding

type verifier struct {
	memoryKiB uint32
	time      uint32
	threads   uint8
	indexKey  []byte
}

// NewVerifier constructs the secret verifier from configuration. The
// base64 index key is mandatory: without it lookup keys would differ
// between restarts and every issued link would go dark.
func NewVerifier(cfg *config.Config) (service.SecretVerifier, error) {
	if cfg.ShareLinks == nil || cfg.ShareLinks.IndexKey == "" {
		return nil, errors.New("shareLinks.indexKey must be configured")
	}

	indexKey, err := base64.StdEncoding.DecodeString(cfg.ShareLinks.IndexKey)
	if err != nil {
		return nil, errors.Wrap(err, "shareLinks.indexKey is not valid base64")
	}
	if len(indexKey) != indexKeyLength {
		return nil, errors.Errorf("shareLinks.indexKey must decode to %d bytes, got %d", indexKeyLength, len(indexKey))
	}

	return &verifier{
		memoryKiB: cfg.ShareLinks.Argon2.MemoryKiB,
		time:      cfg.ShareLinks.Argon2.Time,
		threads:   cfg.ShareLinks.Argon2.Threads,
		indexKey:  indexKey,
	}, nil
}

// Hash derives the salted argon2id verification hash and encodes it as a
// PHC string, so the parameters used at creation travel with the record.
func (v *verifier) Hash(secret entity.ShareSecret) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "secure random source unavailable")
	}

	key := argon2.IDKey(secret[:], salt, v.time, v.memoryKiB, v.threads, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, v.memoryKiB, v.time, v.threads,
		phcEncoding.EncodeToString(salt), phcEncoding.EncodeToString(key))

	return encoded, nil
}

// Verify recomputes the hash with the parameters stored in the PHC string
// and compares in constant time. Malformed stored hashes verify as false
// rather than erroring; the pipeline treats both the same way.
func (v *verifier) Verify(secret entity.ShareSecret, encodedHash string) bool {
	memoryKiB, timeCost, threads, salt, key, err := parsePHC(encodedHash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey(secret[:], salt, timeCost, memoryKiB, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(computed, key) == 1
}

// LookupKey derives the cheap keyed hash used to address the reverse
// index. Keyed BLAKE2b with one server-wide key: deterministic across the
// cluster, useless to anyone without the key, and far too fast to gate
// authorization on its own.
func (v *verifier) LookupKey(secret entity.ShareSecret) string {
	h, err := blake2b.New256(v.indexKey)
	if err != nil {
		// Only reachable with an oversized key, which NewVerifier rejects.
		panic(err)
	}
	h.Write(secret[:])

	return hex.EncodeToString(h.Sum(nil))
}

// ShareID derives the stable management handle from the stored hash:
// the first 16 bytes of SHA-256 over the PHC string, hex encoded.
func (v *verifier) ShareID(encodedHash string) string {
	sum := sha256.Sum256([]byte(encodedHash))

	return hex.EncodeToString(sum[:shareIDBytes])
}

// parsePHC splits a $argon2id$v=..$m=..,t=..,p=..$salt$key string.
func parsePHC(encoded string) (memoryKiB, timeCost uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("not an argon2id PHC string")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "malformed version field")
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	var parallelism uint32
	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memoryKiB, &timeCost, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "malformed parameter field")
	}
	if parallelism == 0 || parallelism > 255 {
		return 0, 0, 0, nil, nil, errors.Errorf("parallelism out of range: %d", parallelism)
	}
	threads = uint8(parallelism)

	salt, err = phcEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "malformed salt")
	}

	key, err = phcEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, errors.New("malformed key")
	}

	return memoryKiB, timeCost, threads, salt, key, nil
}
