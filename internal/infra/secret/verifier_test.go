package secret

import (
	"encoding/base64"
	"strings"
	"testing"

	"calshare/config"
	"calshare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestVerifier uses low-cost argon2 parameters so the suite stays fast.
func newTestVerifier(t *testing.T) *verifier {
	t.Helper()

	cfg := &config.Config{
		ShareLinks: &config.ShareLinksConfig{
			IndexKey: base64.StdEncoding.EncodeToString(make([]byte, 32)),
			Argon2: config.Argon2Config{
				MemoryKiB: 8 * 1024,
				Time:      1,
				Threads:   1,
			},
		},
	}

	v, err := NewVerifier(cfg)
	require.NoError(t, err)

	return v.(*verifier)
}

func testSecret(b byte) entity.ShareSecret {
	var s entity.ShareSecret
	for i := range s {
		s[i] = b
	}

	return s
}

func TestNewVerifier_RejectsBadIndexKey(t *testing.T) {
	tests := []struct {
		name     string
		indexKey string
	}{
		{name: "missing", indexKey: ""},
		{name: "not base64", indexKey: "%%%"},
		{name: "wrong length", indexKey: base64.StdEncoding.EncodeToString(make([]byte, 16))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{ShareLinks: &config.ShareLinksConfig{IndexKey: tt.indexKey}}
			_, err := NewVerifier(cfg)
			require.Error(t, err)
		})
	}
}

func TestVerifier_HashAndVerify(t *testing.T) {
	v := newTestVerifier(t)
	secret := testSecret(0xAB)

	encoded, err := v.Hash(secret)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	assert.True(t, v.Verify(secret, encoded))
	assert.False(t, v.Verify(testSecret(0xAC), encoded))
}

func TestVerifier_Hash_SaltedPerRecord(t *testing.T) {
	v := newTestVerifier(t)
	secret := testSecret(0x01)

	first, err := v.Hash(secret)
	require.NoError(t, err)
	second, err := v.Hash(secret)
	require.NoError(t, err)

	// Different salts, but both verify the same secret.
	assert.NotEqual(t, first, second)
	assert.True(t, v.Verify(secret, first))
	assert.True(t, v.Verify(secret, second))
}

func TestVerifier_Verify_MalformedStoredHash(t *testing.T) {
	v := newTestVerifier(t)
	secret := testSecret(0x42)

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "garbage", encoded: "not-a-hash"},
		{name: "wrong algorithm", encoded: "$argon2i$v=19$m=8,t=1,p=1$AAAA$AAAA"},
		{name: "bad params", encoded: "$argon2id$v=19$m=x,t=y,p=z$AAAA$AAAA"},
		{name: "bad salt", encoded: "$argon2id$v=19$m=8192,t=1,p=1$!!$AAAA"},
		{name: "truncated", encoded: "$argon2id$v=19$m=8192,t=1,p=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, v.Verify(secret, tt.encoded))
		})
	}
}

func TestVerifier_LookupKey_DeterministicAndKeyed(t *testing.T) {
	v := newTestVerifier(t)
	secret := testSecret(0x07)

	assert.Equal(t, v.LookupKey(secret), v.LookupKey(secret))
	assert.NotEqual(t, v.LookupKey(secret), v.LookupKey(testSecret(0x08)))

	// A different server key yields unrelated lookup keys.
	otherKey := make([]byte, 32)
	otherKey[0] = 1
	cfg := &config.Config{
		ShareLinks: &config.ShareLinksConfig{
			IndexKey: base64.StdEncoding.EncodeToString(otherKey),
			Argon2:   config.Argon2Config{MemoryKiB: 8 * 1024, Time: 1, Threads: 1},
		},
	}
	other, err := NewVerifier(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, v.LookupKey(secret), other.LookupKey(secret))
}

func TestVerifier_ShareID_StableAndOpaque(t *testing.T) {
	v := newTestVerifier(t)

	encoded, err := v.Hash(testSecret(0x11))
	require.NoError(t, err)

	shareID := v.ShareID(encoded)
	assert.Len(t, shareID, 32)
	assert.Equal(t, shareID, v.ShareID(encoded))
	assert.NotContains(t, encoded, shareID)

	otherHash, err := v.Hash(testSecret(0x11))
	require.NoError(t, err)
	assert.NotEqual(t, shareID, v.ShareID(otherHash))
}
