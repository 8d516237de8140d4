package secret

import (
	"strings"
	"testing"

	"calshare/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_GenerateEncodeDecode_RoundTrip(t *testing.T) {
	codec := NewCodec()

	secret, err := codec.Generate()
	require.NoError(t, err)

	token := codec.Encode(secret)
	assert.Len(t, token, TokenLength)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, secret, decoded)
}

func TestCodec_Generate_Distinct(t *testing.T) {
	codec := NewCodec()

	seen := make(map[string]bool)
	for range 100 {
		secret, err := codec.Generate()
		require.NoError(t, err)

		token := codec.Encode(secret)
		assert.False(t, seen[token], "generated duplicate token")
		seen[token] = true
	}
}

func TestCodec_Encode_URLPathSafe(t *testing.T) {
	codec := NewCodec()

	secret, err := codec.Generate()
	require.NoError(t, err)

	token := codec.Encode(secret)
	for _, r := range token {
		isUpper := r >= 'A' && r <= 'Z'
		isDigit := r >= '2' && r <= '7'
		assert.True(t, isUpper || isDigit, "unexpected character %q in token", r)
	}
}

func TestCodec_Decode_RejectsMalformedInput(t *testing.T) {
	codec := NewCodec()

	valid := codec.Encode([32]byte{})

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "too short", token: valid[:TokenLength-1]},
		{name: "too long", token: valid + "A"},
		{name: "invalid alphabet", token: "!" + valid[1:]},
		{name: "lowercase", token: strings.ToLower(valid)},
		{name: "padding", token: valid[:TokenLength-1] + "="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.token)
			require.ErrorIs(t, err, service.ErrMalformedToken)
		})
	}
}
