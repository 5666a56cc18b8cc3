package strategycrypto

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	raw := []byte("0123456789abcdefghijklmnopqrstuv")
	require.Len(t, raw, 32)

	tests := []struct {
		name     string
		keyStr   string
		expected []byte
		wantErr  bool
	}{
		{
			name:     "empty string selects default key",
			keyStr:   "",
			expected: []byte(DefaultKey),
		},
		{
			name:     "raw 32-character string",
			keyStr:   string(raw),
			expected: raw,
		},
		{
			name:     "hex encoding",
			keyStr:   hex.EncodeToString(raw),
			expected: raw,
		},
		{
			name:     "base64 encoding",
			keyStr:   base64.StdEncoding.EncodeToString(raw),
			expected: raw,
		},
		{
			name:    "too short",
			keyStr:  "short",
			wantErr: true,
		},
		{
			name:    "33 characters, not decodable",
			keyStr:  strings.Repeat("z", 33),
			wantErr: true,
		},
		{
			name:    "hex of wrong length",
			keyStr:  hex.EncodeToString(make([]byte, 16)),
			wantErr: false, // 32 hex chars: taken as raw, not decoded
		},
		{
			name:    "base64 of wrong length",
			keyStr:  base64.StdEncoding.EncodeToString(make([]byte, 20)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.keyStr)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrKeyFormat)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key, KeySize)
			if tt.expected != nil {
				assert.Equal(t, tt.expected, key)
			}
		})
	}
}

// A 32-character string that is also valid hex must be taken as raw bytes,
// never decoded. Existing keys depend on this precedence.
func TestParseKeyRawPrecedence(t *testing.T) {
	keyStr := hex.EncodeToString(make([]byte, 16)) // 32 chars of "00"
	require.Len(t, keyStr, 32)

	key, err := ParseKey(keyStr)
	require.NoError(t, err)
	assert.Equal(t, []byte(keyStr), key, "32-char hex string must be used as raw bytes")

	decoded, _ := hex.DecodeString(keyStr)
	assert.NotEqual(t, decoded, key)
}

func TestParseKeyDefaultIsValid(t *testing.T) {
	key, err := ParseKey(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(DefaultKey), key)

	viaEmpty, err := ParseKey("")
	require.NoError(t, err)
	assert.Equal(t, key, viaEmpty)
}

func TestClassifyKey(t *testing.T) {
	raw := strings.Repeat("k", 32)

	tests := []struct {
		keyStr   string
		expected KeyEncoding
	}{
		{"", KeyEncodingDefault},
		{raw, KeyEncodingRaw},
		{hex.EncodeToString([]byte(raw)), KeyEncodingHex},
		{base64.StdEncoding.EncodeToString([]byte(raw)), KeyEncodingBase64},
		{"nope", KeyEncodingInvalid},
		// 32 chars of valid hex classifies as raw, mirroring ParseKey.
		{hex.EncodeToString(make([]byte, 16)), KeyEncodingRaw},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyKey(tt.keyStr), "key %q", tt.keyStr)
	}
}
