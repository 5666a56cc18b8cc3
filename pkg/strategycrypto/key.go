package strategycrypto

import (
	"encoding/base64"
	"encoding/hex"
)

// KeySize is the required key length in bytes (AES-256).
const KeySize = 32

// DefaultKey is the built-in development key used when the caller supplies an
// empty key string. It exists so the tooling works out of the box without any
// environment setup; production deployments must override it via STRATEGY_KEY.
// The literal is carried over unchanged from the original implementation so
// that blobs sealed under the default key remain decryptable.
const DefaultKey = "agfdsfsdafsdafdsafsdafdsafdfghdy"

// ParseKey normalizes a key string into exactly 32 raw key bytes.
//
// An empty string selects DefaultKey. The (possibly substituted) string is
// then interpreted as, in order: raw bytes if it is exactly 32 characters
// long, hex, and standard base64. A decode that does not yield exactly 32
// bytes is not an error; it falls through to the next encoding. If nothing
// matches, ErrKeyFormat is returned.
//
// The raw-32 check deliberately runs before hex and base64 decoding. A
// 32-character string that happens to be valid hex or base64 is still taken
// as raw key material; existing deployments depend on this.
func ParseKey(keyStr string) ([]byte, error) {
	if keyStr == "" {
		keyStr = DefaultKey
	}

	if len(keyStr) == KeySize {
		return []byte(keyStr), nil
	}

	if raw, err := hex.DecodeString(keyStr); err == nil && len(raw) == KeySize {
		return raw, nil
	}

	if raw, err := base64.StdEncoding.DecodeString(keyStr); err == nil && len(raw) == KeySize {
		return raw, nil
	}

	return nil, ErrKeyFormat
}

// KeyEncoding identifies how a key string was interpreted by ParseKey.
type KeyEncoding string

const (
	KeyEncodingDefault KeyEncoding = "default"
	KeyEncodingRaw     KeyEncoding = "raw"
	KeyEncodingHex     KeyEncoding = "hex"
	KeyEncodingBase64  KeyEncoding = "base64"
	KeyEncodingInvalid KeyEncoding = "invalid"
)

// ClassifyKey reports which ParseKey path a key string takes, without
// returning any key material. Used by `btctl strategy-key inspect`.
func ClassifyKey(keyStr string) KeyEncoding {
	if keyStr == "" {
		return KeyEncodingDefault
	}
	if len(keyStr) == KeySize {
		return KeyEncodingRaw
	}
	if raw, err := hex.DecodeString(keyStr); err == nil && len(raw) == KeySize {
		return KeyEncodingHex
	}
	if raw, err := base64.StdEncoding.DecodeString(keyStr); err == nil && len(raw) == KeySize {
		return KeyEncodingBase64
	}
	return KeyEncodingInvalid
}
