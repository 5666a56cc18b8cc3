// Package strategycrypto provides authenticated encryption for strategy
// payloads.
//
// This package implements the core cryptographic functionality used by
// bullet-trade to protect serialized strategy code and configuration, both at
// rest and in transit between the strategy server and the client. The name
// comes from the original Rust implementation.
//
// # Key Handling
//
// Keys are supplied as strings and normalized to 32 raw bytes. Three encodings
// are accepted, tried in order: a raw 32-character string, hex, and standard
// base64. An empty string selects a built-in development key that must be
// overridden in any real deployment (typically via the STRATEGY_KEY
// environment variable):
//
//	key, err := strategycrypto.ParseKey(os.Getenv("STRATEGY_KEY"))
//
// Note the raw-string check runs before any decoding, so a 32-character hex or
// base64 string is taken as raw key bytes. This precedence is a compatibility
// requirement: changing it would silently reinterpret existing keys.
//
// # Sealing
//
// Encryption is AES-256-GCM with a random 96-bit nonce and 128-bit tag. The
// output blob is self-contained:
//
//	nonce (12 bytes) || ciphertext || tag (16 bytes)
//
// There is no version byte and no associated data; the format is fixed and
// bit-compatible with blobs produced by the original implementation.
//
//	sealer, err := strategycrypto.NewSealer(key)
//	blob, err := sealer.Encrypt(strategyCode)
//	code, err := sealer.Decrypt(blob)
//
// For one-shot use, EncryptBytes and DecryptBytes take the key string
// directly.
package strategycrypto
