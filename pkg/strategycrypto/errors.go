package strategycrypto

import "errors"

var (
	// ErrKeyFormat means the key string did not normalize to 32 bytes under
	// any accepted encoding. Fix the configured key; nothing else recovers it.
	ErrKeyFormat = errors.New("strategy key must be a 32-byte value in raw, hex or base64 form")

	// ErrBlobTooShort means the blob cannot even contain a nonce. This is a
	// framing problem with the input, not a cryptographic failure.
	ErrBlobTooShort = errors.New("encrypted blob too short")

	// ErrDecryptFailed means authenticated decryption failed. The cause may
	// be a wrong key, a tampered ciphertext or a truncated tag; they are
	// intentionally indistinguishable here.
	ErrDecryptFailed = errors.New("decryption failed")
)
