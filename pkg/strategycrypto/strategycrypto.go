package strategycrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// NonceSize is the GCM nonce length in bytes.
const NonceSize = 12

// TagSize is the GCM authentication tag length in bytes.
const TagSize = 16

// Sealer performs authenticated encryption of strategy payloads with a fixed
// key. It is safe for concurrent use; each call draws its own nonce and keeps
// no state between calls.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer normalizes keyStr (see ParseKey) and constructs an AES-256-GCM
// sealer from the resulting key.
func NewSealer(keyStr string) (*Sealer, error) {
	key, err := ParseKey(keyStr)
	if err != nil {
		return nil, err
	}

	c, err := aes.NewCipher(key)
	if err != nil {
		// Unreachable with a 32-byte key out of ParseKey.
		return nil, fmt.Errorf("cipher init: %w", err)
	}

	aead, err := cipher.NewGCM(c)
	if err != nil {
		return nil, fmt.Errorf("cipher init: %w", err)
	}

	return &Sealer{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns the
// self-contained blob nonce || ciphertext || tag. Encrypting the same
// plaintext twice yields different blobs.
func (s *Sealer) Encrypt(plainText []byte) ([]byte, error) {
	nonce, err := RandomBytes(NonceSize)
	if err != nil {
		return nil, err
	}

	// Seal appends ciphertext||tag to the nonce, giving the wire layout
	// directly.
	return s.aead.Seal(nonce, nonce, plainText, nil), nil
}

// Decrypt opens a blob produced by Encrypt and returns the plaintext.
//
// A blob shorter than the nonce fails with ErrBlobTooShort before any
// cryptographic work. Any authentication failure is reported as
// ErrDecryptFailed without further detail, so a caller (or an attacker
// observing a caller) cannot tell a wrong key from a tampered blob.
func (s *Sealer) Decrypt(blob []byte) ([]byte, error) {
	if len(blob) < NonceSize {
		return nil, ErrBlobTooShort
	}

	nonce, cipherText := blob[:NonceSize], blob[NonceSize:]

	plainText, err := s.aead.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}

	return plainText, nil
}

// EncryptBytes is the one-shot form of Sealer.Encrypt: it normalizes keyStr
// and seals plaintext in a single call.
func EncryptBytes(keyStr string, plainText []byte) ([]byte, error) {
	sealer, err := NewSealer(keyStr)
	if err != nil {
		return nil, err
	}
	return sealer.Encrypt(plainText)
}

// DecryptBytes is the one-shot form of Sealer.Decrypt.
func DecryptBytes(keyStr string, blob []byte) ([]byte, error) {
	if len(blob) < NonceSize {
		return nil, ErrBlobTooShort
	}
	sealer, err := NewSealer(keyStr)
	if err != nil {
		return nil, err
	}
	return sealer.Decrypt(blob)
}

// RandomBytes returns size bytes from the platform's secure random source.
func RandomBytes(size int) ([]byte, error) {
	value := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, value); err != nil {
		return nil, err
	}

	return value, nil
}
