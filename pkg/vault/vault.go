package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/itisl2220/bullet-trade/pkg/strategycrypto"
)

const (
	defaultPlainExt  = ".py"
	defaultSealedExt = ".enc"
)

// Vault seals and opens strategy files with a fixed key.
type Vault struct {
	sealer    *strategycrypto.Sealer
	plainExt  string
	sealedExt string
}

// New constructs a Vault for the given key string. Empty extensions select
// the defaults (".py" plaintext, ".enc" sealed).
func New(keyStr, plainExt, sealedExt string) (*Vault, error) {
	sealer, err := strategycrypto.NewSealer(keyStr)
	if err != nil {
		return nil, err
	}

	if plainExt == "" {
		plainExt = defaultPlainExt
	}
	if sealedExt == "" {
		sealedExt = defaultSealedExt
	}

	return &Vault{sealer: sealer, plainExt: plainExt, sealedExt: sealedExt}, nil
}

// SealedPath returns the path a plaintext file seals to.
func (v *Vault) SealedPath(path string) string {
	return path + v.sealedExt
}

// IsSealed reports whether path carries the sealed extension.
func (v *Vault) IsSealed(path string) bool {
	return strings.HasSuffix(path, v.sealedExt)
}

// IsPlain reports whether path looks like a plaintext strategy file.
func (v *Vault) IsPlain(path string) bool {
	return strings.HasSuffix(path, v.plainExt) && !v.IsSealed(path)
}

// SealFile encrypts the file at path and writes the blob next to it with the
// sealed extension appended. Returns the path of the sealed file.
func (v *Vault) SealFile(path string) (string, error) {
	plainText, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	blob, err := v.sealer.Encrypt(plainText)
	if err != nil {
		return "", err
	}

	outPath := v.SealedPath(path)
	if err := os.WriteFile(outPath, blob, 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	return outPath, nil
}

// OpenFile decrypts the sealed file at path and returns the plaintext.
func (v *Vault) OpenFile(path string) ([]byte, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return v.sealer.Decrypt(blob)
}

// OpenFileTo decrypts the sealed file at path and writes the plaintext to
// dest.
func (v *Vault) OpenFileTo(path, dest string) error {
	plainText, err := v.OpenFile(path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dest, plainText, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	return nil
}

// SealDir seals every plaintext strategy file directly inside dir that does
// not already have a sealed counterpart. Returns the sealed file paths in
// stable order.
func (v *Vault) SealDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var sealed []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !v.IsPlain(path) {
			continue
		}
		if _, err := os.Stat(v.SealedPath(path)); err == nil {
			continue
		}

		outPath, err := v.SealFile(path)
		if err != nil {
			return sealed, err
		}
		sealed = append(sealed, outPath)
	}

	sort.Strings(sealed)
	return sealed, nil
}
