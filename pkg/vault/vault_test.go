package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itisl2220/bullet-trade/pkg/strategycrypto"
)

const testVaultKey = "0123456789abcdefghijklmnopqrstuv"

func newTestVault(t *testing.T) *Vault {
	t.Helper()
	v, err := New(testVaultKey, "", "")
	require.NoError(t, err)
	return v
}

func TestNewRejectsBadKey(t *testing.T) {
	_, err := New("not a usable key string", "", "")
	assert.ErrorIs(t, err, strategycrypto.ErrKeyFormat)
}

func TestSealFileRoundTrip(t *testing.T) {
	v := newTestVault(t)
	dir := t.TempDir()

	code := []byte("def initialize(context):\n    pass\n")
	path := filepath.Join(dir, "momentum.py")
	require.NoError(t, os.WriteFile(path, code, 0600))

	outPath, err := v.SealFile(path)
	require.NoError(t, err)
	assert.Equal(t, path+".enc", outPath)

	blob, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Len(t, blob, strategycrypto.NonceSize+len(code)+strategycrypto.TagSize)
	assert.NotContains(t, string(blob), "initialize")

	plainText, err := v.OpenFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, code, plainText)
}

func TestOpenFileTo(t *testing.T) {
	v := newTestVault(t)
	dir := t.TempDir()

	code := []byte("print('live')\n")
	path := filepath.Join(dir, "live.py")
	require.NoError(t, os.WriteFile(path, code, 0600))

	outPath, err := v.SealFile(path)
	require.NoError(t, err)

	dest := filepath.Join(dir, "recovered.py")
	require.NoError(t, v.OpenFileTo(outPath, dest))

	recovered, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, code, recovered)
}

func TestOpenFileWrongKey(t *testing.T) {
	v := newTestVault(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "s.py")
	require.NoError(t, os.WriteFile(path, []byte("code"), 0600))

	outPath, err := v.SealFile(path)
	require.NoError(t, err)

	other, err := New("vutsrqponmlkjihgfedcba9876543210", "", "")
	require.NoError(t, err)

	_, err = other.OpenFile(outPath)
	assert.ErrorIs(t, err, strategycrypto.ErrDecryptFailed)
}

func TestSealDir(t *testing.T) {
	v := newTestVault(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte("a"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.py"), []byte("b"), 0600))
	// Not a strategy file; must be skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("n"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0700))

	sealed, err := v.SealDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.py.enc"),
		filepath.Join(dir, "b.py.enc"),
	}, sealed)

	// A second pass finds nothing new to seal.
	sealed, err = v.SealDir(dir)
	require.NoError(t, err)
	assert.Empty(t, sealed)
}

func TestIsPlainIsSealed(t *testing.T) {
	v := newTestVault(t)

	assert.True(t, v.IsPlain("x.py"))
	assert.False(t, v.IsPlain("x.py.enc"))
	assert.False(t, v.IsPlain("x.txt"))
	assert.True(t, v.IsSealed("x.py.enc"))
	assert.False(t, v.IsSealed("x.py"))
}
