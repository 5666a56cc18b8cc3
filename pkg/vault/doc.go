// Package vault stores strategy files as sealed blobs on disk.
//
// A Vault wraps a strategycrypto.Sealer with file conventions: a plaintext
// strategy file (by default *.py) is sealed into a sibling file with the
// sealed extension appended (strategy.py -> strategy.py.enc). The sealed file
// is the nonce||ciphertext||tag blob, nothing more, so it stays readable by
// any other tooling that speaks the same format.
//
// Watcher keeps a directory sealed continuously: every plaintext strategy
// file written into the directory is sealed as it appears.
package vault
