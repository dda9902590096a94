package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned (wrapped) by [CredentialCipher.Decrypt]
	// for any blob that cannot be opened with the given passphrase.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEmptyPassphrase is returned when Encrypt or Decrypt is called with
	// an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")
)
