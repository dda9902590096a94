package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_cipher_mock.go -package=mock

// CredentialCipher turns a passphrase and a small plaintext (a serialized
// credential record) into a text blob that can be written to a file, and
// back.
//
// Scheme:
//
//	salt  = 16 random bytes (per blob)
//	key   = Argon2id(passphrase, salt)        32 bytes, AES-256
//	nonce = 12 random bytes (per blob)
//	blob  = Base64(salt ‖ nonce ‖ AES-GCM(key, nonce, plaintext))
//
// Each Encrypt call produces a different blob for the same input.
type CredentialCipher interface {
	// Encrypt seals plaintext under a key derived from passphrase and returns
	// the Base64 blob. Fails only if the system random source fails.
	Encrypt(plaintext, passphrase string) (string, error)

	// Decrypt opens a blob produced by Encrypt. Every failure (malformed
	// Base64, truncated blob, wrong passphrase, tampered ciphertext) is
	// reported as an error wrapping ErrDecryptionFailed; a wrong passphrase
	// and a corrupt file cannot be told apart.
	Decrypt(encoded, passphrase string) (string, error)
}
