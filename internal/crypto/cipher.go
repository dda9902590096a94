// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 16
	nonceSize = 12
	keySize   = 32 // AES-256
	tagSize   = 16

	// MinBlobLength is the length of the shortest well-formed blob
	// (empty plaintext) in Base64 characters.
	MinBlobLength = (saltSize + nonceSize + tagSize + 2) / 3 * 4
)

// KDFParams are the Argon2id cost parameters used to derive the AES key.
type KDFParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultKDFParams follows the OWASP (2024) Argon2id recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:      1,
		MemoryKiB: 64 * 1024,
		Threads:   4,
	}
}

// credentialCipher is the private implementation of [CredentialCipher].
type credentialCipher struct {
	kdf  KDFParams
	rand io.Reader
}

// NewCredentialCipher constructs a [CredentialCipher]. Zero fields of kdf
// are replaced with the matching [DefaultKDFParams] value.
func NewCredentialCipher(kdf KDFParams) CredentialCipher {
	def := DefaultKDFParams()
	if kdf.Time == 0 {
		kdf.Time = def.Time
	}
	if kdf.MemoryKiB == 0 {
		kdf.MemoryKiB = def.MemoryKiB
	}
	if kdf.Threads == 0 {
		kdf.Threads = def.Threads
	}

	return &credentialCipher{kdf: kdf, rand: rand.Reader}
}

// deriveKey stretches passphrase with salt into a 256-bit AES key.
func (c *credentialCipher) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, c.kdf.Time, c.kdf.MemoryKiB, c.kdf.Threads, keySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Encrypt implements [CredentialCipher].
func (c *credentialCipher) Encrypt(plaintext, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}

	// 1. Fresh salt and nonce
	head := make([]byte, saltSize+nonceSize)
	if _, err := io.ReadFull(c.rand, head); err != nil {
		return "", fmt.Errorf("generate salt and nonce: %w", err)
	}
	salt, nonce := head[:saltSize], head[saltSize:]

	// 2. Derive key and build AES-GCM
	gcm, err := newGCM(c.deriveKey(passphrase, salt))
	if err != nil {
		return "", err
	}

	// 3. Encrypt: salt || nonce || ciphertext
	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(head, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [CredentialCipher].
func (c *credentialCipher) Decrypt(encoded, passphrase string) (string, error) {
	if passphrase == "" {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrEmptyPassphrase)
	}

	// Files picked by the user often end with a newline.
	blob, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}
	if len(blob) < saltSize+nonceSize+tagSize {
		return "", fmt.Errorf("%w: blob too short (%d bytes)", ErrDecryptionFailed, len(blob))
	}

	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+nonceSize]
	ciphertext := blob[saltSize+nonceSize:]

	gcm, err := newGCM(c.deriveKey(passphrase, salt))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	// An error here almost always means a wrong passphrase.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
