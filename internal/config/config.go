// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for credcache.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds key-derivation and passphrase policy settings.
	App App `envPrefix:"APP_"`

	// Storage holds the blob file location and the preferences database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for calls to the homeserver admin API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Passphrase, when set, is used instead of prompting. It is read from
	// the environment only; there is deliberately no flag or JSON key so the
	// secret does not end up in shell history or config files.
	// Env: CREDCACHE_PASSPHRASE
	Passphrase string `env:"CREDCACHE_PASSPHRASE"`
}

// App holds application-level settings for the credential cipher and the
// passphrase prompt.
type App struct {
	// KDFTime is the Argon2id iteration count.
	// Env: APP_KDF_TIME
	KDFTime uint32 `env:"KDF_TIME"`

	// KDFMemoryKiB is the Argon2id memory cost in KiB.
	// Env: APP_KDF_MEMORY_KIB
	KDFMemoryKiB uint32 `env:"KDF_MEMORY_KIB"`

	// KDFThreads is the Argon2id parallelism.
	// Env: APP_KDF_THREADS
	KDFThreads uint8 `env:"KDF_THREADS"`

	// StrictPassphrases disables the '0' padding of passphrases shorter than
	// 16 characters. Blobs written with padding on can still be opened in
	// strict mode only by typing the padded form.
	// Env: APP_STRICT_PASSPHRASES
	StrictPassphrases bool `env:"STRICT_PASSPHRASES"`

	// MaxPassphraseAttempts bounds how many times `load` re-prompts after a
	// wrong passphrase.
	// Env: APP_MAX_PASSPHRASE_ATTEMPTS
	MaxPassphraseAttempts int `env:"MAX_PASSPHRASE_ATTEMPTS"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Files holds the app-private directory and the blob file name.
	Files Files `envPrefix:"FILES_"`

	// DB holds the preferences database settings.
	DB DB `envPrefix:"DB_"`
}

// Files holds file-system settings for the credential blob.
type Files struct {
	// DataDir is the app-private directory. Relative blob paths are resolved
	// against it.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// BlobName is the default blob file name inside DataDir.
	// Env: STORAGE_FILES_BLOB_NAME
	BlobName string `env:"BLOB_NAME"`
}

// DB holds connection settings for the SQLite preferences database.
type DB struct {
	// DSN is the SQLite file path (or go-sqlite3 DSN).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings for the homeserver admin HTTP client.
type Adapter struct {
	// RequestTimeout is the per-request timeout (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InsecureSkipVerify turns off TLS certificate verification for
	// homeservers with self-signed certificates. Off by default.
	// Env: ADAPTER_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`
}

// Log holds logger settings.
type Log struct {
	// File is the path of the JSON log file. Defaults to
	// <DataDir>/logs/credcache.log.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// the environment, the given command-line arguments (without the program
// name), and the optional JSON file, then applies defaults.
//
// It returns the config and the positional arguments left after flag
// parsing (the subcommand and its own arguments).
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.rest, nil
}
