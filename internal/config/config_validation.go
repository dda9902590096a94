// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultBlobName       = "serverAccountFile.txt"
	defaultDBName         = "preferences.db"
	defaultRequestTimeout = 15 * time.Second
	defaultMaxAttempts    = 3
	defaultKDFTime        = 1
	defaultKDFMemoryKiB   = 64 * 1024
	defaultKDFThreads     = 4
)

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// applyDefaults fills every field that no source has set.
func (cfg *StructuredConfig) applyDefaults() error {
	if cfg.Storage.Files.DataDir == "" {
		dir, err := userConfigDir()
		if err != nil {
			return fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.Storage.Files.DataDir = filepath.Join(dir, "credcache")
	}
	if cfg.Storage.Files.BlobName == "" {
		cfg.Storage.Files.BlobName = defaultBlobName
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.Storage.Files.DataDir, defaultDBName)
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.Storage.Files.DataDir, "logs", "credcache.log")
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.MaxPassphraseAttempts == 0 {
		cfg.App.MaxPassphraseAttempts = defaultMaxAttempts
	}
	if cfg.App.KDFTime == 0 {
		cfg.App.KDFTime = defaultKDFTime
	}
	if cfg.App.KDFMemoryKiB == 0 {
		cfg.App.KDFMemoryKiB = defaultKDFMemoryKiB
	}
	if cfg.App.KDFThreads == 0 {
		cfg.App.KDFThreads = defaultKDFThreads
	}

	return nil
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Files.DataDir == "" {
		return fmt.Errorf("%w: empty data dir", ErrInvalidStorageConfigs)
	}
	if name := cfg.Storage.Files.BlobName; name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: blob name %q must be a plain file name", ErrInvalidStorageConfigs, name)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty preferences DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.App.MaxPassphraseAttempts < 1 {
		return fmt.Errorf("%w: max passphrase attempts must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.KDFMemoryKiB < 8*uint32(cfg.App.KDFThreads) {
		return fmt.Errorf("%w: kdf memory must be at least 8 KiB per thread", ErrInvalidAppConfigs)
	}

	return nil
}
