// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/credcache/internal/config"
	"github.com/MKhiriev/credcache/internal/logger"
)

const (
	blobFileMode = 0o600
	blobDirMode  = 0o700
)

// fileBlobStore is the [BlobStore] backed by the local file system.
type fileBlobStore struct {
	dataDir  string
	blobName string
	logger   *logger.Logger
}

// NewFileBlobStore constructs a [BlobStore] rooted at cfg.DataDir. The data
// directory itself is created lazily on the first write.
func NewFileBlobStore(cfg config.Files, logger *logger.Logger) BlobStore {
	return &fileBlobStore{
		dataDir:  cfg.DataDir,
		blobName: cfg.BlobName,
		logger:   logger,
	}
}

func (s *fileBlobStore) Path(name string) string {
	if name == "" {
		name = s.blobName
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.dataDir, name)
}

func (s *fileBlobStore) EnsureFile(name string) error {
	path := s.Path(name)

	info, err := os.Stat(path)
	if err == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("ensure %s: not a regular file", path)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("ensure %s: %w", path, err)
	}

	if err = os.MkdirAll(filepath.Dir(path), blobDirMode); err != nil {
		return fmt.Errorf("create blob dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, blobFileMode)
	if err != nil {
		return fmt.Errorf("create blob file: %w", err)
	}
	s.logger.Debug().Str("path", path).Msg("created empty blob file")

	return f.Close()
}

func (s *fileBlobStore) ReadAll(name string) (string, error) {
	path := s.Path(name)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), nil
}

func (s *fileBlobStore) WriteAll(name, content string) error {
	if err := s.EnsureFile(name); err != nil {
		return err
	}

	path := s.Path(name)
	if err := os.WriteFile(path, []byte(content), blobFileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (s *fileBlobStore) AppendText(name, content string) error {
	return s.AppendBytes(name, []byte(content))
}

func (s *fileBlobStore) AppendBytes(name string, data []byte) error {
	if err := s.EnsureFile(name); err != nil {
		return err
	}

	path := s.Path(name)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, blobFileMode)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("append %s: %w", path, err)
	}

	return f.Close()
}
