// Package store holds the local persistence layer: the plain-file blob store
// for the encrypted credential cache and the SQLite-backed preferences
// repository.
package store

import (
	"context"

	"github.com/MKhiriev/credcache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobStore persists small text files such as the encrypted credential blob.
//
// Relative paths are resolved against the configured data directory and
// absolute paths are used unchanged. Writes are plain overwrites or appends:
// no fsync, no temp-file rename.
type BlobStore interface {
	// Path resolves name to the file the other methods would touch. An empty
	// name resolves to the default blob file.
	Path(name string) string
	// EnsureFile creates an empty file if none exists. Idempotent.
	EnsureFile(name string) error
	// ReadAll returns the whole file as text, or [ErrFileNotFound] when the
	// path is missing or is not a regular file.
	ReadAll(name string) (string, error)
	// WriteAll replaces the file contents with content.
	WriteAll(name, content string) error
	// AppendText appends content to the end of the file.
	AppendText(name, content string) error
	// AppendBytes appends raw data to the end of the file.
	AppendBytes(name string, data []byte) error
}

// PreferencesRepository stores typed key/value settings.
type PreferencesRepository interface {
	Put(ctx context.Context, key string, value models.PreferenceValue) error
	// Get returns [ErrPreferenceNotFound] for an unknown key.
	Get(ctx context.Context, key string) (models.PreferenceValue, error)
	// Delete is a no-op for an unknown key.
	Delete(ctx context.Context, key string) error
}
