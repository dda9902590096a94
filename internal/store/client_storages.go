package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credcache/internal/config"
	"github.com/MKhiriev/credcache/internal/logger"
)

// ClientStorages groups all local storage backends into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// BlobStore reads and writes the encrypted credential blob.
	BlobStore BlobStore
	// PreferencesRepository is the SQLite-backed typed settings store.
	PreferencesRepository PreferencesRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the file blob store rooted at cfg.Files.DataDir.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		BlobStore:             NewFileBlobStore(cfg.Files, logger),
		PreferencesRepository: NewPreferencesRepository(db, logger),
		db:                    db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
