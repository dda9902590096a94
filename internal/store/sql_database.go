package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}
