package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/models"
)

type preferencesRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (p *preferencesRepository) Put(ctx context.Context, key string, value models.PreferenceValue) error {
	log := logger.FromContext(ctx)

	raw, err := value.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := buildUpsertPreferenceQuery(key, value.Kind.String(), raw, p.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferencesRepository.Put").
			Str("key", key).
			Msg("failed to upsert preference")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (p *preferencesRepository) Get(ctx context.Context, key string) (models.PreferenceValue, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPreferenceQuery(key)
	if err != nil {
		return models.PreferenceValue{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var kindName, raw string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&kindName, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PreferenceValue{}, fmt.Errorf("%w: %s", ErrPreferenceNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "preferencesRepository.Get").
			Str("key", key).
			Msg("failed to query preference")
		return models.PreferenceValue{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	kind, err := models.ParsePreferenceKind(kindName)
	if err != nil {
		return models.PreferenceValue{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	value, err := models.DecodePreference(kind, raw)
	if err != nil {
		return models.PreferenceValue{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (p *preferencesRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePreferenceQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferencesRepository.Delete").
			Str("key", key).
			Msg("failed to delete preference")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
