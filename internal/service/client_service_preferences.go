package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/internal/store"
	"github.com/MKhiriev/credcache/models"
)

// Preference keys shared by the CLI commands.
const (
	PrefServerURL    = "serverUrl"
	PrefAccount      = "account"
	PrefLastBlobPath = "lastBlobPath"
)

type clientPreferencesService struct {
	repo   store.PreferencesRepository
	logger *logger.Logger
}

func NewClientPreferencesService(repo store.PreferencesRepository, logger *logger.Logger) PreferencesService {
	return &clientPreferencesService{repo: repo, logger: logger}
}

func (p *clientPreferencesService) Get(ctx context.Context, key string) (models.PreferenceValue, error) {
	if strings.TrimSpace(key) == "" {
		return models.PreferenceValue{}, ErrEmptyPreferenceKey
	}

	value, err := p.repo.Get(ctx, key)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return models.PreferenceValue{}, fmt.Errorf("%w: %s", ErrPreferenceNotFound, key)
	}
	if err != nil {
		return models.PreferenceValue{}, fmt.Errorf("get preference %q: %w", key, err)
	}

	return value, nil
}

func (p *clientPreferencesService) Set(ctx context.Context, key string, kind models.PreferenceKind, raw string) error {
	value, err := models.DecodePreference(kind, raw)
	if err != nil {
		return fmt.Errorf("parse %s preference: %w", kind, err)
	}
	return p.put(ctx, key, value)
}

func (p *clientPreferencesService) Remove(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyPreferenceKey
	}
	if err := p.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove preference %q: %w", key, err)
	}
	return nil
}

func (p *clientPreferencesService) GetString(ctx context.Context, key, def string) (string, error) {
	value, err := p.lookup(ctx, key, models.PreferenceString)
	if err != nil || value == nil {
		return def, err
	}
	return value.String, nil
}

func (p *clientPreferencesService) PutString(ctx context.Context, key, value string) error {
	return p.put(ctx, key, models.StringPreference(value))
}

func (p *clientPreferencesService) GetInt(ctx context.Context, key string, def int64) (int64, error) {
	value, err := p.lookup(ctx, key, models.PreferenceInt)
	if err != nil || value == nil {
		return def, err
	}
	return value.Int, nil
}

func (p *clientPreferencesService) PutInt(ctx context.Context, key string, value int64) error {
	return p.put(ctx, key, models.IntPreference(value))
}

func (p *clientPreferencesService) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	value, err := p.lookup(ctx, key, models.PreferenceBool)
	if err != nil || value == nil {
		return def, err
	}
	return value.Bool, nil
}

func (p *clientPreferencesService) PutBool(ctx context.Context, key string, value bool) error {
	return p.put(ctx, key, models.BoolPreference(value))
}

func (p *clientPreferencesService) GetFloat(ctx context.Context, key string, def float64) (float64, error) {
	value, err := p.lookup(ctx, key, models.PreferenceFloat)
	if err != nil || value == nil {
		return def, err
	}
	return value.Float, nil
}

func (p *clientPreferencesService) PutFloat(ctx context.Context, key string, value float64) error {
	return p.put(ctx, key, models.FloatPreference(value))
}

// lookup returns nil without error for a missing key.
func (p *clientPreferencesService) lookup(ctx context.Context, key string, kind models.PreferenceKind) (*models.PreferenceValue, error) {
	value, err := p.Get(ctx, key)
	if errors.Is(err, ErrPreferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if value.Kind != kind {
		return nil, fmt.Errorf("%w: %q holds %s, not %s", ErrPreferenceKindMismatch, key, value.Kind, kind)
	}

	return &value, nil
}

func (p *clientPreferencesService) put(ctx context.Context, key string, value models.PreferenceValue) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyPreferenceKey
	}

	if err := p.repo.Put(ctx, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientPreferencesService.put").
			Str("key", key).
			Msg("failed to store preference")
		return fmt.Errorf("put preference %q: %w", key, err)
	}

	return nil
}
