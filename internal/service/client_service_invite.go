package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/credcache/internal/adapter"
	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/internal/validators"
	"github.com/MKhiriev/credcache/models"
)

type clientInviteService struct {
	adapter   adapter.HomeserverAdapter
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewClientInviteService(homeserverAdapter adapter.HomeserverAdapter, logger *logger.Logger) InviteService {
	return &clientInviteService{
		adapter:   homeserverAdapter,
		validator: validators.NewCredentialValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientInviteService) VerifyInviteCode(ctx context.Context, server, code string) (models.RegistrationToken, error) {
	log := logger.FromContext(ctx)

	code, err := s.checkCode(ctx, code)
	if err != nil {
		return models.RegistrationToken{}, err
	}

	token, err := s.adapter.GetRegistrationToken(ctx, server, code)
	if err != nil {
		log.Err(err).Str("func", "clientInviteService.VerifyInviteCode").Str("server", server).Msg("registration token lookup failed")
		return models.RegistrationToken{}, mapAdapterError(err)
	}

	if token.Exhausted() {
		return models.RegistrationToken{}, fmt.Errorf("%w: no uses left", ErrInvalidInviteCode)
	}
	if token.ExpiryTime != nil && *token.ExpiryTime <= s.now().UnixMilli() {
		return models.RegistrationToken{}, fmt.Errorf("%w: expired", ErrInvalidInviteCode)
	}

	log.Info().Str("server", server).Msg("invite code accepted")
	return token, nil
}

func (s *clientInviteService) RecordInviteUsage(ctx context.Context, homeserverBase, code, accessToken string) error {
	log := logger.FromContext(ctx)

	code, err := s.checkCode(ctx, code)
	if err != nil {
		return err
	}
	if strings.TrimSpace(accessToken) == "" {
		return ErrEmptyAccessToken
	}

	err = s.adapter.RecordRegistrationToken(ctx, homeserverBase, code, accessToken)
	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrInvalidInviteCode, err)
	}
	if err != nil {
		log.Err(err).Str("func", "clientInviteService.RecordInviteUsage").Str("server", homeserverBase).Msg("recording invite usage failed")
		return err
	}

	log.Info().Str("server", homeserverBase).Msg("invite usage recorded")
	return nil
}

func (s *clientInviteService) checkCode(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	err := s.validator.Validate(ctx, models.LaunchContext{InviteCode: code}, validators.FieldInviteCode)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInviteCode, err)
	}
	return code, nil
}
