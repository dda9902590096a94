package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/credcache/internal/config"
	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/internal/utils"
	"github.com/MKhiriev/credcache/models"
)

const (
	registrationTokenPath       = "/_synapse/admin/v1/registration_tokens/{token}"
	recordRegistrationTokenPath = "/_synapse/admin/v1/record_registration_token/{token}"
)

type httpHomeserverAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPHomeserverAdapter constructs an HTTP/REST implementation of
// [HomeserverAdapter]. TLS verification stays on unless
// adapterCfg.InsecureSkipVerify is set.
func NewHTTPHomeserverAdapter(adapterCfg config.Adapter, appVersion string, logger *logger.Logger) HomeserverAdapter {
	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:            adapterCfg.RequestTimeout,
		InsecureSkipVerify: adapterCfg.InsecureSkipVerify,
		UserAgent:          "credcache/" + appVersion,
	})

	if adapterCfg.InsecureSkipVerify {
		logger.Warn().Msg("TLS certificate verification is disabled for homeserver calls")
	}

	return &httpHomeserverAdapter{client: client, logger: logger}
}

// normalizeBaseURL turns "matrix.example.org", "https://matrix.example.org/"
// and similar inputs into "https://matrix.example.org".
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and http(s) scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.Scheme+"://"+u.Host+u.Path, "/"), nil
}

// GetRegistrationToken implements [HomeserverAdapter]. It sends
// GET /_synapse/admin/v1/registration_tokens/{code} and decodes the token
// description from the response body.
func (h *httpHomeserverAdapter) GetRegistrationToken(ctx context.Context, homeserver, code string) (models.RegistrationToken, error) {
	baseURL, err := normalizeBaseURL(homeserver)
	if err != nil {
		return models.RegistrationToken{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("token", code).
		Get(baseURL + registrationTokenPath)
	if err != nil {
		return models.RegistrationToken{}, fmt.Errorf("registration token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegistrationToken{}, err
	}

	var token models.RegistrationToken
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.RegistrationToken{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if token.Token == "" {
		return models.RegistrationToken{}, fmt.Errorf("%w: missing token field", ErrInvalidResponse)
	}

	h.logger.Debug().
		Str("homeserver", baseURL).
		Int("pending", token.Pending).
		Int("completed", token.Completed).
		Msg("registration token found")

	return token, nil
}

// RecordRegistrationToken implements [HomeserverAdapter]. It sends
// GET /_synapse/admin/v1/record_registration_token/{code} with the
// account's bearer token.
func (h *httpHomeserverAdapter) RecordRegistrationToken(ctx context.Context, homeserver, code, accessToken string) error {
	baseURL, err := normalizeBaseURL(homeserver)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(accessToken)).
		SetPathParam("token", code).
		Get(baseURL + recordRegistrationTokenPath)
	if err != nil {
		return fmt.Errorf("record registration token request: %w", err)
	}

	return mapHTTPError(resp)
}
