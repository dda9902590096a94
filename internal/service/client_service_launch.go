package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/credcache/internal/validators"
	"github.com/MKhiriev/credcache/models"
)

const inviteMarker = "rgs_token="

// serverQueryKeys are the query parameters a launch link may name the
// homeserver with, in order of preference.
var serverQueryKeys = []string{"server", "hs", "homeserver"}

type clientLaunchService struct {
	validator validators.Validator
}

func NewClientLaunchService() LaunchService {
	return &clientLaunchService{validator: validators.NewCredentialValidator()}
}

// ParseLaunchLink accepts both web links (https://matrix.example.org/register?rgs_token=abc)
// and app links (credcache://register?server=matrix.example.org&rgs_token=abc).
// The query names the server first; an http(s) link falls back to its own host.
func (l *clientLaunchService) ParseLaunchLink(rawURL string) (models.LaunchContext, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return models.LaunchContext{}, fmt.Errorf("%w: %w", ErrInvalidLaunchLink, err)
	}
	if u.Scheme == "" {
		return models.LaunchContext{}, fmt.Errorf("%w: missing scheme", ErrInvalidLaunchLink)
	}

	query := u.Query()

	var server string
	for _, key := range serverQueryKeys {
		if v := strings.TrimSpace(query.Get(key)); v != "" {
			server = v
			break
		}
	}
	if server == "" && (u.Scheme == "http" || u.Scheme == "https") {
		server = u.Scheme + "://" + u.Host
	}

	launch := models.LaunchContext{
		FromLink:   true,
		InviteCode: strings.TrimSpace(query.Get(strings.TrimSuffix(inviteMarker, "="))),
	}
	if server != "" {
		launch.ServerURL, err = serverBaseURL(server)
		if err != nil {
			return models.LaunchContext{}, err
		}
	}

	if launch.ServerURL == "" && launch.InviteCode == "" {
		return models.LaunchContext{}, fmt.Errorf("%w: link names neither a server nor an invite code", ErrInvalidLaunchLink)
	}
	if err = l.validator.Validate(context.Background(), launch); err != nil {
		return models.LaunchContext{}, fmt.Errorf("%w: %w", ErrInvalidLaunchLink, err)
	}

	return launch, nil
}

// ExtractInviteCode returns what follows "rgs_token=" up to the next query
// separator, fragment or whitespace.
func (l *clientLaunchService) ExtractInviteCode(scanned string) (string, error) {
	_, after, found := strings.Cut(scanned, inviteMarker)
	if !found {
		return "", fmt.Errorf("%w: no %q marker", ErrInvalidInviteCode, inviteMarker)
	}

	if end := strings.IndexAny(after, "&# \t\r\n"); end >= 0 {
		after = after[:end]
	}

	code, err := url.QueryUnescape(after)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInviteCode, err)
	}

	err = l.validator.Validate(context.Background(), models.LaunchContext{InviteCode: code}, validators.FieldInviteCode)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInviteCode, err)
	}

	return code, nil
}

// serverBaseURL renders a homeserver as "scheme://host/". Bare hosts get https.
func serverBaseURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "https://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: bad server %q", ErrInvalidLaunchLink, server)
	}

	return u.Scheme + "://" + u.Host + "/", nil
}
