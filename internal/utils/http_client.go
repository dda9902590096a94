// Package utils provides small helpers shared by the adapter and logger
// layers: the resty HTTP client wrapper and run id generation.
package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: 15 * time.Second})
//	resp, err := client.R().Get("https://matrix.example.org/_matrix/client/versions")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures a new [HTTPClient].
type HTTPClientOptions struct {
	// Timeout is the per-request timeout. Zero leaves resty's default.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification. Only meant
	// for homeservers running on self-signed certificates.
	InsecureSkipVerify bool
	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in via config
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}
