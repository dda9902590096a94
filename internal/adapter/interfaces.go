// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to a Matrix
// homeserver's Synapse admin API.
//
// The primary abstraction is [HomeserverAdapter], which decouples the invite
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPHomeserverAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/credcache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/homeserver_adapter_mock.go -package=mock

// HomeserverAdapter defines communication with the registration-token
// endpoints of a homeserver. Every call takes the homeserver address
// explicitly because invite codes are checked against whichever server the
// user picked, not a fixed backend.
type HomeserverAdapter interface {
	// GetRegistrationToken looks up the registration token named code on
	// homeserver. A bare host is treated as https://host. Returns
	// [ErrNotFound] (wrapped) for an unknown token and [ErrInvalidResponse]
	// when a 200 body carries no token.
	GetRegistrationToken(ctx context.Context, homeserver, code string) (models.RegistrationToken, error)

	// RecordRegistrationToken marks one use of code on homeserver, sending
	// accessToken as the bearer credential of the freshly created account.
	RecordRegistrationToken(ctx context.Context, homeserver, code, accessToken string) error
}
