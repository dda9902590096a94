// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/credcache/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Client-side statuses mean the homeserver refused the code;
// everything else (network, 5xx) is passed through unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrInvalidResponse):
		return fmt.Errorf("%w: %w", ErrInvalidInviteCode, err)
	}

	return err
}
