// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the values credcache accepts from users and
// links before they reach the cipher, the blob file or the homeserver: a
// credential record must name an account and an http(s) server, and an
// invite code must be safe to place in an admin API path.
package validators

import "context"

// Validator checks a value. Passing field names (see fields.go) limits the
// check to those fields; with none, every rule for the value's type runs.
// Unsupported types return [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
