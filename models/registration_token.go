// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegistrationToken mirrors the homeserver admin API representation of a
// registration token (invite code).
type RegistrationToken struct {
	Token       string `json:"token"`
	UsesAllowed *int   `json:"uses_allowed"`
	Pending     int    `json:"pending"`
	Completed   int    `json:"completed"`
	ExpiryTime  *int64 `json:"expiry_time"`
}

// Exhausted reports whether the token cannot admit another registration.
func (t RegistrationToken) Exhausted() bool {
	if t.UsesAllowed == nil {
		return false
	}
	return t.Pending+t.Completed >= *t.UsesAllowed
}
