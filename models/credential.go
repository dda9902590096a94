// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialRecord is the homeserver/account pair cached on the device.
//
// It is serialized to compact JSON before encryption:
//
//	{"serverUrl":"https://matrix.example.org/","account":"@alice:example.org"}
type CredentialRecord struct {
	// ServerURL is the homeserver base URL, including scheme.
	ServerURL string `json:"serverUrl"`
	// Account is the user identifier entered on the login screen.
	Account string `json:"account"`
}

// IsEmpty reports whether neither field is set.
func (r CredentialRecord) IsEmpty() bool {
	return r.ServerURL == "" && r.Account == ""
}
