// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the credcache CLI prints
// when a command fails.
//
// All Msg* constants describe the outcome of an operation in the wording a
// user sees on the terminal. [UserMessage] picks the right one for an error
// returned by the service or adapter layer; the full error chain still goes
// to the log file.
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/credcache/internal/adapter"
	"github.com/MKhiriev/credcache/internal/service"
)

const (
	// MsgNoCachedData is printed when there is no blob to load, or the
	// file is too short to hold one.
	MsgNoCachedData = "no cached data"

	// MsgWrongPassphrase is shown when the blob cannot be decrypted. The
	// user is asked to try again.
	MsgWrongPassphrase = "wrong passphrase, please try again"

	// MsgInvalidRecord is printed when the decrypted blob or the values
	// given to save are not a usable server URL and account.
	MsgInvalidRecord = "server URL or account is invalid"

	// MsgEmptyPassphrase is printed when the passphrase is blank.
	MsgEmptyPassphrase = "passphrase is required"

	// MsgPassphraseTooShort is printed in strict mode when the passphrase
	// has fewer than 16 characters.
	MsgPassphraseTooShort = "passphrase must be at least 16 characters"

	// MsgPassphraseTooLong is printed when a passphrase longer than the
	// 16-character prompt would be used to save without strict mode.
	MsgPassphraseTooLong = "passphrase must be at most 16 characters (or enable -strict-passphrase)"

	// MsgInvalidLaunchLink is printed when a link names neither a server
	// nor an invite code.
	MsgInvalidLaunchLink = "link does not contain a server or an invite code"

	// MsgInvalidInviteCode is printed when the homeserver refuses an invite
	// code, or the code is spent or expired.
	MsgInvalidInviteCode = "invalid invite code"

	// MsgEmptyAccessToken is printed when invite usage is recorded without
	// an access token.
	MsgEmptyAccessToken = "access token is required"

	// MsgAccessTokenRejected is printed when the homeserver refuses the
	// access token used to record invite usage.
	MsgAccessTokenRejected = "homeserver rejected the access token"

	// MsgServerUnavailable is printed on network failures and homeserver
	// 5xx responses.
	MsgServerUnavailable = "network is unavailable or the homeserver is down"

	// MsgTooManyRequests is printed when the homeserver rate-limits us.
	MsgTooManyRequests = "homeserver is rate limiting requests, try again later"

	// MsgPreferenceNotFound is printed by `pref get` for an unknown key.
	MsgPreferenceNotFound = "preference not found"

	// MsgPreferenceKindMismatch is printed when a stored preference has a
	// different type than requested.
	MsgPreferenceKindMismatch = "preference has a different type"
)

var messages = []struct {
	err error
	msg string
}{
	{service.ErrNoCachedData, MsgNoCachedData},
	{service.ErrWrongPassphrase, MsgWrongPassphrase},
	{service.ErrInvalidRecord, MsgInvalidRecord},
	{service.ErrEmptyPassphrase, MsgEmptyPassphrase},
	{service.ErrPassphraseTooShort, MsgPassphraseTooShort},
	{service.ErrPassphraseTooLong, MsgPassphraseTooLong},
	{service.ErrInvalidLaunchLink, MsgInvalidLaunchLink},
	{service.ErrInvalidInviteCode, MsgInvalidInviteCode},
	{service.ErrEmptyAccessToken, MsgEmptyAccessToken},
	{service.ErrPreferenceNotFound, MsgPreferenceNotFound},
	{service.ErrPreferenceKindMismatch, MsgPreferenceKindMismatch},
	{adapter.ErrUnauthorized, MsgAccessTokenRejected},
	{adapter.ErrTooManyRequests, MsgTooManyRequests},
	{adapter.ErrInternalServerError, MsgServerUnavailable},
	{adapter.ErrBadGateway, MsgServerUnavailable},
	{context.DeadlineExceeded, MsgServerUnavailable},
}

// UserMessage returns the message to print for err. Errors without a known
// message are returned as err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return MsgServerUnavailable
	}

	return err.Error()
}
