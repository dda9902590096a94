// Package service implements the credcache use cases on top of the cipher,
// the local stores and the homeserver adapter: caching credentials in an
// encrypted blob, reading launch links and invite codes, verifying and
// recording invite codes, and typed local preferences.
package service

import (
	"context"

	"github.com/MKhiriev/credcache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService saves and restores the homeserver URL and account id in a
// passphrase-encrypted blob file.
type CredentialService interface {
	// Save validates record, encrypts it under passphrase and overwrites the
	// blob at path. An empty path means the default blob file.
	Save(ctx context.Context, path string, record models.CredentialRecord, passphrase string) error

	// Load decrypts the blob at path. Returns [ErrNoCachedData] when there is
	// no usable blob, [ErrWrongPassphrase] when decryption fails and
	// [ErrInvalidRecord] when the plaintext is not a credential record.
	//
	// An account stored as a full Matrix ID ("@alice:example.org") comes
	// back as its localpart ("alice"), the form the login screen expects.
	// Saving the loaded record again therefore stores the localpart.
	Load(ctx context.Context, path, passphrase string) (models.CredentialRecord, error)

	// BlobPath resolves path the same way Save and Load do.
	BlobPath(path string) string

	// PassphraseLimit is the longest passphrase a prompt should accept, or 0
	// for no limit.
	PassphraseLimit() int
}

// LaunchService turns deep links and scanned QR codes into a
// [models.LaunchContext].
type LaunchService interface {
	// ParseLaunchLink reads the homeserver and invite code from a deep link.
	ParseLaunchLink(rawURL string) (models.LaunchContext, error)

	// ExtractInviteCode returns the registration token embedded in scanned
	// QR-code text after the "rgs_token=" marker.
	ExtractInviteCode(scanned string) (string, error)
}

// InviteService checks and consumes registration tokens on a homeserver.
type InviteService interface {
	// VerifyInviteCode returns the token description when code can still be
	// used on server, or [ErrInvalidInviteCode] otherwise.
	VerifyInviteCode(ctx context.Context, server, code string) (models.RegistrationToken, error)

	// RecordInviteUsage reports one use of code for a freshly created account.
	RecordInviteUsage(ctx context.Context, homeserverBase, code, accessToken string) error
}

// PreferencesService is a typed facade over the preferences repository.
//
// Getters return def when the key is missing and [ErrPreferenceKindMismatch]
// when the stored value has a different kind.
type PreferencesService interface {
	GetString(ctx context.Context, key, def string) (string, error)
	PutString(ctx context.Context, key, value string) error
	GetInt(ctx context.Context, key string, def int64) (int64, error)
	PutInt(ctx context.Context, key string, value int64) error
	GetBool(ctx context.Context, key string, def bool) (bool, error)
	PutBool(ctx context.Context, key string, value bool) error
	GetFloat(ctx context.Context, key string, def float64) (float64, error)
	PutFloat(ctx context.Context, key string, value float64) error

	// Get returns the raw tagged value, or [ErrPreferenceNotFound].
	Get(ctx context.Context, key string) (models.PreferenceValue, error)
	// Set parses raw as the given kind and stores it.
	Set(ctx context.Context, key string, kind models.PreferenceKind, raw string) error
	// Remove deletes key. Removing an unknown key is not an error.
	Remove(ctx context.Context, key string) error
}
