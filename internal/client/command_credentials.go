// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/credcache/internal/app"
	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/internal/service"
	"github.com/MKhiriev/credcache/models"
)

// save encrypts the server URL and account into the blob file. Missing
// flags fall back to the values remembered by the previous run.
func (a *App) save(ctx context.Context, args []string) error {
	fs := a.newFlagSet("save")
	server := fs.String("server", "", "homeserver URL")
	account := fs.String("account", "", "account id")
	file := fs.String("file", "", "blob file (default: data dir)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	record := models.CredentialRecord{ServerURL: *server, Account: *account}
	if record.ServerURL == "" {
		record.ServerURL = a.prefString(ctx, service.PrefServerURL)
	}
	if record.Account == "" {
		record.Account = a.prefString(ctx, service.PrefAccount)
	}

	pass, err := a.readPassphrase(ctx, "SAVE CREDENTIALS", "")
	if err != nil {
		return err
	}

	creds := a.services.CredentialService
	if err = creds.Save(ctx, *file, record, pass); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	path := creds.BlobPath(*file)
	a.remember(ctx, record, path)

	fmt.Fprintf(a.stdout, "saved to %s\n", path)
	return nil
}

// load decrypts the blob file, asking again after a wrong passphrase up to
// App.MaxPassphraseAttempts times. A passphrase taken from the environment
// is tried once.
func (a *App) load(ctx context.Context, args []string) error {
	fs := a.newFlagSet("load")
	file := fs.String("file", "", "blob file (default: last used)")
	copyAccount := fs.Bool("copy", false, "copy the account id to the clipboard")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	path := *file
	if path == "" {
		path = a.prefString(ctx, service.PrefLastBlobPath)
	}

	maxAttempts := a.appCfg.MaxPassphraseAttempts
	if maxAttempts < 1 || a.passphrase != "" {
		maxAttempts = 1
	}

	var (
		record models.CredentialRecord
		hint   string
	)
	for attempt := 1; ; attempt++ {
		pass, err := a.readPassphrase(ctx, "LOAD CREDENTIALS", hint)
		if err != nil {
			return err
		}

		record, err = a.services.CredentialService.Load(ctx, path, pass)
		if err == nil {
			break
		}
		if !errors.Is(err, service.ErrWrongPassphrase) || attempt >= maxAttempts {
			return fmt.Errorf("load credentials: %w", err)
		}

		logger.FromContext(ctx).Warn().Int("attempt", attempt).Msg("wrong passphrase")
		hint = fmt.Sprintf("%s (attempt %d of %d)", app.MsgWrongPassphrase, attempt+1, maxAttempts)
	}

	a.remember(ctx, record, a.services.CredentialService.BlobPath(path))

	fmt.Fprintf(a.stdout, "server:  %s\naccount: %s\n", record.ServerURL, record.Account)

	if *copyAccount {
		if err := a.clipboard.WriteAll(record.Account); err != nil {
			return fmt.Errorf("copy account to clipboard: %w", err)
		}
		fmt.Fprintln(a.stdout, "account copied to clipboard")
	}

	return nil
}

func (a *App) readPassphrase(ctx context.Context, title, hint string) (string, error) {
	if a.passphrase != "" {
		return a.passphrase, nil
	}
	return a.prompter.Passphrase(ctx, title, hint, a.services.CredentialService.PassphraseLimit())
}

// remember stores the values of a successful save or load. After load the
// account is the localpart Load returns, not a full Matrix ID. Failures are
// logged only.
func (a *App) remember(ctx context.Context, record models.CredentialRecord, blobPath string) {
	prefs := a.services.PreferencesService
	values := []struct{ key, value string }{
		{service.PrefServerURL, record.ServerURL},
		{service.PrefAccount, record.Account},
		{service.PrefLastBlobPath, blobPath},
	}

	for _, v := range values {
		if err := prefs.PutString(ctx, v.key, v.value); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("key", v.key).Msg("failed to remember preference")
		}
	}
}

func (a *App) prefString(ctx context.Context, key string) string {
	v, err := a.services.PreferencesService.GetString(ctx, key, "")
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to read preference")
		return ""
	}
	return v
}
