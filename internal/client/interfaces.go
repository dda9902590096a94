// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand in args and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// Prompter asks the user for a passphrase.
type Prompter interface {
	// Passphrase returns the entered passphrase. hint is shown next to the
	// input, limit caps its length (0 means no cap).
	Passphrase(ctx context.Context, title, hint string, limit int) (string, error)
}

// Clipboard receives text copied by the load command.
type Clipboard interface {
	WriteAll(text string) error
}
