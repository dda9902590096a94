// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the credcache command-line runtime.
//
// It maps subcommands (save, load, invite, link, scan, pref, version) onto
// the client services, asks for passphrases through a [Prompter] and
// remembers the last used server, account and blob path in the local
// preferences.
package client
