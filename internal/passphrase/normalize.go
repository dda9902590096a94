// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package passphrase holds the convenience padding applied to short
// passphrases typed into the 16-character unlock prompt.
//
// Padding does NOT add entropy: "abc" and "abc0000000000000" are the same
// secret. A short passphrase stays exactly as guessable after Normalize as
// before it. The key derivation in package crypto is what protects the blob;
// this package only keeps passphrases entered on older installs working.
package passphrase

import (
	"strings"
	"unicode/utf8"
)

const (
	// TargetLength is the length, in characters, Normalize pads up to.
	TargetLength = 16
	// PadChar is appended on the right until TargetLength is reached.
	PadChar = '0'
)

// Normalize trims surrounding whitespace from input and right-pads the
// result with PadChar to exactly TargetLength characters. Inputs that are
// already TargetLength or longer are returned trimmed but otherwise intact.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	n := utf8.RuneCountInString(trimmed)
	if n >= TargetLength {
		return trimmed
	}
	return trimmed + strings.Repeat(string(PadChar), TargetLength-n)
}

// NeedsPadding reports whether Normalize would append PadChar to input.
func NeedsPadding(input string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(input)) < TargetLength
}
