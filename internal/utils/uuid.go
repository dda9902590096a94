package utils

import "github.com/google/uuid"

// NewRunID returns a time-ordered UUIDv7 string, falling back to a random
// v4 when the v7 generator fails.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
