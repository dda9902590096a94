package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/credcache/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name        string
		in          error
		wantInvalid bool
	}{
		{name: "not found", in: fmt.Errorf("%w: M_NOT_FOUND", adapter.ErrNotFound), wantInvalid: true},
		{name: "bad request", in: adapter.ErrBadRequest, wantInvalid: true},
		{name: "forbidden", in: adapter.ErrForbidden, wantInvalid: true},
		{name: "unauthorized", in: adapter.ErrUnauthorized, wantInvalid: true},
		{name: "invalid response", in: adapter.ErrInvalidResponse, wantInvalid: true},
		{name: "internal server error", in: adapter.ErrInternalServerError},
		{name: "rate limited", in: adapter.ErrTooManyRequests},
		{name: "deadline", in: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			assert.ErrorIs(t, got, tt.in)
			assert.Equal(t, tt.wantInvalid, errors.Is(got, ErrInvalidInviteCode))
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}
