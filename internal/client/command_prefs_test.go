package client

import (
	"context"
	"testing"

	"github.com/MKhiriev/credcache/internal/service"
	"github.com/MKhiriev/credcache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPref(t *testing.T) {
	a, m, out := newTestApp(t, nil, nil)
	ctx := context.Background()

	m.prefs.EXPECT().Set(ctx, "attempts", models.PreferenceInt, "5").Return(nil)
	m.prefs.EXPECT().Get(ctx, "attempts").Return(models.IntPreference(5), nil)
	m.prefs.EXPECT().Remove(ctx, "attempts").Return(nil)

	require.NoError(t, a.Run(ctx, []string{"pref", "set", "-kind", "int", "attempts", "5"}))
	require.NoError(t, a.Run(ctx, []string{"pref", "get", "attempts"}))
	assert.Equal(t, "5 (int)\n", out.String())
	require.NoError(t, a.Run(ctx, []string{"pref", "unset", "attempts"}))
}

func TestPref_Errors(t *testing.T) {
	a, m, _ := newTestApp(t, nil, nil)
	ctx := context.Background()

	assert.ErrorIs(t, a.Run(ctx, []string{"pref"}), ErrMissingArgument)
	assert.ErrorIs(t, a.Run(ctx, []string{"pref", "get"}), ErrMissingArgument)
	assert.ErrorIs(t, a.Run(ctx, []string{"pref", "set", "only-key"}), ErrMissingArgument)
	assert.ErrorIs(t, a.Run(ctx, []string{"pref", "unset"}), ErrMissingArgument)
	assert.ErrorIs(t, a.Run(ctx, []string{"pref", "list"}), ErrUnknownCommand)
	assert.Error(t, a.Run(ctx, []string{"pref", "set", "-kind", "date", "k", "v"}))

	m.prefs.EXPECT().Get(ctx, "missing").Return(models.PreferenceValue{}, service.ErrPreferenceNotFound)
	assert.ErrorIs(t, a.Run(ctx, []string{"pref", "get", "missing"}), service.ErrPreferenceNotFound)
}
