package client

import (
	"context"
	"testing"

	"github.com/MKhiriev/credcache/internal/service"
	"github.com/MKhiriev/credcache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteVerify(t *testing.T) {
	a, m, out := newTestApp(t, nil, nil)
	ctx := context.Background()
	allowed := 3

	m.invite.EXPECT().VerifyInviteCode(ctx, "matrix.example.org", "abcd").
		Return(models.RegistrationToken{Token: "abcd", UsesAllowed: &allowed, Completed: 1}, nil)

	require.NoError(t, a.Run(ctx, []string{"invite", "verify", "-server", "matrix.example.org", "-code", "abcd"}))
	assert.Contains(t, out.String(), "invite code is valid")
	assert.Contains(t, out.String(), "uses left: 2")
}

func TestInviteVerify_RememberedServer(t *testing.T) {
	a, m, _ := newTestApp(t, nil, nil)
	ctx := context.Background()

	m.prefs.EXPECT().GetString(ctx, service.PrefServerURL, "").Return("https://m.org/", nil)
	m.invite.EXPECT().VerifyInviteCode(ctx, "https://m.org/", "gone").
		Return(models.RegistrationToken{}, service.ErrInvalidInviteCode)

	err := a.Run(ctx, []string{"invite", "verify", "-code", "gone"})
	assert.ErrorIs(t, err, service.ErrInvalidInviteCode)
}

func TestInviteVerify_NoServer(t *testing.T) {
	a, m, _ := newTestApp(t, nil, nil)
	ctx := context.Background()

	m.prefs.EXPECT().GetString(ctx, service.PrefServerURL, "").Return("", nil)

	assert.ErrorIs(t, a.Run(ctx, []string{"invite", "verify", "-code", "abcd"}), ErrMissingArgument)
}

func TestInviteRecord(t *testing.T) {
	a, m, out := newTestApp(t, nil, nil)
	ctx := context.Background()

	m.invite.EXPECT().RecordInviteUsage(ctx, "https://m.org/", "abcd", "syt_x").Return(nil)

	require.NoError(t, a.Run(ctx, []string{"invite", "record", "-homeserver", "https://m.org/", "-code", "abcd", "-token", "syt_x"}))
	assert.Contains(t, out.String(), "invite usage recorded")
}

func TestLink(t *testing.T) {
	a, m, out := newTestApp(t, nil, nil)
	ctx := context.Background()
	raw := "credcache://register?server=m.org&rgs_token=abcd"

	m.launch.EXPECT().ParseLaunchLink(raw).
		Return(models.LaunchContext{FromLink: true, ServerURL: "https://m.org/", InviteCode: "abcd"}, nil)
	m.prefs.EXPECT().PutString(ctx, service.PrefServerURL, "https://m.org/").Return(nil)
	m.invite.EXPECT().VerifyInviteCode(ctx, "https://m.org/", "abcd").Return(models.RegistrationToken{Token: "abcd"}, nil)

	require.NoError(t, a.Run(ctx, []string{"link", "-verify", raw}))
	assert.Contains(t, out.String(), "invite code: abcd")
	assert.Contains(t, out.String(), "invite code is valid")
	assert.NotContains(t, out.String(), "uses left")
}

func TestLink_Errors(t *testing.T) {
	a, m, _ := newTestApp(t, nil, nil)
	ctx := context.Background()

	assert.ErrorIs(t, a.Run(ctx, []string{"link"}), ErrMissingArgument)

	m.launch.EXPECT().ParseLaunchLink("nonsense").Return(models.LaunchContext{}, service.ErrInvalidLaunchLink)
	assert.ErrorIs(t, a.Run(ctx, []string{"link", "nonsense"}), service.ErrInvalidLaunchLink)
}

func TestScan(t *testing.T) {
	a, m, out := newTestApp(t, nil, nil)
	ctx := context.Background()

	m.launch.EXPECT().ExtractInviteCode("https://m.org/#/register?rgs_token=qr1").Return("qr1", nil)
	m.launch.EXPECT().ExtractInviteCode("garbage").Return("", service.ErrInvalidInviteCode)

	require.NoError(t, a.Run(ctx, []string{"scan", "https://m.org/#/register?rgs_token=qr1"}))
	assert.Equal(t, "qr1\n", out.String())

	assert.ErrorIs(t, a.Run(ctx, []string{"scan", "garbage"}), service.ErrInvalidInviteCode)
	assert.ErrorIs(t, a.Run(ctx, []string{"scan"}), ErrMissingArgument)
}
