package service

import (
	"testing"

	"github.com/MKhiriev/credcache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchService_ParseLaunchLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		want    models.LaunchContext
		wantErr bool
	}{
		{
			name: "web link with token",
			link: "https://matrix.example.org/register?rgs_token=abcd",
			want: models.LaunchContext{FromLink: true, ServerURL: "https://matrix.example.org/", InviteCode: "abcd"},
		},
		{
			name: "web link without token",
			link: "https://matrix.example.org/",
			want: models.LaunchContext{FromLink: true, ServerURL: "https://matrix.example.org/"},
		},
		{
			name: "app link names the server",
			link: "credcache://register?server=matrix.example.org&rgs_token=abcd",
			want: models.LaunchContext{FromLink: true, ServerURL: "https://matrix.example.org/", InviteCode: "abcd"},
		},
		{
			name: "query server wins over link host",
			link: "https://invite.example.org/?hs=http://10.0.0.2:8008&rgs_token=t1",
			want: models.LaunchContext{FromLink: true, ServerURL: "http://10.0.0.2:8008/", InviteCode: "t1"},
		},
		{
			name: "app link with token only",
			link: "credcache://register?rgs_token=abcd",
			want: models.LaunchContext{FromLink: true, InviteCode: "abcd"},
		},
		{name: "no scheme", link: "matrix.example.org", wantErr: true},
		{name: "empty", link: "", wantErr: true},
		{name: "app link without data", link: "credcache://open", wantErr: true},
		{name: "bad token", link: "https://m.org/?rgs_token=a%20b", wantErr: true},
		{name: "unparseable", link: "https://m.org/%zz", wantErr: true},
	}

	svc := NewClientLaunchService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseLaunchLink(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLaunchLink)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.InviteCode != "", got.HasInvite())
		})
	}
}

func TestLaunchService_ExtractInviteCode(t *testing.T) {
	tests := []struct {
		name    string
		scanned string
		want    string
		wantErr bool
	}{
		{name: "bare marker", scanned: "rgs_token=abcd", want: "abcd"},
		{name: "inside url", scanned: "https://m.org/register?rgs_token=abcd", want: "abcd"},
		{name: "followed by params", scanned: "https://m.org/?rgs_token=abcd&lang=en", want: "abcd"},
		{name: "trailing newline", scanned: "rgs_token=abcd\n", want: "abcd"},
		{name: "escaped", scanned: "rgs_token=a%2Bb", want: "a+b"},
		{name: "no marker", scanned: "https://m.org/", wantErr: true},
		{name: "blank value", scanned: "rgs_token=", wantErr: true},
		{name: "bad escape", scanned: "rgs_token=%zz", wantErr: true},
		{name: "path separator", scanned: "rgs_token=..%2Fadmin", wantErr: true},
	}

	svc := NewClientLaunchService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ExtractInviteCode(tt.scanned)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInviteCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
