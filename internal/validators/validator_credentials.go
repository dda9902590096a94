package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/credcache/models"
)

type CredentialValidator struct {
}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialRecord:
		return v.validateCredentialRecord(ctx, value, fields...)
	case *models.CredentialRecord:
		return v.validateCredentialRecord(ctx, *value, fields...)

	case models.LaunchContext:
		return v.validateLaunchContext(ctx, value, fields...)
	case *models.LaunchContext:
		return v.validateLaunchContext(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredentialRecord(ctx context.Context, record models.CredentialRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccount, FieldServerURL}
	}

	for _, f := range fields {
		switch f {
		case FieldAccount:
			if strings.TrimSpace(record.Account) == "" {
				return ErrEmptyAccount
			}
		case FieldServerURL:
			if err := validateServerURL(record.ServerURL); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLaunchContext accepts an empty server URL or invite code unless the
// field is requested explicitly: a link may carry only one of them.
func (v *CredentialValidator) validateLaunchContext(ctx context.Context, launch models.LaunchContext, fields ...string) error {
	explicit := len(fields) > 0
	if !explicit {
		fields = []string{FieldServerURL, FieldInviteCode}
	}

	for _, f := range fields {
		switch f {
		case FieldServerURL:
			if launch.ServerURL == "" && !explicit {
				continue
			}
			if err := validateServerURL(launch.ServerURL); err != nil {
				return err
			}
		case FieldInviteCode:
			if launch.InviteCode == "" && !explicit {
				continue
			}
			if err := validateInviteCode(launch.InviteCode); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateServerURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyServerURL
	}

	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ErrInvalidServerURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidServerURL
	}

	return nil
}

func validateInviteCode(code string) error {
	if code == "" {
		return ErrEmptyInviteCode
	}
	if strings.ContainsAny(code, " \t\r\n/\\?#") {
		return ErrInvalidInviteCode
	}

	return nil
}
