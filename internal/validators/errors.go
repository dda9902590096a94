package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAccount      = errors.New("account is required")
	ErrEmptyServerURL    = errors.New("server URL is required")
	ErrInvalidServerURL  = errors.New("server URL must be an http(s) URL with a host")
	ErrEmptyInviteCode   = errors.New("invite code is required")
	ErrInvalidInviteCode = errors.New("invite code contains whitespace or path separators")
)
