package service

import "errors"

var (
	ErrNoCachedData    = errors.New("no cached data")
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupt data")
	ErrInvalidRecord   = errors.New("invalid credential record")

	ErrEmptyPassphrase    = errors.New("passphrase is empty")
	ErrPassphraseTooShort = errors.New("passphrase is too short")
	ErrPassphraseTooLong  = errors.New("passphrase is too long")

	ErrInvalidLaunchLink = errors.New("invalid launch link")
	ErrInvalidInviteCode = errors.New("invalid invite code")
	ErrEmptyAccessToken  = errors.New("access token is empty")

	ErrEmptyPreferenceKey     = errors.New("preference key is empty")
	ErrPreferenceNotFound     = errors.New("preference not found")
	ErrPreferenceKindMismatch = errors.New("preference kind mismatch")
)
