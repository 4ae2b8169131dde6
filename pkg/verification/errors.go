package verification

import "errors"

var (
	ErrNotFound       = errors.New("verification.not_found")
	ErrSecretMismatch = errors.New("verification.secret_mismatch")
	ErrExpired        = errors.New("verification.expired")
	ErrInvalidCode    = errors.New("verification.invalid_code")
	ErrEmailMismatch  = errors.New("verification.email_mismatch")
	ErrUserMismatch   = errors.New("verification.user_mismatch")
	ErrNotVerified    = errors.New("verification.not_verified")
	ErrMissingSubject = errors.New("verification.missing_subject")
	ErrStorage        = errors.New("verification.storage")
)
