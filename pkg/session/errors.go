package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session.not_found")
	ErrSessionExpired  = errors.New("session.expired")
	ErrSecretMismatch  = errors.New("session.secret_mismatch")
	ErrStorage         = errors.New("session.storage")
	ErrInvalidSession  = errors.New("session.invalid")
)
