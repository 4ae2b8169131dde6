package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("auth.invalid_credentials")
	ErrAlreadyRegistered      = errors.New("auth.already_registered")
	ErrEmailAlreadyVerified   = errors.New("auth.email_already_verified")
	ErrAccountAlreadyLinked   = errors.New("auth.account_already_linked")
	ErrAccountLinkedElsewhere = errors.New("auth.account_linked_elsewhere")
	ErrPasswordRequired       = errors.New("auth.password_required")
	ErrDelivery               = errors.New("auth.delivery_failed")
	ErrInvalidRedirectURI     = errors.New("auth.invalid_redirect_uri")
)

// Configuration errors
var (
	ErrMissingDependency = errors.New("auth.missing_dependency")
	ErrMissingSecret     = errors.New("auth.missing_secret")
	ErrSharedSecret      = errors.New("auth.shared_secret")
)
