package password

import "errors"

var (
	ErrInvalidHash          = errors.New("password.invalid_hash")
	ErrIncompatibleVersion  = errors.New("password.incompatible_version")
	ErrInvalidConfig        = errors.New("password.invalid_config")
	ErrMissingPepper        = errors.New("password.missing_pepper")
	ErrRandomUnavailable    = errors.New("password.random_unavailable")
	ErrUnsupportedAlgorithm = errors.New("password.unsupported_algorithm")
)
