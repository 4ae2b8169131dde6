package config

import "errors"

var (
	ErrParsingConfig   = errors.New("config.parse_failed")
	ErrInvalidConfig   = errors.New("config.invalid")
	ErrNilPointer      = errors.New("config.nil_pointer")
	ErrLoadingEnvFiles = errors.New("config.env_files")
)
