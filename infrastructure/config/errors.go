package config

import "errors"

var (
	// ErrConfigNotFound indicates the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidFormat indicates the config file could not be parsed.
	ErrInvalidFormat = errors.New("invalid config format")
	// ErrUnsupportedFormat indicates an unsupported file extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrValidationFailed indicates the config failed validation.
	ErrValidationFailed = errors.New("config validation failed")
	// ErrMissingEnvVar indicates a required environment variable is unset.
	ErrMissingEnvVar = errors.New("missing environment variable")
)
