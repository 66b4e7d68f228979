package nccheck

import "errors"

// Common errors used throughout the nccheck package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrUnknownProfile indicates a machine profile name that is not registered.
	ErrUnknownProfile = errors.New("unknown machine profile")
)
