package config

import "errors"

var (
	// ErrMissingKey indicates a required configuration key was absent.
	ErrMissingKey = errors.New("config: missing required key")

	// ErrBadValue indicates a configuration value that parsed but is unusable
	// (wrong type, out of range).
	ErrBadValue = errors.New("config: bad value")
)
