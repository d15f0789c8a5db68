package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("config target must not be nil")

	// ErrParsingConfig is returned when environment parsing fails.
	ErrParsingConfig = errors.New("failed to parse config from environment")

	// ErrConfigNotLoaded is returned when a cached config cannot be
	// retrieved after parsing.
	ErrConfigNotLoaded = errors.New("config was not loaded")
)
