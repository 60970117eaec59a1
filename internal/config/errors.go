package config

import "errors"

var (
	// ErrInvalidFlags indicates that the command line could not be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrInvalidDirectLineConfigs indicates invalid transport settings
	// (for example, an endpoint that is not an absolute http(s) URL).
	ErrInvalidDirectLineConfigs = errors.New("invalid direct line configuration")
)
