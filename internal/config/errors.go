package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that the token signing secret is
	// unset or blank. This is fatal: the process must not start without it.
	ErrMissingTokenSignKey = errors.New("token sign key must be set and non-empty")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive token TTL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero janitor interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
