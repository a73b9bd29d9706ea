package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing search service address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid search service settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSearchConfigs indicates invalid search pipeline settings.
	ErrInvalidSearchConfigs = errors.New("invalid search configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRunConfigs indicates inconsistent one-shot flags, such as an
	// output path without a query.
	ErrInvalidRunConfigs = errors.New("invalid run configuration")
)
