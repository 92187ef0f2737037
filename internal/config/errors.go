package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address or zero shutdown timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGeneratorConfigs indicates invalid generator settings
	// (for example, empty output root or zero generation timeout).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidAPIConfigs indicates invalid labs API settings
	// (for example, empty base URL).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sweep interval or retention).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidFilesConfigs indicates invalid client file settings
	// (for example, empty download directory).
	ErrInvalidFilesConfigs = errors.New("invalid files configuration")
)
