package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an in-memory DSN that cannot survive a
	// daemon restart).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid sync engine settings
	// (for example, zero sweep interval or a backoff cap below the base).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidAdminConfigs indicates invalid admin API settings
	// (for example, missing listen address).
	ErrInvalidAdminConfigs = errors.New("invalid admin configuration")
	// ErrInvalidProviderConfigs indicates invalid provider settings
	// (for example, zero request timeout).
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidVaultConfigs indicates an invalid vault entry
	// (for example, missing ID or an unknown provider type).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
)
