package config

import (
	"errors"
	"time"
)

// Defaults applied by validation when optional settings are left unset.
const (
	defaultUnlockDuration = 15 * time.Minute
	defaultRequestTimeout = 30 * time.Second
	defaultHTTPAddress    = "localhost:8080"
)

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing or non-distinct token keys).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
