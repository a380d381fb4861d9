package service

import "errors"

var (
	// ErrConflictUnresolvable marks a divergence the resolver could not
	// decide automatically. Not a transient failure: the note stays in
	// conflict status with both versions preserved until one side changes
	// or an operator intervenes.
	ErrConflictUnresolvable = errors.New("conflict cannot be resolved automatically")

	// ErrUnknownConflictStrategy is returned when a resolver is constructed
	// with a strategy name no implementation exists for.
	ErrUnknownConflictStrategy = errors.New("unknown conflict strategy")

	// ErrVersionIsNotSpecified is returned when the application version is
	// missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
