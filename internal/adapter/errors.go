package adapter

import "errors"

var (
	// ErrProviderUnavailable marks transport failures and vault backends that
	// cannot be reached. Always transient: affected notes are queued for retry.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrProviderRead marks a failure to read a note from the vault.
	ErrProviderRead = errors.New("provider read failed")

	// ErrProviderWrite marks a failure to write a note into the vault.
	ErrProviderWrite = errors.New("provider write failed")

	// ErrRemoteModified is returned by SaveNote when the vault copy no longer
	// matches the precondition. The caller loads the remote version and hands
	// both sides to the conflict resolver.
	ErrRemoteModified = errors.New("remote copy modified")

	// ErrNoteNotFound is returned by LoadNote when the vault holds no copy of
	// the requested note.
	ErrNoteNotFound = errors.New("note not found in vault")

	// ErrUnauthorized marks a vault server rejecting the daemon's credentials
	// even after a fresh login.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrUnknownProvider is returned by the registry for a vault whose
	// provider type has no registered implementation.
	ErrUnknownProvider = errors.New("unknown provider type")
)
