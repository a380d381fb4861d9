// Package service implements the sync engine: conflict resolution, the
// per-note sync coordinator, the periodic sweep over all vaults, and the
// background jobs that drive them.
//
// The engine owns every mutation of sync state and retry queue records.
// Storage and vault I/O are delegated to internal/store and internal/adapter
// respectively; this package only decides what should happen to each note.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConflictResolver decides the winning version of a note whose local and
// remote copies diverged. Resolve is deterministic and side-effect-free:
// the same inputs always produce the same decision.
type ConflictResolver interface {
	// Resolve compares both versions against the content hash of the last
	// state the two sides agreed on (empty before the first successful
	// sync) and returns the decision. It never returns an error: every
	// possible situation maps to one of the [models.ConflictOutcome] values,
	// including [models.Unresolvable].
	Resolve(ctx context.Context, local, remote models.NoteVersion, ancestorHash string) models.ConflictDecision
}

// SyncCoordinator performs one sync attempt for one note: push, pull or
// conflict resolution, plus all resulting state and retry queue updates.
//
// The coordinator does not serialize concurrent calls for the same note;
// that guarantee belongs to the caller (the sweep holds a per-note lock).
type SyncCoordinator interface {
	// SyncNote loads the note's current state, talks to the vault's
	// provider, and persists the outcome. The returned error is reserved
	// for storage failures: everything that went wrong with the vault
	// itself is reported inside the outcome and scheduled for retry.
	SyncNote(ctx context.Context, noteID string) (models.SyncOutcome, error)
}

// SweepService runs one full pass over all vaults, feeding every eligible
// note to the coordinator with bounded concurrency.
type SweepService interface {
	// RunSweep drives the coordinator over retry-ready, unsynced and
	// pending-upload notes of every vault. Per-note and per-vault failures
	// are counted, never raised; the returned error is reserved for the
	// inability to enumerate vaults at all.
	RunSweep(ctx context.Context) (models.SweepSummary, error)
}

// SyncAdminService exposes the engine's observability and operator actions
// backing the admin API.
type SyncAdminService interface {
	// GetStatus reports per-vault sync state counts.
	GetStatus(ctx context.Context) ([]models.VaultSyncStatus, error)
	// GetConflicts lists unresolved conflicts, most recent local edits
	// first. An empty vaultID widens the query to all vaults.
	GetConflicts(ctx context.Context, vaultID string) ([]models.SyncState, error)
	// GetFailedItems lists retry queue items that exhausted their attempts.
	GetFailedItems(ctx context.Context) ([]models.RetryQueueItem, error)
	// ResetRetry re-arms one failed note for a prompt next attempt.
	// Returns [store.ErrRetryItemNotFound] when the note has no queued item.
	ResetRetry(ctx context.Context, noteID string) error
	// ResetAllFailed re-arms every failed item and reports how many.
	ResetAllFailed(ctx context.Context) (int64, error)
}

// AppInfoService reports application metadata.
type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string
}

// Job is a restartable background loop. Implementations run their work on a
// ticker between Start and Stop.
type Job interface {
	// Start launches the loop. A running job is stopped first, so Start is
	// safe to call repeatedly. The loop exits when ctx is cancelled or Stop
	// is called.
	Start(ctx context.Context)
	// Stop terminates the loop and waits for the in-flight iteration.
	// Stopping an idle job is a no-op.
	Stop()
}

// backoffSchedule computes the delay before the n-th retry (n >= 1): the
// base doubles with each failed attempt and never exceeds the cap. Shared by
// the coordinator (scheduling) and its tests (asserting the curve).
type backoffSchedule struct {
	base time.Duration
	cap  time.Duration
}

// delay returns base * 2^(attempt-1) bounded by cap. Attempts below one are
// treated as the first attempt.
func (b backoffSchedule) delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	d := b.base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= b.cap {
			return b.cap
		}
	}
	if d > b.cap {
		return b.cap
	}
	return d
}
