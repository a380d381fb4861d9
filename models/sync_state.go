// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus describes where a note stands in the synchronization lifecycle.
type SyncStatus string

const (
	// StatusNeverSynced marks a note that has been captured locally but has
	// never reached the vault.
	StatusNeverSynced SyncStatus = "never_synced"

	// StatusPendingUpload marks a note whose local copy changed after the
	// last successful sync and must be pushed.
	StatusPendingUpload SyncStatus = "pending_upload"

	// StatusPendingDownload marks a note whose remote copy is presumed newer
	// and must be pulled.
	StatusPendingDownload SyncStatus = "pending_download"

	// StatusSynced marks a note whose local and remote copies agree.
	StatusSynced SyncStatus = "synced"

	// StatusConflict marks a note whose local and remote copies diverged and
	// could not be resolved automatically.
	StatusConflict SyncStatus = "conflict"

	// StatusError marks a note whose last sync attempt failed.
	StatusError SyncStatus = "error"
)

// IsValid reports whether s is one of the defined statuses.
func (s SyncStatus) IsValid() bool {
	switch s {
	case StatusNeverSynced, StatusPendingUpload, StatusPendingDownload,
		StatusSynced, StatusConflict, StatusError:
		return true
	}
	return false
}

// SyncState is the persistent synchronization record of one note.
//
// Exactly one row exists per note. Rows are created with StatusNeverSynced
// when the note is captured, mutated only by the sync coordinator, and
// removed together with the owning note or vault (or by cleanup of synced
// rows whose note is gone).
//
// Invariants: Status == StatusSynced implies RetryCount == 0 and LastError
// empty; Status == StatusConflict implies both modification timestamps are
// set.
type SyncState struct {
	NoteID  string
	VaultID string
	Status  SyncStatus

	// LocalModifiedAt and RemoteModifiedAt are the last known edit times on
	// each side. RemoteModifiedAt is nil until the remote copy has been seen.
	LocalModifiedAt  *time.Time
	RemoteModifiedAt *time.Time

	// LastSyncedHash is the content hash both sides last agreed on, used as
	// the common ancestor during conflict detection. Empty before the first
	// successful sync.
	LastSyncedHash string

	// RetryCount counts failed attempts since the last success. It is
	// informational; scheduling is driven by the retry queue's own counter.
	RetryCount int

	// LastError holds the diagnostic message of the last failure, empty when
	// the note is healthy.
	LastError string

	UpdatedAt time.Time
}

// StatusCounts is the per-status aggregate reported by the sync-state store.
type StatusCounts map[SyncStatus]int
