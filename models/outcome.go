// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncResult classifies how one sync attempt ended.
type SyncResult string

const (
	// SyncSuccess means local and remote agree and the state is Synced.
	SyncSuccess SyncResult = "success"

	// SyncConflict means the versions diverged and could not be resolved;
	// the state is Conflict and both versions are preserved.
	SyncConflict SyncResult = "conflict"

	// SyncFailed means the attempt failed and was queued for retry.
	SyncFailed SyncResult = "failed"
)

// SyncOutcome is the coordinator's report of one note's sync attempt.
// The accompanying error return is reserved for storage failures; everything
// that went wrong with the vault itself is described here.
type SyncOutcome struct {
	NoteID string     `json:"note_id"`
	Result SyncResult `json:"result"`

	// FilePath is the vault-relative path the note was written to. Set only
	// on success.
	FilePath string `json:"file_path,omitempty"`

	// Conflict describes the divergence when Result is SyncConflict.
	Conflict *ConflictDetails `json:"conflict,omitempty"`

	// Reason is the failure diagnostic when Result is SyncFailed.
	Reason string `json:"reason,omitempty"`
}
