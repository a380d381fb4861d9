// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConflictOutcome is the tagged result of conflict resolution. Every call
// site must handle every value; resolution never signals through errors or
// nil returns.
type ConflictOutcome string

const (
	// LocalWins keeps the local content.
	LocalWins ConflictOutcome = "local_wins"

	// RemoteWins keeps the remote content.
	RemoteWins ConflictOutcome = "remote_wins"

	// Merged is reserved for future content-level merge strategies.
	Merged ConflictOutcome = "merged"

	// Unresolvable means neither side can be picked safely: both sides
	// changed and the ordering rule cannot break the tie. Both versions must
	// be preserved.
	Unresolvable ConflictOutcome = "unresolvable"
)

// ConflictStrategy selects how the resolver decides between two sides that
// both changed since the common ancestor.
type ConflictStrategy string

const (
	// LastWriteWins picks the side with the strictly later modification
	// time. Equal timestamps with identical content fall back to local;
	// equal timestamps with divergent content are unresolvable.
	LastWriteWins ConflictStrategy = "last_write_wins"

	// PreferLocal always keeps the local side when both changed.
	PreferLocal ConflictStrategy = "prefer_local"

	// PreferRemote always keeps the remote side when both changed.
	PreferRemote ConflictStrategy = "prefer_remote"
)

// IsValid reports whether s is a known strategy.
func (s ConflictStrategy) IsValid() bool {
	switch s {
	case LastWriteWins, PreferLocal, PreferRemote:
		return true
	}
	return false
}

// ConflictDecision is the resolver's verdict: the content that should end up
// on both sides and how it was chosen. WinningContent is meaningless when
// Outcome is Unresolvable.
type ConflictDecision struct {
	WinningContent string
	Outcome        ConflictOutcome
}

// ConflictDetails describes an unresolved divergence, persisted alongside
// StatusConflict and surfaced through the admin API.
type ConflictDetails struct {
	NoteID           string    `json:"note_id"`
	VaultID          string    `json:"vault_id"`
	LocalModifiedAt  time.Time `json:"local_modified_at"`
	RemoteModifiedAt time.Time `json:"remote_modified_at"`
	LocalHash        string    `json:"local_hash"`
	RemoteHash       string    `json:"remote_hash"`
}
