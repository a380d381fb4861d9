// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoteVersion is one side's view of a note at a moment in time: the content,
// its hash and when it was last modified. The conflict resolver compares two
// of these against the persisted ancestor hash.
type NoteVersion struct {
	NoteID     string
	Content    string
	Hash       string
	ModifiedAt time.Time
}

// SavePrecondition carries the last known remote state of a note. A provider
// refuses the write with ErrRemoteModified when the vault copy no longer
// matches. The zero value means "no expectation": write unconditionally.
type SavePrecondition struct {
	// Hash is the content hash the vault copy is expected to have.
	Hash string

	// ModifiedAt is the modification time the vault copy is expected to have.
	ModifiedAt time.Time
}

// IsZero reports whether the precondition carries no expectation.
func (p SavePrecondition) IsZero() bool {
	return p.Hash == "" && p.ModifiedAt.IsZero()
}

// SaveResult describes where and as what a note landed in the vault after a
// successful save.
type SaveResult struct {
	// FilePath is the vault-relative path of the written note.
	FilePath string

	// ModifiedAt is the modification time the vault recorded for the write.
	ModifiedAt time.Time

	// Hash is the content hash of the written note as the vault sees it.
	Hash string
}
