// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the vault I/O layer of the sync daemon.
//
// The primary abstraction is [Provider], which decouples the sync engine from
// the storage behind a vault. The package ships two implementations: a local
// folder of Markdown files ([NewFileProvider]) and a remote vault server
// spoken to over REST ([NewHTTPProvider]). A [Registry] maps each vault's
// configured [models.ProviderType] to the implementation serving it.
//
// Error values defined in errors.go are shared by all implementations so that
// the sync coordinator can use [errors.Is] for provider-agnostic error
// handling (e.g. [ErrRemoteModified] for a failed write precondition,
// [ErrProviderUnavailable] for a vault that cannot be reached).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// Provider performs note I/O against one kind of vault. Implementations are
// responsible for locating the vault through [models.Vault.Location],
// authentication where applicable, and mapping their failures to the sentinel
// values defined in this package.
//
// Every implementation reports a modification timestamp and a content hash
// for the vault versions it returns, so the conflict resolver can compare
// vault copies against local state regardless of where the vault lives.
type Provider interface {
	// IsAvailable reports whether the vault is currently reachable. A false
	// return is transient by definition: callers queue affected notes for
	// retry instead of failing them permanently.
	IsAvailable(ctx context.Context, vault models.Vault) bool

	// SaveNote persists the note into the vault and returns where it landed.
	// A non-zero precondition makes the write conditional on the vault copy
	// still matching the last known remote state; [ErrRemoteModified] is
	// returned (wrapped) when it no longer does, and the vault is left
	// untouched.
	SaveNote(ctx context.Context, note models.Note, vault models.Vault, precondition models.SavePrecondition) (models.SaveResult, error)

	// LoadNote fetches the vault's current version of the note identified by
	// noteID. Returns [ErrNoteNotFound] (wrapped) when the vault holds no
	// copy of it.
	LoadNote(ctx context.Context, noteID string, vault models.Vault) (models.NoteVersion, error)
}
