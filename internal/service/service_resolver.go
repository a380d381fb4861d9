package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// conflictResolver is the concrete implementation of ConflictResolver.
// It performs a purely in-memory comparison of two note versions against
// their common ancestor hash; no storage layer is touched because the
// operation is stateless and produces no side effects.
type conflictResolver struct {
	strategy models.ConflictStrategy
}

// NewConflictResolver constructs a ConflictResolver applying the given
// strategy when both sides changed. Returns ErrUnknownConflictStrategy for a
// strategy no implementation exists for.
func NewConflictResolver(strategy models.ConflictStrategy) (ConflictResolver, error) {
	if !strategy.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConflictStrategy, strategy)
	}
	return &conflictResolver{strategy: strategy}, nil
}

// Resolve implements ConflictResolver.
//
// Decision order:
//
//  1. Identical content on both sides: nothing to decide, local wins.
//  2. With a known ancestor, a side whose hash still equals the ancestor
//     did not change — the other side wins outright. This is not a true
//     conflict and callers mark the note synced, not conflicted.
//  3. Both sides changed (or no ancestor is known): the configured
//     strategy picks the winner.
//
// Under LastWriteWins the strictly later modification time wins. Equal
// timestamps break toward local, except when an ancestor proves both sides
// diverged from it with identical timestamps: then no ordering rule can
// pick a side safely and the decision is Unresolvable. Without an ancestor
// (first contact) the tie always breaks toward local — a first sync is
// never a conflict.
func (r *conflictResolver) Resolve(ctx context.Context, local, remote models.NoteVersion, ancestorHash string) models.ConflictDecision {
	log := logger.FromContext(ctx)

	if local.Hash == remote.Hash {
		return models.ConflictDecision{WinningContent: local.Content, Outcome: models.LocalWins}
	}

	bothChanged := true
	if ancestorHash != "" {
		localChanged := local.Hash != ancestorHash
		remoteChanged := remote.Hash != ancestorHash

		switch {
		case localChanged && !remoteChanged:
			log.Debug().
				Str("func", "conflictResolver.Resolve").
				Str("note_id", local.NoteID).
				Msg("only local side changed since ancestor")
			return models.ConflictDecision{WinningContent: local.Content, Outcome: models.LocalWins}
		case remoteChanged && !localChanged:
			log.Debug().
				Str("func", "conflictResolver.Resolve").
				Str("note_id", local.NoteID).
				Msg("only remote side changed since ancestor")
			return models.ConflictDecision{WinningContent: remote.Content, Outcome: models.RemoteWins}
		}
	} else {
		bothChanged = false
	}

	switch r.strategy {
	case models.PreferLocal:
		return models.ConflictDecision{WinningContent: local.Content, Outcome: models.LocalWins}
	case models.PreferRemote:
		return models.ConflictDecision{WinningContent: remote.Content, Outcome: models.RemoteWins}
	}

	// LastWriteWins
	switch {
	case local.ModifiedAt.After(remote.ModifiedAt):
		return models.ConflictDecision{WinningContent: local.Content, Outcome: models.LocalWins}
	case remote.ModifiedAt.After(local.ModifiedAt):
		return models.ConflictDecision{WinningContent: remote.Content, Outcome: models.RemoteWins}
	}

	if bothChanged {
		log.Warn().
			Str("func", "conflictResolver.Resolve").
			Str("note_id", local.NoteID).
			Time("modified_at", local.ModifiedAt).
			Msg("both sides changed with equal timestamps and divergent content")
		return models.ConflictDecision{Outcome: models.Unresolvable}
	}

	return models.ConflictDecision{WinningContent: local.Content, Outcome: models.LocalWins}
}
