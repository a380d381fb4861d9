package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// syncCoordinator is the concrete implementation of SyncCoordinator.
//
// Every call re-reads the note, its sync state and its retry item from the
// stores: nothing is cached across calls, so concurrent sweeps can never act
// on stale records as long as the caller serializes attempts per note.
type syncCoordinator struct {
	storages  *store.Storages
	providers *adapter.Registry
	resolver  ConflictResolver
	validator validators.Validator

	backoff backoffSchedule

	// now is swapped in tests to pin the retry schedule.
	now func() time.Time
}

// NewSyncCoordinator constructs a SyncCoordinator over the given stores,
// provider registry, resolver and note validator. Backoff policy comes from
// the sync configuration; the retry queue store only persists whatever
// schedule the coordinator computes.
func NewSyncCoordinator(
	storages *store.Storages,
	providers *adapter.Registry,
	resolver ConflictResolver,
	validator validators.Validator,
	cfg config.Sync,
) SyncCoordinator {
	return &syncCoordinator{
		storages:  storages,
		providers: providers,
		resolver:  resolver,
		validator: validator,
		backoff:   backoffSchedule{base: cfg.BackoffBase, cap: cfg.BackoffCap},
		now:       time.Now,
	}
}

// SyncNote implements SyncCoordinator.
//
// The flow per invocation:
//
//  1. Load the note and its sync state; a missing state means the note has
//     never been synced and carries no remote knowledge.
//  2. Resolve the vault and its provider; an unreachable vault fails the
//     attempt immediately and queues the note for retry.
//  3. A note in pending_download status is pulled and applied locally.
//  4. Every other status pushes, guarded by a precondition on the last
//     known remote state. A precondition failure loads the remote version
//     and hands both sides to the resolver.
//  5. Success clears the retry bookkeeping and deletes the queue item.
//  6. Failure increments both retry counters and upserts the queue item
//     with a recomputed backoff.
func (c *syncCoordinator) SyncNote(ctx context.Context, noteID string) (models.SyncOutcome, error) {
	log := logger.FromContext(ctx)

	note, err := c.storages.Notes.GetNote(ctx, noteID)
	if err != nil {
		return models.SyncOutcome{}, fmt.Errorf("get note %s: %w", noteID, err)
	}

	state, err := c.storages.SyncStates.GetState(ctx, noteID)
	if err != nil {
		return models.SyncOutcome{}, fmt.Errorf("get sync state for %s: %w", noteID, err)
	}
	if state == nil {
		localModified := note.UpdatedAt
		state = &models.SyncState{
			NoteID:          note.NoteID,
			VaultID:         note.VaultID,
			Status:          models.StatusNeverSynced,
			LocalModifiedAt: &localModified,
		}
	}

	vault, err := c.storages.Vaults.GetVault(ctx, note.VaultID)
	if err != nil {
		return models.SyncOutcome{}, fmt.Errorf("get vault %s: %w", note.VaultID, err)
	}

	provider, err := c.providers.ForVault(vault)
	if err != nil {
		return c.recordFailure(ctx, state, err)
	}

	if !provider.IsAvailable(ctx, vault) {
		log.Warn().
			Str("func", "syncCoordinator.SyncNote").
			Str("note_id", noteID).
			Str("vault_id", vault.VaultID).
			Msg("vault is not reachable, queueing note for retry")
		return c.recordFailure(ctx, state, fmt.Errorf("%w: vault %q", adapter.ErrProviderUnavailable, vault.VaultID))
	}

	if state.Status == models.StatusPendingDownload {
		return c.pull(ctx, note, vault, provider, state)
	}

	return c.push(ctx, note, vault, provider, state)
}

// pull fetches the vault's version and applies it to the local note.
func (c *syncCoordinator) pull(ctx context.Context, note models.Note, vault models.Vault, provider adapter.Provider, state *models.SyncState) (models.SyncOutcome, error) {
	remote, err := provider.LoadNote(ctx, note.NoteID, vault)
	if err != nil {
		return c.recordFailure(ctx, state, err)
	}

	if err = c.storages.Notes.UpdateNoteContent(ctx, note.NoteID, remote.Content, remote.ModifiedAt); err != nil {
		return models.SyncOutcome{}, fmt.Errorf("apply pulled content for %s: %w", note.NoteID, err)
	}

	return c.recordSuccess(ctx, state, note.FilePath, remote.ModifiedAt, remote.Hash, &remote.ModifiedAt)
}

// push saves the local note into the vault, resolving a divergence when the
// provider reports the remote copy changed underneath us.
func (c *syncCoordinator) push(ctx context.Context, note models.Note, vault models.Vault, provider adapter.Provider, state *models.SyncState) (models.SyncOutcome, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, note); err != nil {
		return c.recordFailure(ctx, state, err)
	}

	result, err := provider.SaveNote(ctx, note, vault, c.precondition(state))
	if errors.Is(err, adapter.ErrRemoteModified) {
		log.Debug().
			Str("func", "syncCoordinator.push").
			Str("note_id", note.NoteID).
			Msg("remote copy changed since last sync, resolving")
		return c.resolveDivergence(ctx, note, vault, provider, state)
	}
	if err != nil {
		return c.recordFailure(ctx, state, err)
	}

	if err = c.storages.Notes.MarkSynced(ctx, note.NoteID, result.FilePath, c.now()); err != nil {
		return models.SyncOutcome{}, fmt.Errorf("mark note %s synced: %w", note.NoteID, err)
	}

	return c.recordSuccess(ctx, state, result.FilePath, note.UpdatedAt, result.Hash, &result.ModifiedAt)
}

// resolveDivergence loads the remote version and applies the resolver's
// decision: force-push for a local win, local apply for a remote win, or a
// persisted conflict when neither side can be picked.
func (c *syncCoordinator) resolveDivergence(ctx context.Context, note models.Note, vault models.Vault, provider adapter.Provider, state *models.SyncState) (models.SyncOutcome, error) {
	log := logger.FromContext(ctx)

	remote, err := provider.LoadNote(ctx, note.NoteID, vault)
	if err != nil {
		return c.recordFailure(ctx, state, err)
	}

	local := models.NoteVersion{
		NoteID:     note.NoteID,
		Content:    note.Content,
		Hash:       utils.ContentHashString(note.Content),
		ModifiedAt: note.UpdatedAt,
	}

	decision := c.resolver.Resolve(ctx, local, remote, state.LastSyncedHash)

	switch decision.Outcome {
	case models.LocalWins, models.Merged:
		// Unconditional save: the decision already accounted for the
		// remote version the precondition protected against.
		winning := note
		winning.Content = decision.WinningContent
		result, saveErr := provider.SaveNote(ctx, winning, vault, models.SavePrecondition{})
		if saveErr != nil {
			return c.recordFailure(ctx, state, saveErr)
		}
		if err = c.storages.Notes.MarkSynced(ctx, note.NoteID, result.FilePath, c.now()); err != nil {
			return models.SyncOutcome{}, fmt.Errorf("mark note %s synced: %w", note.NoteID, err)
		}
		return c.recordSuccess(ctx, state, result.FilePath, note.UpdatedAt, result.Hash, &result.ModifiedAt)

	case models.RemoteWins:
		if err = c.storages.Notes.UpdateNoteContent(ctx, note.NoteID, remote.Content, remote.ModifiedAt); err != nil {
			return models.SyncOutcome{}, fmt.Errorf("apply remote winner for %s: %w", note.NoteID, err)
		}
		return c.recordSuccess(ctx, state, note.FilePath, remote.ModifiedAt, remote.Hash, &remote.ModifiedAt)
	}

	// Unresolvable: persist conflict status with both timestamps, queue the
	// note so the sweep revisits it, and report details to the caller.
	log.Warn().
		Str("func", "syncCoordinator.resolveDivergence").
		Str("note_id", note.NoteID).
		Str("vault_id", vault.VaultID).
		Msg("conflict is unresolvable, preserving both versions")

	details := &models.ConflictDetails{
		NoteID:           note.NoteID,
		VaultID:          note.VaultID,
		LocalModifiedAt:  note.UpdatedAt,
		RemoteModifiedAt: remote.ModifiedAt,
		LocalHash:        local.Hash,
		RemoteHash:       remote.Hash,
	}

	localModified := note.UpdatedAt
	remoteModified := remote.ModifiedAt
	state.Status = models.StatusConflict
	state.LocalModifiedAt = &localModified
	state.RemoteModifiedAt = &remoteModified

	outcome, err := c.recordFailure(ctx, state, fmt.Errorf("%w: note %q", ErrConflictUnresolvable, note.NoteID))
	if err != nil {
		return models.SyncOutcome{}, err
	}

	outcome.Result = models.SyncConflict
	outcome.Conflict = details
	return outcome, nil
}

// precondition builds the save guard from the last known remote state. A
// note that has never seen the remote side saves unconditionally: a first
// sync is never a conflict.
func (c *syncCoordinator) precondition(state *models.SyncState) models.SavePrecondition {
	p := models.SavePrecondition{Hash: state.LastSyncedHash}
	if state.RemoteModifiedAt != nil {
		p.ModifiedAt = *state.RemoteModifiedAt
	}
	return p
}

// recordSuccess persists the synced state and removes any pending retry.
func (c *syncCoordinator) recordSuccess(ctx context.Context, state *models.SyncState, filePath string, localModifiedAt time.Time, syncedHash string, remoteModifiedAt *time.Time) (models.SyncOutcome, error) {
	log := logger.FromContext(ctx)

	localModified := localModifiedAt
	state.Status = models.StatusSynced
	state.LocalModifiedAt = &localModified
	state.RemoteModifiedAt = remoteModifiedAt
	state.LastSyncedHash = syncedHash
	state.RetryCount = 0
	state.LastError = ""
	state.UpdatedAt = c.now()

	if err := c.storages.SyncStates.UpsertStates(ctx, *state); err != nil {
		return models.SyncOutcome{}, fmt.Errorf("persist synced state for %s: %w", state.NoteID, err)
	}

	if err := c.storages.RetryQueue.DeleteItem(ctx, state.NoteID); err != nil {
		return models.SyncOutcome{}, fmt.Errorf("clear retry item for %s: %w", state.NoteID, err)
	}

	log.Debug().
		Str("func", "syncCoordinator.recordSuccess").
		Str("note_id", state.NoteID).
		Str("vault_id", state.VaultID).
		Msg("note synced")

	return models.SyncOutcome{NoteID: state.NoteID, Result: models.SyncSuccess, FilePath: filePath}, nil
}

// recordFailure persists the failed state and schedules the next attempt.
// The queue's own counter drives the backoff curve; the state's counter is
// informational.
func (c *syncCoordinator) recordFailure(ctx context.Context, state *models.SyncState, failure error) (models.SyncOutcome, error) {
	log := logger.FromContext(ctx)
	now := c.now()

	if state.Status != models.StatusConflict {
		state.Status = models.StatusError
	}
	state.RetryCount++
	state.LastError = failure.Error()
	state.UpdatedAt = now

	if err := c.storages.SyncStates.UpsertStates(ctx, *state); err != nil {
		return models.SyncOutcome{}, fmt.Errorf("persist failed state for %s: %w", state.NoteID, err)
	}

	item, err := c.storages.RetryQueue.GetItem(ctx, state.NoteID)
	if err != nil {
		return models.SyncOutcome{}, fmt.Errorf("get retry item for %s: %w", state.NoteID, err)
	}

	attempts := 1
	if item != nil {
		attempts = item.RetryCount + 1
	}

	queued := models.RetryQueueItem{
		NoteID:           state.NoteID,
		VaultID:          state.VaultID,
		RetryCount:       attempts,
		LastAttemptAt:    now,
		NextRetryAt:      now.Add(c.backoff.delay(attempts)),
		LastErrorMessage: failure.Error(),
	}
	if err = c.storages.RetryQueue.UpsertItem(ctx, queued); err != nil {
		return models.SyncOutcome{}, fmt.Errorf("queue retry for %s: %w", state.NoteID, err)
	}

	log.Warn().
		Str("func", "syncCoordinator.recordFailure").
		Str("note_id", state.NoteID).
		Str("vault_id", state.VaultID).
		Int("attempt", attempts).
		Time("next_retry_at", queued.NextRetryAt).
		Err(failure).
		Msg("sync attempt failed")

	return models.SyncOutcome{NoteID: state.NoteID, Result: models.SyncFailed, Reason: failure.Error()}, nil
}
