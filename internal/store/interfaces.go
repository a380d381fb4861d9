package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncStateStore persists one sync record per note. It owns no sync logic:
// records are mutated exclusively by the sync coordinator.
type SyncStateStore interface {
	// UpsertStates creates or fully replaces one or more sync records.
	UpsertStates(ctx context.Context, states ...models.SyncState) error
	// GetState returns the sync record for a note, or nil when no record
	// exists. A missing record is not an error.
	GetState(ctx context.Context, noteID string) (*models.SyncState, error)
	// GetStatesByStatus returns sync records with the given status.
	// An empty vaultID widens the query to all vaults.
	GetStatesByStatus(ctx context.Context, vaultID string, status models.SyncStatus) ([]models.SyncState, error)
	// GetPendingUploads returns records owing a push: status pending_upload,
	// or status error with retry_count < maxRetries. Ordered by
	// local_modified_at ascending.
	GetPendingUploads(ctx context.Context, vaultID string, maxRetries int) ([]models.SyncState, error)
	// GetPendingDownloads returns records owing a pull, ordered by
	// remote_modified_at ascending.
	GetPendingDownloads(ctx context.Context, vaultID string) ([]models.SyncState, error)
	// GetConflicts returns records stuck in conflict, ordered by
	// local_modified_at descending.
	GetConflicts(ctx context.Context, vaultID string) ([]models.SyncState, error)
	// CountByStatus aggregates record counts per status. An empty vaultID
	// widens the aggregation to all vaults.
	CountByStatus(ctx context.Context, vaultID string) (models.StatusCounts, error)
	// DeleteState removes the sync record for a note. Deleting a missing
	// record is a no-op.
	DeleteState(ctx context.Context, noteID string) error
	// DeleteStatesByVault removes every sync record belonging to a vault.
	DeleteStatesByVault(ctx context.Context, vaultID string) error
	// DeleteSyncedOrphans removes synced records whose note no longer exists
	// locally and reports how many were removed.
	DeleteSyncedOrphans(ctx context.Context) (int64, error)
}

// RetryQueueStore persists at most one retry item per note. An item exists
// only while the note's last sync attempt failed and has not yet succeeded.
type RetryQueueStore interface {
	// UpsertItem creates or fully replaces the retry item for a note.
	UpsertItem(ctx context.Context, item models.RetryQueueItem) error
	// GetItem returns the retry item for a note, or nil when no item exists.
	// A missing item is not an error.
	GetItem(ctx context.Context, noteID string) (*models.RetryQueueItem, error)
	// GetItemsByVault returns every retry item for a vault, earliest due first.
	GetItemsByVault(ctx context.Context, vaultID string) ([]models.RetryQueueItem, error)
	// GetItemsReadyForRetry returns items due at or before now with attempts
	// left (retry_count < maxRetries), ordered by next_retry_at ascending.
	GetItemsReadyForRetry(ctx context.Context, now time.Time, maxRetries int) ([]models.RetryQueueItem, error)
	// GetFailedItems returns items that exhausted their attempts
	// (retry_count >= maxRetries), ordered by last_attempt_at descending.
	GetFailedItems(ctx context.Context, maxRetries int) ([]models.RetryQueueItem, error)
	// DeleteItem removes the retry item for a note. Deleting a missing item
	// is a no-op.
	DeleteItem(ctx context.Context, noteID string) error
	// DeleteItemsByVault removes every retry item belonging to a vault.
	DeleteItemsByVault(ctx context.Context, vaultID string) error
	// ResetRetryCount zeroes the attempt counter of one item and schedules
	// its next attempt at nextRetryAt. Returns [ErrRetryItemNotFound] when
	// the note has no queued item.
	ResetRetryCount(ctx context.Context, noteID string, nextRetryAt time.Time) error
	// ResetAllFailedItems zeroes the attempt counter of every failed item,
	// schedules them at nextRetryAt, and reports how many were reset.
	ResetAllFailedItems(ctx context.Context, maxRetries int, nextRetryAt time.Time) (int64, error)
}

// NoteRepository is the local note storage the sync engine reads from and
// writes back to. The engine never creates or deletes notes on its own.
type NoteRepository interface {
	// SaveNotes persists one or more new notes.
	SaveNotes(ctx context.Context, notes ...models.Note) error
	// GetNote returns a note by ID. Returns [ErrNoteNotFound] when missing.
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	// GetUnsyncedNotes returns notes of a vault not yet pushed, oldest
	// edits first.
	GetUnsyncedNotes(ctx context.Context, vaultID string) ([]models.Note, error)
	// MarkSynced records the vault file path of a pushed note and flags it
	// synced. Returns [ErrNoteNotFound] when missing.
	MarkSynced(ctx context.Context, noteID string, filePath string, syncedAt time.Time) error
	// UpdateNoteContent replaces a note's content after a pull without
	// touching the synced flag. Returns [ErrNoteNotFound] when missing.
	UpdateNoteContent(ctx context.Context, noteID string, content string, modifiedAt time.Time) error
}

// VaultRepository supplies the set of configured vaults. The sync engine
// never creates or deletes vaults; registration happens at startup from
// configuration.
type VaultRepository interface {
	// UpsertVault registers a vault or updates its settings.
	UpsertVault(ctx context.Context, vault models.Vault) error
	// GetVault returns a vault by ID. Returns [ErrVaultNotFound] when missing.
	GetVault(ctx context.Context, vaultID string) (models.Vault, error)
	// GetAllVaults returns every registered vault in registration order.
	GetAllVaults(ctx context.Context) ([]models.Vault, error)
}
