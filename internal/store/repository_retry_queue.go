package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// retryQueueRepository is the SQLite-backed implementation of [RetryQueueStore].
// It persists whatever retry schedule the sync coordinator computes; backoff
// policy lives with the coordinator, never here.
type retryQueueRepository struct {
	*DB
	logger *logger.Logger
}

// NewRetryQueueRepository constructs a [RetryQueueStore] backed by the
// provided database connection and logger.
func NewRetryQueueRepository(db *DB, logger *logger.Logger) RetryQueueStore {
	logger.Debug().Msg("creating retry queue repository")
	return &retryQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *retryQueueRepository) UpsertItem(ctx context.Context, item models.RetryQueueItem) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertRetryItem,
		item.NoteID,
		item.VaultID,
		item.RetryCount,
		item.LastAttemptAt,
		item.NextRetryAt,
		item.LastErrorMessage,
	)
	if err != nil {
		log.Err(err).
			Str("func", "retryQueueRepository.UpsertItem").
			Str("note_id", item.NoteID).
			Str("vault_id", item.VaultID).
			Msg("failed to execute upsert for retry queue item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetItem returns the retry item for a note. A note with no queued item
// yields (nil, nil): absence is an expected answer, not a failure.
func (r *retryQueueRepository) GetItem(ctx context.Context, noteID string) (*models.RetryQueueItem, error) {
	log := logger.FromContext(ctx)

	var item models.RetryQueueItem
	row := r.DB.QueryRowContext(ctx, getRetryItem, noteID)

	scanErr := row.Scan(
		&item.NoteID,
		&item.VaultID,
		&item.RetryCount,
		&item.LastAttemptAt,
		&item.NextRetryAt,
		&item.LastErrorMessage,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, nil
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "retryQueueRepository.GetItem").
			Str("note_id", noteID).
			Msg("failed to scan retry queue item row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return &item, nil
}

func (r *retryQueueRepository) GetItemsByVault(ctx context.Context, vaultID string) ([]models.RetryQueueItem, error) {
	return r.queryRetryItems(ctx, "retryQueueRepository.GetItemsByVault", getRetryItemsByVault, []any{vaultID})
}

func (r *retryQueueRepository) GetItemsReadyForRetry(ctx context.Context, now time.Time, maxRetries int) ([]models.RetryQueueItem, error) {
	query, args, err := buildItemsReadyForRetryQuery(ctx, now, maxRetries)
	if err != nil {
		return nil, err
	}

	return r.queryRetryItems(ctx, "retryQueueRepository.GetItemsReadyForRetry", query, args)
}

func (r *retryQueueRepository) GetFailedItems(ctx context.Context, maxRetries int) ([]models.RetryQueueItem, error) {
	query, args, err := buildFailedItemsQuery(ctx, maxRetries)
	if err != nil {
		return nil, err
	}

	return r.queryRetryItems(ctx, "retryQueueRepository.GetFailedItems", query, args)
}

// DeleteItem removes the retry item for a note. Removing an item that is
// already gone is a no-op: successful syncs delete unconditionally.
func (r *retryQueueRepository) DeleteItem(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteRetryItem, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "retryQueueRepository.DeleteItem").
			Str("note_id", noteID).
			Msg("failed to execute delete for retry queue item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *retryQueueRepository) DeleteItemsByVault(ctx context.Context, vaultID string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteRetryItemsByVault, vaultID)
	if err != nil {
		log.Err(err).
			Str("func", "retryQueueRepository.DeleteItemsByVault").
			Str("vault_id", vaultID).
			Msg("failed to execute delete for vault retry queue items")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ResetRetryCount zeroes the attempt counter of one queued item and schedules
// its next attempt at nextRetryAt, bringing a failed note back into rotation.
func (r *retryQueueRepository) ResetRetryCount(ctx context.Context, noteID string, nextRetryAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, resetRetryItem, nextRetryAt, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "retryQueueRepository.ResetRetryCount").
			Str("note_id", noteID).
			Msg("failed to execute retry count reset")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "retryQueueRepository.ResetRetryCount").
			Str("note_id", noteID).
			Msg("failed to get rows affected after retry count reset")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "retryQueueRepository.ResetRetryCount").
			Str("note_id", noteID).
			Msg("no rows affected during retry count reset: item not found")
		return ErrRetryItemNotFound
	}

	return nil
}

// ResetAllFailedItems zeroes the attempt counter of every item at or beyond
// maxRetries and schedules them at nextRetryAt. Returns how many items were
// brought back into rotation; zero is not an error.
func (r *retryQueueRepository) ResetAllFailedItems(ctx context.Context, maxRetries int, nextRetryAt time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, resetFailedRetryItems, nextRetryAt, maxRetries)
	if err != nil {
		log.Err(err).
			Str("func", "retryQueueRepository.ResetAllFailedItems").
			Msg("failed to execute failed items reset")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	resetCount, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "retryQueueRepository.ResetAllFailedItems").
			Msg("failed to get rows affected after failed items reset")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "retryQueueRepository.ResetAllFailedItems").
		Int64("reset_count", resetCount).
		Msg("reset failed retry queue items")

	return resetCount, nil
}

func (r *retryQueueRepository) queryRetryItems(ctx context.Context, funcName, query string, args []any) ([]models.RetryQueueItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute retry queue query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.RetryQueueItem, 0, 50)

	for rows.Next() {
		var item models.RetryQueueItem

		scanErr := rows.Scan(
			&item.NoteID,
			&item.VaultID,
			&item.RetryCount,
			&item.LastAttemptAt,
			&item.NextRetryAt,
			&item.LastErrorMessage,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan retry queue item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}
