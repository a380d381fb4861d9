package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// syncStateRepository is the SQLite-backed implementation of [SyncStateStore].
// It executes all sync record operations directly against the "sync_state"
// table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (note_id, vault_id, iteration index, etc.).
type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncStateRepository constructs a [SyncStateStore] backed by the provided
// database connection and logger.
func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateStore {
	logger.Debug().Msg("creating sync state repository")
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertStates creates or fully replaces one or more sync records.
//
// Routing strategy:
//   - Zero records → no-op (returns nil with a warning log).
//   - Exactly one record → plain upsert, no transaction overhead.
//   - Two or more records → single transaction with a prepared statement.
func (s *syncStateRepository) UpsertStates(ctx context.Context, states ...models.SyncState) error {
	log := logger.FromContext(ctx)

	if len(states) == 0 {
		log.Warn().
			Str("func", "syncStateRepository.UpsertStates").
			Msg("no sync states provided")
		return nil
	}

	if len(states) == 1 {
		return s.upsertSingleState(ctx, states[0])
	}

	return s.upsertMultipleStates(ctx, states)
}

func (s *syncStateRepository) upsertSingleState(ctx context.Context, state models.SyncState) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, upsertSyncState,
		state.NoteID,
		state.VaultID,
		state.Status,
		state.LocalModifiedAt,
		state.RemoteModifiedAt,
		state.LastSyncedHash,
		state.RetryCount,
		state.LastError,
		state.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.upsertSingleState").
			Str("note_id", state.NoteID).
			Str("vault_id", state.VaultID).
			Msg("failed to execute upsert for sync state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *syncStateRepository) upsertMultipleStates(ctx context.Context, states []models.SyncState) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.upsertMultipleStates").
			Int("count", len(states)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertSyncState)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.upsertMultipleStates").
			Int("count", len(states)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, state := range states {
		log.Debug().
			Str("func", "syncStateRepository.upsertMultipleStates").
			Int("iteration", idx+1).
			Int("total", len(states)).
			Str("note_id", state.NoteID).
			Msg("upserting sync state in transaction")

		_, execErr := stmt.ExecContext(ctx,
			state.NoteID,
			state.VaultID,
			state.Status,
			state.LocalModifiedAt,
			state.RemoteModifiedAt,
			state.LastSyncedHash,
			state.RetryCount,
			state.LastError,
			state.UpdatedAt,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "syncStateRepository.upsertMultipleStates").
				Int("iteration", idx+1).
				Str("note_id", state.NoteID).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "syncStateRepository.upsertMultipleStates").
			Int("count", len(states)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// GetState returns the sync record for a note. A note with no record yields
// (nil, nil): absence is an expected answer, not a failure.
func (s *syncStateRepository) GetState(ctx context.Context, noteID string) (*models.SyncState, error) {
	log := logger.FromContext(ctx)

	var state models.SyncState
	row := s.DB.QueryRowContext(ctx, getSyncState, noteID)

	scanErr := row.Scan(
		&state.NoteID,
		&state.VaultID,
		&state.Status,
		&state.LocalModifiedAt,
		&state.RemoteModifiedAt,
		&state.LastSyncedHash,
		&state.RetryCount,
		&state.LastError,
		&state.UpdatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, nil
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "syncStateRepository.GetState").
			Str("note_id", noteID).
			Msg("failed to scan sync state row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return &state, nil
}

func (s *syncStateRepository) GetStatesByStatus(ctx context.Context, vaultID string, status models.SyncStatus) ([]models.SyncState, error) {
	query, args, err := buildStatesByStatusQuery(ctx, vaultID, status)
	if err != nil {
		return nil, err
	}

	return s.querySyncStates(ctx, "syncStateRepository.GetStatesByStatus", query, args)
}

func (s *syncStateRepository) GetPendingUploads(ctx context.Context, vaultID string, maxRetries int) ([]models.SyncState, error) {
	query, args, err := buildPendingUploadsQuery(ctx, vaultID, maxRetries)
	if err != nil {
		return nil, err
	}

	return s.querySyncStates(ctx, "syncStateRepository.GetPendingUploads", query, args)
}

func (s *syncStateRepository) GetPendingDownloads(ctx context.Context, vaultID string) ([]models.SyncState, error) {
	query, args, err := buildPendingDownloadsQuery(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	return s.querySyncStates(ctx, "syncStateRepository.GetPendingDownloads", query, args)
}

func (s *syncStateRepository) GetConflicts(ctx context.Context, vaultID string) ([]models.SyncState, error) {
	query, args, err := buildConflictsQuery(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	return s.querySyncStates(ctx, "syncStateRepository.GetConflicts", query, args)
}

// CountByStatus aggregates sync record counts per status. Statuses with no
// records are simply absent from the returned map.
func (s *syncStateRepository) CountByStatus(ctx context.Context, vaultID string) (models.StatusCounts, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStatusCountsQuery(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	rows, queryErr := s.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "syncStateRepository.CountByStatus").
			Str("vault_id", vaultID).
			Msg("failed to execute status counts query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	counts := make(models.StatusCounts)

	for rows.Next() {
		var status models.SyncStatus
		var total int

		if scanErr := rows.Scan(&status, &total); scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncStateRepository.CountByStatus").
				Str("vault_id", vaultID).
				Msg("failed to scan status count row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		counts[status] = total
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncStateRepository.CountByStatus").
			Str("vault_id", vaultID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return counts, nil
}

// DeleteState removes the sync record for a note. Removing a record that is
// already gone is a no-op.
func (s *syncStateRepository) DeleteState(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, deleteSyncState, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.DeleteState").
			Str("note_id", noteID).
			Msg("failed to execute delete for sync state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *syncStateRepository) DeleteStatesByVault(ctx context.Context, vaultID string) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, deleteSyncStatesByVault, vaultID)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.DeleteStatesByVault").
			Str("vault_id", vaultID).
			Msg("failed to execute delete for vault sync states")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteSyncedOrphans removes synced records whose note no longer exists in
// the local notes table. Records in any other status are kept so that
// failures and conflicts stay visible even after a note is gone.
func (s *syncStateRepository) DeleteSyncedOrphans(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, deleteSyncedOrphanStates)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.DeleteSyncedOrphans").
			Msg("failed to execute orphan cleanup")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.DeleteSyncedOrphans").
			Msg("failed to get rows affected after orphan cleanup")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if removed > 0 {
		log.Info().
			Str("func", "syncStateRepository.DeleteSyncedOrphans").
			Int64("removed", removed).
			Msg("removed orphaned sync states")
	}

	return removed, nil
}

func (s *syncStateRepository) querySyncStates(ctx context.Context, funcName, query string, args []any) ([]models.SyncState, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute sync state query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.SyncState, 0, 50)

	for rows.Next() {
		var state models.SyncState

		scanErr := rows.Scan(
			&state.NoteID,
			&state.VaultID,
			&state.Status,
			&state.LocalModifiedAt,
			&state.RemoteModifiedAt,
			&state.LastSyncedHash,
			&state.RetryCount,
			&state.LastError,
			&state.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan sync state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		states = append(states, state)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return states, nil
}
