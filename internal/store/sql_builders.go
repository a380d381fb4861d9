// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// sync_state columns in scan order.
var syncStateColumns = []string{
	"note_id",
	"vault_id",
	"status",
	"local_modified_at",
	"remote_modified_at",
	"last_synced_hash",
	"retry_count",
	"last_error",
	"updated_at",
}

// retry_queue columns in scan order.
var retryQueueColumns = []string{
	"note_id",
	"vault_id",
	"retry_count",
	"last_attempt_at",
	"next_retry_at",
	"last_error_message",
}

// buildPendingUploadsQuery selects sync records that still owe a push to the
// vault: either explicitly pending upload, or errored with attempts left.
// Oldest local edits come first.
func buildPendingUploadsQuery(ctx context.Context, vaultID string, maxRetries int) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(syncStateColumns...).
		From("sync_state").
		Where(sq.Eq{"vault_id": vaultID}).
		Where(sq.Or{
			sq.Eq{"status": models.StatusPendingUpload},
			sq.And{
				sq.Eq{"status": models.StatusError},
				sq.Lt{"retry_count": maxRetries},
			},
		}).
		OrderBy("local_modified_at ASC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildPendingUploadsQuery").
			Str("vault_id", vaultID).
			Msg("failed to build pending uploads query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPendingDownloadsQuery selects sync records waiting on a pull,
// oldest remote edits first.
func buildPendingDownloadsQuery(ctx context.Context, vaultID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(syncStateColumns...).
		From("sync_state").
		Where(sq.Eq{
			"vault_id": vaultID,
			"status":   models.StatusPendingDownload,
		}).
		OrderBy("remote_modified_at ASC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildPendingDownloadsQuery").
			Str("vault_id", vaultID).
			Msg("failed to build pending downloads query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildConflictsQuery selects sync records stuck in conflict,
// most recent local edits first.
func buildConflictsQuery(ctx context.Context, vaultID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(syncStateColumns...).
		From("sync_state").
		Where(sq.Eq{
			"vault_id": vaultID,
			"status":   models.StatusConflict,
		}).
		OrderBy("local_modified_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildConflictsQuery").
			Str("vault_id", vaultID).
			Msg("failed to build conflicts query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildStatesByStatusQuery selects sync records with the given status.
// An empty vaultID means "across all vaults".
func buildStatesByStatusQuery(ctx context.Context, vaultID string, status models.SyncStatus) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(syncStateColumns...).
		From("sync_state").
		Where(sq.Eq{"status": status})

	if vaultID != "" {
		builder = builder.Where(sq.Eq{"vault_id": vaultID})
	}

	query, args, err := builder.OrderBy("updated_at ASC").ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildStatesByStatusQuery").
			Str("vault_id", vaultID).
			Str("status", string(status)).
			Msg("failed to build states by status query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildStatusCountsQuery aggregates sync record counts per status.
// An empty vaultID means "across all vaults".
func buildStatusCountsQuery(ctx context.Context, vaultID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("status", "COUNT(*) AS total").
		From("sync_state")

	if vaultID != "" {
		builder = builder.Where(sq.Eq{"vault_id": vaultID})
	}

	query, args, err := builder.GroupBy("status").ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildStatusCountsQuery").
			Str("vault_id", vaultID).
			Msg("failed to build status counts query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildItemsReadyForRetryQuery selects queue items due at or before now that
// have attempts left, earliest due first. Items at or beyond maxRetries are
// the failed set and never come back through this query.
func buildItemsReadyForRetryQuery(ctx context.Context, now time.Time, maxRetries int) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(retryQueueColumns...).
		From("retry_queue").
		Where(sq.LtOrEq{"next_retry_at": now}).
		Where(sq.Lt{"retry_count": maxRetries}).
		OrderBy("next_retry_at ASC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildItemsReadyForRetryQuery").
			Msg("failed to build items ready for retry query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFailedItemsQuery selects queue items that exhausted their attempts,
// most recently attempted first.
func buildFailedItemsQuery(ctx context.Context, maxRetries int) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(retryQueueColumns...).
		From("retry_queue").
		Where(sq.GtOrEq{"retry_count": maxRetries}).
		OrderBy("last_attempt_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildFailedItemsQuery").
			Msg("failed to build failed items query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
