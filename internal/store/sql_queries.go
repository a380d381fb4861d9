// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertSyncState = `
		INSERT INTO sync_state (
			note_id,
			vault_id,
			status,
			local_modified_at,
			remote_modified_at,
			last_synced_hash,
			retry_count,
			last_error,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (note_id) DO UPDATE SET
			vault_id           = excluded.vault_id,
			status             = excluded.status,
			local_modified_at  = excluded.local_modified_at,
			remote_modified_at = excluded.remote_modified_at,
			last_synced_hash   = excluded.last_synced_hash,
			retry_count        = excluded.retry_count,
			last_error         = excluded.last_error,
			updated_at         = excluded.updated_at;`

	getSyncState = `
		SELECT
			note_id,
			vault_id,
			status,
			local_modified_at,
			remote_modified_at,
			last_synced_hash,
			retry_count,
			last_error,
			updated_at
		FROM sync_state
		WHERE note_id = ?;`

	deleteSyncState = `
		DELETE FROM sync_state
		WHERE note_id = ?;`

	deleteSyncStatesByVault = `
		DELETE FROM sync_state
		WHERE vault_id = ?;`

	deleteSyncedOrphanStates = `
		DELETE FROM sync_state
		WHERE status = 'synced'
		  AND note_id NOT IN (SELECT note_id FROM notes);`

	upsertRetryItem = `
		INSERT INTO retry_queue (
			note_id,
			vault_id,
			retry_count,
			last_attempt_at,
			next_retry_at,
			last_error_message
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (note_id) DO UPDATE SET
			vault_id           = excluded.vault_id,
			retry_count        = excluded.retry_count,
			last_attempt_at    = excluded.last_attempt_at,
			next_retry_at      = excluded.next_retry_at,
			last_error_message = excluded.last_error_message;`

	getRetryItem = `
		SELECT
			note_id,
			vault_id,
			retry_count,
			last_attempt_at,
			next_retry_at,
			last_error_message
		FROM retry_queue
		WHERE note_id = ?;`

	getRetryItemsByVault = `
		SELECT
			note_id,
			vault_id,
			retry_count,
			last_attempt_at,
			next_retry_at,
			last_error_message
		FROM retry_queue
		WHERE vault_id = ?
		ORDER BY next_retry_at ASC;`

	deleteRetryItem = `
		DELETE FROM retry_queue
		WHERE note_id = ?;`

	deleteRetryItemsByVault = `
		DELETE FROM retry_queue
		WHERE vault_id = ?;`

	resetRetryItem = `
		UPDATE retry_queue
		SET retry_count   = 0,
		    next_retry_at = ?
		WHERE note_id = ?;`

	resetFailedRetryItems = `
		UPDATE retry_queue
		SET retry_count   = 0,
		    next_retry_at = ?
		WHERE retry_count >= ?;`

	saveSingleNote = `
		INSERT INTO notes (
			note_id,
			vault_id,
			title,
			content,
			kind,
			file_path,
			is_synced,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	getNote = `
		SELECT
			note_id,
			vault_id,
			title,
			content,
			kind,
			file_path,
			is_synced,
			created_at,
			updated_at
		FROM notes
		WHERE note_id = ?;`

	getUnsyncedNotes = `
		SELECT
			note_id,
			vault_id,
			title,
			content,
			kind,
			file_path,
			is_synced,
			created_at,
			updated_at
		FROM notes
		WHERE vault_id = ? AND is_synced = false
		ORDER BY updated_at ASC;`

	markNoteSynced = `
		UPDATE notes SET
			file_path  = ?,
			is_synced  = true,
			updated_at = ?
		WHERE note_id = ?;`

	updateNoteContent = `
		UPDATE notes SET
			content    = ?,
			updated_at = ?
		WHERE note_id = ?;`

	upsertVault = `
		INSERT INTO vaults (
			vault_id,
			name,
			provider,
			location,
			daily_notes,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (vault_id) DO UPDATE SET
			name        = excluded.name,
			provider    = excluded.provider,
			location    = excluded.location,
			daily_notes = excluded.daily_notes;`

	getVault = `
		SELECT
			vault_id,
			name,
			provider,
			location,
			daily_notes,
			created_at
		FROM vaults
		WHERE vault_id = ?;`

	getAllVaults = `
		SELECT
			vault_id,
			name,
			provider,
			location,
			daily_notes,
			created_at
		FROM vaults
		ORDER BY created_at ASC;`
)
