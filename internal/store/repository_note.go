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

// noteRepository is the SQLite-backed implementation of [NoteRepository].
// The sync engine treats it as a read/write dependency: it reads unsynced
// notes and writes back sync bookkeeping (file path, synced flag, pulled
// content), but never creates or deletes notes on its own.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveNotes persists one or more new notes.
//
// Routing strategy:
//   - Zero notes → no-op (returns nil with a warning log).
//   - Exactly one note → plain insert, no transaction overhead.
//   - Two or more notes → single transaction with a prepared statement.
func (n *noteRepository) SaveNotes(ctx context.Context, notes ...models.Note) error {
	log := logger.FromContext(ctx)

	if len(notes) == 0 {
		log.Warn().
			Str("func", "noteRepository.SaveNotes").
			Msg("no notes provided")
		return nil
	}

	if len(notes) == 1 {
		return n.saveSingleNote(ctx, notes[0])
	}

	return n.saveMultipleNotes(ctx, notes)
}

func (n *noteRepository) saveSingleNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	_, err := n.DB.ExecContext(ctx, saveSingleNote,
		note.NoteID,
		note.VaultID,
		note.Title,
		note.Content,
		note.Kind,
		note.FilePath,
		note.IsSynced,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.saveSingleNote").
			Str("note_id", note.NoteID).
			Str("vault_id", note.VaultID).
			Msg("failed to execute insert for note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (n *noteRepository) saveMultipleNotes(ctx context.Context, notes []models.Note) error {
	log := logger.FromContext(ctx)

	tx, err := n.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.saveMultipleNotes").
			Int("count", len(notes)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, saveSingleNote)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.saveMultipleNotes").
			Int("count", len(notes)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, note := range notes {
		log.Debug().
			Str("func", "noteRepository.saveMultipleNotes").
			Int("iteration", idx+1).
			Int("total", len(notes)).
			Str("note_id", note.NoteID).
			Msg("saving note in transaction")

		_, execErr := stmt.ExecContext(ctx,
			note.NoteID,
			note.VaultID,
			note.Title,
			note.Content,
			note.Kind,
			note.FilePath,
			note.IsSynced,
			note.CreatedAt,
			note.UpdatedAt,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "noteRepository.saveMultipleNotes").
				Int("iteration", idx+1).
				Str("note_id", note.NoteID).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "noteRepository.saveMultipleNotes").
			Int("count", len(notes)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// GetNote returns a note by ID. A missing note is a real failure here,
// unlike sync state reads: the engine cannot sync what does not exist.
func (n *noteRepository) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := n.DB.QueryRowContext(ctx, getNote, noteID)

	scanErr := row.Scan(
		&note.NoteID,
		&note.VaultID,
		&note.Title,
		&note.Content,
		&note.Kind,
		&note.FilePath,
		&note.IsSynced,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		log.Warn().
			Str("func", "noteRepository.GetNote").
			Str("note_id", noteID).
			Msg("note not found")
		return models.Note{}, ErrNoteNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "noteRepository.GetNote").
			Str("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return note, nil
}

// GetUnsyncedNotes returns notes of a vault not yet pushed, oldest edits
// first so long-waiting notes are attempted before fresh ones.
func (n *noteRepository) GetUnsyncedNotes(ctx context.Context, vaultID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := n.DB.QueryContext(ctx, getUnsyncedNotes, vaultID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetUnsyncedNotes").
			Str("vault_id", vaultID).
			Msg("failed to execute query for unsynced notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.NoteID,
			&note.VaultID,
			&note.Title,
			&note.Content,
			&note.Kind,
			&note.FilePath,
			&note.IsSynced,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.GetUnsyncedNotes").
				Str("vault_id", vaultID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.GetUnsyncedNotes").
			Str("vault_id", vaultID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// MarkSynced records where in the vault a note was written and flags it
// synced. Returns [ErrNoteNotFound] if the note vanished in the meantime.
func (n *noteRepository) MarkSynced(ctx context.Context, noteID string, filePath string, syncedAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := n.DB.ExecContext(ctx, markNoteSynced, filePath, syncedAt, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.MarkSynced").
			Str("note_id", noteID).
			Msg("failed to execute synced flag update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.MarkSynced").
			Str("note_id", noteID).
			Msg("failed to get rows affected after synced flag update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "noteRepository.MarkSynced").
			Str("note_id", noteID).
			Msg("no rows affected during synced flag update: note not found")
		return ErrNoteNotFound
	}

	return nil
}

// UpdateNoteContent replaces a note's content after a pull. The synced flag
// is left alone: flipping it is [noteRepository.MarkSynced]'s job.
func (n *noteRepository) UpdateNoteContent(ctx context.Context, noteID string, content string, modifiedAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := n.DB.ExecContext(ctx, updateNoteContent, content, modifiedAt, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNoteContent").
			Str("note_id", noteID).
			Msg("failed to execute content update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNoteContent").
			Str("note_id", noteID).
			Msg("failed to get rows affected after content update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "noteRepository.UpdateNoteContent").
			Str("note_id", noteID).
			Msg("no rows affected during content update: note not found")
		return ErrNoteNotFound
	}

	return nil
}
