package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &noteRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func noteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"note_id", "vault_id", "title", "content", "kind",
		"file_path", "is_synced", "created_at", "updated_at",
	})
}

func TestSaveNotes_Single(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	note := models.Note{
		NoteID:    "note-1",
		VaultID:   "vault-1",
		Title:     "groceries",
		Content:   "- milk\n- eggs",
		Kind:      models.NoteKindText,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO notes").
		WithArgs("note-1", "vault-1", "groceries", "- milk\n- eggs", "text", "", false, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveNotes(context.Background(), note); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveNotes_SingleExecError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO notes").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveNotes(context.Background(), models.Note{NoteID: "note-1"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestSaveNotes_MultipleUsesTransaction(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	notes := []models.Note{
		{NoteID: "note-1", VaultID: "vault-1", Title: "first", CreatedAt: now, UpdatedAt: now},
		{NoteID: "note-2", VaultID: "vault-1", Title: "second", CreatedAt: now, UpdatedAt: now},
		{NoteID: "note-3", VaultID: "vault-1", Title: "third", CreatedAt: now, UpdatedAt: now},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO notes")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.SaveNotes(context.Background(), notes...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveNotes_MultipleRollsBackOnFailure(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	notes := []models.Note{
		{NoteID: "note-1", UpdatedAt: now},
		{NoteID: "note-2", UpdatedAt: now},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO notes")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.SaveNotes(context.Background(), notes...)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestSaveNotes_Empty(t *testing.T) {
	repo, _, db := newTestNoteRepo(t)
	defer db.Close()

	if err := repo.SaveNotes(context.Background()); err != nil {
		t.Fatalf("expected nil for empty save, got %v", err)
	}
}

func TestGetNote_Found(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

	mock.ExpectQuery("FROM notes WHERE note_id").
		WithArgs("note-1").
		WillReturnRows(noteRows().AddRow(
			"note-1", "vault-1", "groceries", "- milk", "text",
			"inbox/groceries.md", true, created, updated,
		))

	note, err := repo.GetNote(context.Background(), "note-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.Title != "groceries" {
		t.Errorf("expected title %q, got %q", "groceries", note.Title)
	}
	if note.Kind != models.NoteKindText {
		t.Errorf("expected kind %q, got %q", models.NoteKindText, note.Kind)
	}
	if !note.IsSynced {
		t.Error("expected note to be synced")
	}
	if !note.UpdatedAt.Equal(updated) {
		t.Errorf("expected updated at %v, got %v", updated, note.UpdatedAt)
	}
}

func TestGetNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM notes WHERE note_id").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetNote(context.Background(), "ghost")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestGetUnsyncedNotes(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	older := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("is_synced = false").
		WithArgs("vault-1").
		WillReturnRows(noteRows().
			AddRow("note-1", "vault-1", "oldest edit", "", "text", "", false, older, older).
			AddRow("note-2", "vault-1", "newest edit", "", "voice", "", false, newer, newer))

	notes, err := repo.GetUnsyncedNotes(context.Background(), "vault-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].NoteID != "note-1" {
		t.Errorf("expected oldest edit first, got %q", notes[0].NoteID)
	}
}

func TestGetUnsyncedNotes_QueryError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("is_synced = false").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.GetUnsyncedNotes(context.Background(), "vault-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestMarkSynced_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	syncedAt := time.Now()

	mock.ExpectExec("SET file_path").
		WithArgs("inbox/groceries.md", syncedAt, "note-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSynced(context.Background(), "note-1", "inbox/groceries.md", syncedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkSynced_NoteVanished(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("SET file_path").
		WithArgs("inbox/ghost.md", sqlmock.AnyArg(), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSynced(context.Background(), "ghost", "inbox/ghost.md", time.Now())
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestUpdateNoteContent_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	modifiedAt := time.Now()

	mock.ExpectExec("SET content").
		WithArgs("remote version wins", modifiedAt, "note-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateNoteContent(context.Background(), "note-1", "remote version wins", modifiedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateNoteContent_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("SET content").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateNoteContent(context.Background(), "ghost", "content", time.Now())
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
