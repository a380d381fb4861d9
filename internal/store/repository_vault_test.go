package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestVaultRepo(t *testing.T) (*vaultRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &vaultRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func vaultRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"vault_id", "name", "provider", "location", "daily_notes", "created_at",
	})
}

func TestUpsertVault_Success(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	created := time.Now()
	vault := models.Vault{
		VaultID:   "vault-1",
		Name:      "personal",
		Provider:  models.ProviderFile,
		Location:  "/home/user/vault",
		CreatedAt: created,
	}

	mock.ExpectExec("INSERT INTO vaults").
		WithArgs("vault-1", "personal", "file", "/home/user/vault", false, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertVault(context.Background(), vault); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpsertVault_NameTaken(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vaults").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})

	err := repo.UpsertVault(context.Background(), models.Vault{VaultID: "vault-2", Name: "personal"})
	if !errors.Is(err, ErrVaultAlreadyExists) {
		t.Fatalf("expected ErrVaultAlreadyExists, got %v", err)
	}
}

func TestUpsertVault_ExecError(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vaults").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.UpsertVault(context.Background(), models.Vault{VaultID: "vault-1"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetVault_Found(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	created := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM vaults WHERE vault_id").
		WithArgs("vault-1").
		WillReturnRows(vaultRows().AddRow(
			"vault-1", "personal", "http", "https://vault.example.com", true, created,
		))

	vault, err := repo.GetVault(context.Background(), "vault-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vault.Provider != models.ProviderHTTP {
		t.Errorf("expected provider %q, got %q", models.ProviderHTTP, vault.Provider)
	}
	if !vault.DailyNotes {
		t.Error("expected daily notes layout to be enabled")
	}
	if vault.Location != "https://vault.example.com" {
		t.Errorf("unexpected location %q", vault.Location)
	}
}

func TestGetVault_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM vaults WHERE vault_id").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetVault(context.Background(), "ghost")
	if !errors.Is(err, ErrVaultNotFound) {
		t.Fatalf("expected ErrVaultNotFound, got %v", err)
	}
}

func TestGetAllVaults(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM vaults ORDER BY created_at").
		WillReturnRows(vaultRows().
			AddRow("vault-1", "personal", "file", "/home/user/vault", false, first).
			AddRow("vault-2", "work", "http", "https://vault.example.com", true, second))

	vaults, err := repo.GetAllVaults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vaults) != 2 {
		t.Fatalf("expected 2 vaults, got %d", len(vaults))
	}
	if vaults[0].VaultID != "vault-1" {
		t.Errorf("expected oldest vault first, got %q", vaults[0].VaultID)
	}
}

func TestGetAllVaults_Empty(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM vaults ORDER BY created_at").
		WillReturnRows(vaultRows())

	vaults, err := repo.GetAllVaults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vaults) != 0 {
		t.Fatalf("expected no vaults, got %d", len(vaults))
	}
}
