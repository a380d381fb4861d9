package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// vaultRepository is the SQLite-backed implementation of [VaultRepository].
// Vaults are registered at startup from configuration; the sync engine only
// ever reads them back.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertVault registers a vault or updates its settings. A name collision
// with a different vault surfaces as [ErrVaultAlreadyExists].
func (v *vaultRepository) UpsertVault(ctx context.Context, vault models.Vault) error {
	log := logger.FromContext(ctx)

	_, err := v.DB.ExecContext(ctx, upsertVault,
		vault.VaultID,
		vault.Name,
		vault.Provider,
		vault.Location,
		vault.DailyNotes,
		vault.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.UpsertVault").
			Str("vault_id", vault.VaultID).
			Str("name", vault.Name).
			Msg("failed to execute upsert for vault")

		switch sqliteError(err) {
		case sqlite3.ErrConstraint:
			return ErrVaultAlreadyExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return nil
}

func (v *vaultRepository) GetVault(ctx context.Context, vaultID string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	var vault models.Vault
	row := v.DB.QueryRowContext(ctx, getVault, vaultID)

	scanErr := row.Scan(
		&vault.VaultID,
		&vault.Name,
		&vault.Provider,
		&vault.Location,
		&vault.DailyNotes,
		&vault.CreatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		log.Warn().
			Str("func", "vaultRepository.GetVault").
			Str("vault_id", vaultID).
			Msg("vault not found")
		return models.Vault{}, ErrVaultNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "vaultRepository.GetVault").
			Str("vault_id", vaultID).
			Msg("failed to scan vault row")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return vault, nil
}

func (v *vaultRepository) GetAllVaults(ctx context.Context) ([]models.Vault, error) {
	log := logger.FromContext(ctx)

	rows, err := v.DB.QueryContext(ctx, getAllVaults)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.GetAllVaults").
			Msg("failed to execute query for all vaults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var vaults []models.Vault

	for rows.Next() {
		var vault models.Vault

		scanErr := rows.Scan(
			&vault.VaultID,
			&vault.Name,
			&vault.Provider,
			&vault.Location,
			&vault.DailyNotes,
			&vault.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultRepository.GetAllVaults").
				Msg("failed to scan vault row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		vaults = append(vaults, vault)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vaultRepository.GetAllVaults").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vaults, nil
}
