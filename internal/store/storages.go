package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// SyncStates is the per-note sync record store mutated by the coordinator.
	SyncStates SyncStateStore

	// RetryQueue is the durable retry schedule consulted by the sweep.
	RetryQueue RetryQueueStore

	// Notes is the local note storage the engine reads from and writes back to.
	Notes NoteRepository

	// Vaults is the registry of configured vaults.
	Vaults VaultRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		SyncStates: NewSyncStateRepository(db, logger),
		RetryQueue: NewRetryQueueRepository(db, logger),
		Notes:      NewNoteRepository(db, logger),
		Vaults:     NewVaultRepository(db, logger),
	}, nil
}
