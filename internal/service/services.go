package service

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Services groups the sync engine's services into a single value wired once
// at startup and shared by the admin API and the background workers.
type Services struct {
	Resolver    ConflictResolver
	Coordinator SyncCoordinator
	Sweep       SweepService
	Admin       SyncAdminService
	AppInfo     AppInfoService

	SweepJob   Job
	CleanupJob Job
}

// NewServices wires the full engine: resolver, coordinator, sweep, admin
// surface and background jobs.
func NewServices(storages *store.Storages, providers *adapter.Registry, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating services...")

	resolver, err := NewConflictResolver(models.ConflictStrategy(cfg.Sync.Strategy))
	if err != nil {
		return nil, fmt.Errorf("create conflict resolver: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	coordinator := NewSyncCoordinator(storages, providers, resolver, validators.NewNoteValidator(), cfg.Sync)
	sweep := NewSweepService(storages, coordinator, cfg.Sync)

	return &Services{
		Resolver:    resolver,
		Coordinator: coordinator,
		Sweep:       sweep,
		Admin:       NewSyncAdminService(storages, cfg.Sync),
		AppInfo:     appInfo,
		SweepJob:    NewSweepJob(sweep, cfg.Sync.Interval, logger),
		CleanupJob:  NewCleanupJob(storages.SyncStates, cfg.Sync.CleanupInterval, logger),
	}, nil
}
