package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler/http"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/server"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("syncd").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewDaemonLogger("syncd", cfg.App.LogPath)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err := registerVaults(storages, cfg.Vaults, log); err != nil {
		log.Fatal().Err(err).Msg("error registering vaults")
	}

	providers := adapter.NewRegistry()
	providers.Register(models.ProviderFile, adapter.NewFileProvider(log))
	providers.Register(models.ProviderHTTP, adapter.NewHTTPProvider(cfg.Provider, log))

	services, err := service.NewServices(storages, providers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers := http.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Admin, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())

	jobs := workers.NewWorkers(services)
	jobs.Run(ctx)

	// blocks until SIGTERM/SIGINT, then shuts the HTTP server down
	srv.RunServer()

	cancel()
	jobs.Stop()

	log.Info().Msg("sync daemon stopped")
}

// registerVaults upserts every configured vault so sweeps see it. Vaults are
// config-declared; removing one from the config does not delete its rows.
func registerVaults(storages *store.Storages, vaults []config.Vault, log *logger.Logger) error {
	ctx := context.Background()

	for _, v := range vaults {
		vault := models.Vault{
			VaultID:    v.VaultID,
			Name:       v.Name,
			Provider:   models.ProviderType(v.Provider),
			Location:   v.Location,
			DailyNotes: v.DailyNotes,
		}

		if !vault.Provider.IsValid() {
			return fmt.Errorf("vault %q: unknown provider %q", v.VaultID, v.Provider)
		}

		if err := storages.Vaults.UpsertVault(ctx, vault); err != nil {
			return fmt.Errorf("vault %q: %w", v.VaultID, err)
		}

		log.Info().
			Str("vault_id", vault.VaultID).
			Str("provider", string(vault.Provider)).
			Msg("vault registered")
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
