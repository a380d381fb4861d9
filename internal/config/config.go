// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper sync daemon. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the daemon log file path
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Provider holds settings for outbound vault provider calls (timeouts,
	// remote vault server credentials).
	Provider Provider `envPrefix:"PROVIDER_"`

	// Sync holds the sync engine knobs: sweep scheduling, worker pool size,
	// retry and backoff policy, conflict resolution strategy.
	Sync Sync `envPrefix:"SYNC_"`

	// Admin holds network settings for the local admin API server.
	Admin Admin `envPrefix:"ADMIN_"`

	// Vaults lists the vaults to register at startup. Vault definitions are
	// structured, so they can only be supplied through the JSON config file;
	// vaults already present in the database are updated in place.
	Vaults []Vault

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogPath is the file the daemon appends its log to. Empty means log to
	// stdout only.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds connection settings for the local SQLite database shared with
// the capture app.
type Storage struct {
	// DSN is the SQLite database file path
	// (e.g. "/home/user/.local/share/note-keeper/notes.db").
	// In-memory databases are rejected at validation: sync state must survive
	// daemon restarts.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Provider holds settings shared by the vault provider implementations.
type Provider struct {
	// RequestTimeout is the maximum duration allowed for a single outbound
	// provider request (e.g. "30s", "1m").
	// Env: PROVIDER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Login is the account name used to authenticate against a remote vault
	// server. Only required when an http vault is configured.
	// Env: PROVIDER_LOGIN
	Login string `env:"LOGIN"`

	// Password is the account password used to authenticate against a remote
	// vault server. Must be kept confidential.
	// Env: PROVIDER_PASSWORD
	Password string `env:"PASSWORD"`
}

// Sync holds the sync engine knobs.
type Sync struct {
	// Interval is how often the periodic sweep runs (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// Workers bounds how many notes one sweep syncs concurrently.
	// Env: SYNC_WORKERS
	Workers int `env:"WORKERS"`

	// MaxRetries is the failed-attempt cutoff: a retry queue item that
	// reaches it is excluded from sweeps until an operator resets it.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// BackoffBase is the delay after the first failure; each further failure
	// doubles it (e.g. "30s" gives 30s, 60s, 120s, ...).
	// Env: SYNC_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffCap is the ceiling the doubling never exceeds (e.g. "1h").
	// Env: SYNC_BACKOFF_CAP
	BackoffCap time.Duration `env:"BACKOFF_CAP"`

	// ResetDelay is how soon after a manual retry reset the note becomes
	// eligible again (e.g. "60s").
	// Env: SYNC_RESET_DELAY
	ResetDelay time.Duration `env:"RESET_DELAY"`

	// Strategy names the conflict resolution strategy applied when both
	// sides changed: "last_write_wins", "prefer_local" or "prefer_remote".
	// Env: SYNC_STRATEGY
	Strategy string `env:"STRATEGY"`

	// CleanupInterval is how often synced orphan states (rows whose note was
	// deleted) are purged (e.g. "1h").
	// Env: SYNC_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// Admin holds network settings for the local admin API.
type Admin struct {
	// Address is the TCP address the admin HTTP server listens on, in
	// "host:port" format. Defaults to a localhost port; exposing the admin
	// API beyond localhost is the operator's decision.
	// Env: ADMIN_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// admin request before the server cancels it (e.g. "30s").
	// Env: ADMIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Vault describes one vault to register at startup. Credentials for http
// vaults come from [Provider], not from the vault entry.
type Vault struct {
	// VaultID is the stable identifier of the vault.
	VaultID string `json:"vault_id"`

	// Name is the human-readable unique vault name.
	Name string `json:"name"`

	// Provider selects the vault I/O implementation: "file" or "http".
	Provider string `json:"provider"`

	// Location is interpreted by the provider: a directory for "file", a
	// base URL for "http".
	Location string `json:"location"`

	// DailyNotes switches the vault to the daily-notes folder convention.
	DailyNotes bool `json:"daily_notes"`
}

// defaultConfig returns the built-in defaults merged in with the lowest
// precedence, so every knob is usable out of the box.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "N/A",
		},
		Storage: Storage{
			DSN: "notes.db",
		},
		Provider: Provider{
			RequestTimeout: 30 * time.Second,
		},
		Sync: Sync{
			Interval:        5 * time.Minute,
			Workers:         4,
			MaxRetries:      5,
			BackoffBase:     30 * time.Second,
			BackoffCap:      time.Hour,
			ResetDelay:      60 * time.Second,
			Strategy:        "last_write_wins",
			CleanupInterval: time.Hour,
		},
		Admin: Admin{
			Address:        "localhost:8686",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the daemon configuration
// from all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
