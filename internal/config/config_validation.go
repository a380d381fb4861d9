// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// daemon invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel from errors.go
// naming the offending group otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.Interval <= 0 ||
		cfg.Sync.Workers <= 0 ||
		cfg.Sync.MaxRetries <= 0 ||
		cfg.Sync.BackoffBase <= 0 ||
		cfg.Sync.BackoffCap < cfg.Sync.BackoffBase ||
		cfg.Sync.ResetDelay <= 0 ||
		cfg.Sync.CleanupInterval <= 0 {
		return ErrInvalidSyncConfigs
	}
	if !models.ConflictStrategy(cfg.Sync.Strategy).IsValid() {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidSyncConfigs, cfg.Sync.Strategy)
	}

	if cfg.Admin.Address == "" || cfg.Admin.RequestTimeout <= 0 {
		return ErrInvalidAdminConfigs
	}

	if cfg.Provider.RequestTimeout <= 0 {
		return ErrInvalidProviderConfigs
	}

	for _, vault := range cfg.Vaults {
		if vault.VaultID == "" || vault.Name == "" || vault.Location == "" {
			return fmt.Errorf("%w: vault %q is missing required fields", ErrInvalidVaultConfigs, vault.Name)
		}
		if !models.ProviderType(vault.Provider).IsValid() {
			return fmt.Errorf("%w: vault %q has unknown provider %q", ErrInvalidVaultConfigs, vault.Name, vault.Provider)
		}
	}

	return nil
}
