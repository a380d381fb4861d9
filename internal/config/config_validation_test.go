// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a config that passes validation; tests break one
// field at a time.
func validTestConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Vaults = []Vault{
		{VaultID: "vault-1", Name: "personal", Provider: "file", Location: "/home/user/vault"},
	}
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, validTestConfig().validate())
}

func TestValidate_Storage(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{"empty DSN", ""},
		{"in-memory DSN", ":memory:"},
		{"shared cache in-memory DSN", "file::memory:?cache=shared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.Storage.DSN = tt.dsn
			assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
		})
	}
}

func TestValidate_Sync(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
	}{
		{"zero interval", func(c *StructuredConfig) { c.Sync.Interval = 0 }},
		{"zero workers", func(c *StructuredConfig) { c.Sync.Workers = 0 }},
		{"negative workers", func(c *StructuredConfig) { c.Sync.Workers = -1 }},
		{"zero max retries", func(c *StructuredConfig) { c.Sync.MaxRetries = 0 }},
		{"zero backoff base", func(c *StructuredConfig) { c.Sync.BackoffBase = 0 }},
		{"cap below base", func(c *StructuredConfig) { c.Sync.BackoffCap = c.Sync.BackoffBase / 2 }},
		{"zero reset delay", func(c *StructuredConfig) { c.Sync.ResetDelay = 0 }},
		{"zero cleanup interval", func(c *StructuredConfig) { c.Sync.CleanupInterval = 0 }},
		{"unknown strategy", func(c *StructuredConfig) { c.Sync.Strategy = "coin_flip" }},
		{"empty strategy", func(c *StructuredConfig) { c.Sync.Strategy = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
		})
	}
}

func TestValidate_Admin(t *testing.T) {
	cfg := validTestConfig()
	cfg.Admin.Address = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdminConfigs)

	cfg = validTestConfig()
	cfg.Admin.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdminConfigs)
}

func TestValidate_Provider(t *testing.T) {
	cfg := validTestConfig()
	cfg.Provider.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidProviderConfigs)
}

func TestValidate_Vaults(t *testing.T) {
	tests := []struct {
		name  string
		vault Vault
	}{
		{"missing id", Vault{Name: "personal", Provider: "file", Location: "/v"}},
		{"missing name", Vault{VaultID: "vault-1", Provider: "file", Location: "/v"}},
		{"missing location", Vault{VaultID: "vault-1", Name: "personal", Provider: "file"}},
		{"unknown provider", Vault{VaultID: "vault-1", Name: "personal", Provider: "ftp", Location: "/v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.Vaults = []Vault{tt.vault}
			assert.ErrorIs(t, cfg.validate(), ErrInvalidVaultConfigs)
		})
	}
}

func TestValidate_NoVaultsIsFine(t *testing.T) {
	cfg := validTestConfig()
	cfg.Vaults = nil
	assert.NoError(t, cfg.validate())
}

func TestValidate_HTTPVault(t *testing.T) {
	cfg := validTestConfig()
	cfg.Vaults = append(cfg.Vaults, Vault{
		VaultID: "vault-2", Name: "work", Provider: "http", Location: "https://vault.example.com",
	})
	assert.NoError(t, cfg.validate())
}
