package models

import "time"

// ProviderType selects the vault I/O implementation used for a vault.
type ProviderType string

const (
	// ProviderFile writes Markdown files into a local folder.
	ProviderFile ProviderType = "file"

	// ProviderHTTP talks to a remote vault server over REST.
	ProviderHTTP ProviderType = "http"
)

// IsValid reports whether p is a known provider type.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderFile, ProviderHTTP:
		return true
	}
	return false
}

// VaultSyncStatus is the per-vault observability report served by the admin
// API: how many notes sit in each sync status plus the retry queue depth.
type VaultSyncStatus struct {
	VaultID    string       `json:"vault_id"`
	Name       string       `json:"name"`
	Counts     StatusCounts `json:"counts"`
	QueueDepth int          `json:"queue_depth"`
}

// Vault is a user-designated durable home for notes.
//
// Location is interpreted by the vault's provider: a filesystem root for
// ProviderFile, a base URL for ProviderHTTP. DailyNotes switches the on-disk
// layout to the daily-notes convention of external note-taking tools.
type Vault struct {
	VaultID    string
	Name       string
	Provider   ProviderType
	Location   string
	DailyNotes bool
	CreatedAt  time.Time
}
