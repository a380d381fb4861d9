package models

// VaultStatusResponse is the admin API payload listing per-vault sync health.
type VaultStatusResponse struct {
	Vaults []VaultSyncStatus `json:"vaults"`
	Length int               `json:"length"`
}

// ConflictListResponse is the admin API payload listing unresolved conflicts.
type ConflictListResponse struct {
	Conflicts []SyncState `json:"conflicts"`
	Length    int         `json:"length"`
}

// FailedItemsResponse is the admin API payload listing retry queue items that
// exhausted their attempts.
type FailedItemsResponse struct {
	Items  []RetryQueueItem `json:"items"`
	Length int              `json:"length"`
}

// ResetResponse reports how many retry queue items an operator reset re-armed.
type ResetResponse struct {
	Reset int64 `json:"reset"`
}
