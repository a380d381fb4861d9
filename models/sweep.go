// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SweepSummary aggregates what one sweep pass did across all vaults. It is
// logged after every pass and returned by the admin API's manual sweep
// trigger.
type SweepSummary struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// VaultsScanned counts vaults whose candidates were enumerated;
	// VaultsFailed counts vaults skipped because enumeration failed.
	VaultsScanned int `json:"vaults_scanned"`
	VaultsFailed  int `json:"vaults_failed"`

	// NotesAttempted counts distinct notes given to the coordinator. Each
	// note is attempted at most once per sweep.
	NotesAttempted int `json:"notes_attempted"`

	Synced    int `json:"synced"`
	Conflicts int `json:"conflicts"`
	Failed    int `json:"failed"`

	// Cancelled is set when the sweep stopped early because its context was
	// cancelled. Completed notes stay persisted; unstarted notes are left
	// untouched.
	Cancelled bool `json:"cancelled"`
}
