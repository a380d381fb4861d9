package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// syncAdminService is the concrete implementation of SyncAdminService. It is
// a thin query-and-reset layer over the stores; it never performs sync work
// itself.
type syncAdminService struct {
	storages *store.Storages

	maxRetries int
	resetDelay time.Duration

	now func() time.Time
}

// NewSyncAdminService constructs a SyncAdminService over the given stores.
func NewSyncAdminService(storages *store.Storages, cfg config.Sync) SyncAdminService {
	return &syncAdminService{
		storages:   storages,
		maxRetries: cfg.MaxRetries,
		resetDelay: cfg.ResetDelay,
		now:        time.Now,
	}
}

// GetStatus implements SyncAdminService.
func (s *syncAdminService) GetStatus(ctx context.Context) ([]models.VaultSyncStatus, error) {
	vaults, err := s.storages.Vaults.GetAllVaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate vaults: %w", err)
	}

	statuses := make([]models.VaultSyncStatus, 0, len(vaults))
	for _, vault := range vaults {
		counts, err := s.storages.SyncStates.CountByStatus(ctx, vault.VaultID)
		if err != nil {
			return nil, fmt.Errorf("count states for vault %s: %w", vault.VaultID, err)
		}

		queued, err := s.storages.RetryQueue.GetItemsByVault(ctx, vault.VaultID)
		if err != nil {
			return nil, fmt.Errorf("get queued items for vault %s: %w", vault.VaultID, err)
		}

		statuses = append(statuses, models.VaultSyncStatus{
			VaultID:    vault.VaultID,
			Name:       vault.Name,
			Counts:     counts,
			QueueDepth: len(queued),
		})
	}

	return statuses, nil
}

// GetConflicts implements SyncAdminService.
func (s *syncAdminService) GetConflicts(ctx context.Context, vaultID string) ([]models.SyncState, error) {
	return s.storages.SyncStates.GetConflicts(ctx, vaultID)
}

// GetFailedItems implements SyncAdminService.
func (s *syncAdminService) GetFailedItems(ctx context.Context) ([]models.RetryQueueItem, error) {
	return s.storages.RetryQueue.GetFailedItems(ctx, s.maxRetries)
}

// ResetRetry implements SyncAdminService. The short fixed delay makes the
// note promptly eligible again without letting resets busy-loop a sweep.
func (s *syncAdminService) ResetRetry(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	nextRetryAt := s.now().Add(s.resetDelay)
	if err := s.storages.RetryQueue.ResetRetryCount(ctx, noteID, nextRetryAt); err != nil {
		return err
	}

	log.Info().
		Str("func", "syncAdminService.ResetRetry").
		Str("note_id", noteID).
		Time("next_retry_at", nextRetryAt).
		Msg("retry counter reset by operator")

	return nil
}

// ResetAllFailed implements SyncAdminService.
func (s *syncAdminService) ResetAllFailed(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	nextRetryAt := s.now().Add(s.resetDelay)
	reset, err := s.storages.RetryQueue.ResetAllFailedItems(ctx, s.maxRetries, nextRetryAt)
	if err != nil {
		return 0, err
	}

	log.Info().
		Str("func", "syncAdminService.ResetAllFailed").
		Int64("reset", reset).
		Time("next_retry_at", nextRetryAt).
		Msg("all failed items reset by operator")

	return reset, nil
}
