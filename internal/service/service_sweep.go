package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// sweepService is the concrete implementation of SweepService.
//
// One sweep walks every vault and hands each eligible note to the
// coordinator exactly once. Within a vault, candidates are gathered in three
// passes whose orderings come straight from the stores:
//
//	(a) retry queue items due now, earliest due first;
//	(b) locally unsynced notes that are not already queued for retry;
//	(c) pending-upload sync states, oldest local edit first.
//
// Attempts run on a bounded worker pool; a per-note keyed lock guarantees at
// most one in-flight attempt per note even if a future caller overlaps
// sweeps.
type sweepService struct {
	storages    *store.Storages
	coordinator SyncCoordinator
	locks       *keyedMutex

	workers    int
	maxRetries int

	now func() time.Time
}

// NewSweepService constructs a SweepService over the given stores and
// coordinator, with concurrency and retry limits from the sync configuration.
func NewSweepService(storages *store.Storages, coordinator SyncCoordinator, cfg config.Sync) SweepService {
	return &sweepService{
		storages:    storages,
		coordinator: coordinator,
		locks:       newKeyedMutex(),
		workers:     cfg.Workers,
		maxRetries:  cfg.MaxRetries,
		now:         time.Now,
	}
}

// RunSweep implements SweepService.
//
// Per-note failures are counted and logged, never raised: one broken note
// must not stop the rest of the pass. A vault whose candidates cannot be
// enumerated is counted as failed and skipped. Only failure to list the
// vaults themselves propagates, signalling the scheduler to retry the whole
// sweep later. Cancellation is cooperative: checked before each note, so a
// cancelled sweep leaves completed notes persisted and unstarted notes
// untouched.
func (s *sweepService) RunSweep(ctx context.Context) (models.SweepSummary, error) {
	log := logger.FromContext(ctx)
	summary := models.SweepSummary{StartedAt: s.now()}

	vaults, err := s.storages.Vaults.GetAllVaults(ctx)
	if err != nil {
		return summary, fmt.Errorf("enumerate vaults: %w", err)
	}

	attempted := make(map[string]struct{})

	for _, vault := range vaults {
		if ctx.Err() != nil {
			summary.Cancelled = true
			break
		}

		candidates, err := s.gatherCandidates(ctx, vault.VaultID, attempted)
		if err != nil {
			log.Error().
				Str("func", "sweepService.RunSweep").
				Str("vault_id", vault.VaultID).
				Err(err).
				Msg("skipping vault, candidate enumeration failed")
			summary.VaultsFailed++
			continue
		}
		summary.VaultsScanned++

		s.syncCandidates(ctx, candidates, &summary)
		if ctx.Err() != nil {
			summary.Cancelled = true
			break
		}
	}

	summary.FinishedAt = s.now()

	log.Info().
		Str("func", "sweepService.RunSweep").
		Int("vaults_scanned", summary.VaultsScanned).
		Int("vaults_failed", summary.VaultsFailed).
		Int("notes_attempted", summary.NotesAttempted).
		Int("synced", summary.Synced).
		Int("conflicts", summary.Conflicts).
		Int("failed", summary.Failed).
		Bool("cancelled", summary.Cancelled).
		Dur("duration", summary.FinishedAt.Sub(summary.StartedAt)).
		Msg("sweep finished")

	return summary, nil
}

// gatherCandidates collects the vault's eligible note IDs in submission
// order, deduplicated against everything already attempted this sweep: a
// note receives at most one coordinator call per pass.
func (s *sweepService) gatherCandidates(ctx context.Context, vaultID string, attempted map[string]struct{}) ([]string, error) {
	candidates := make([]string, 0, 50)

	add := func(noteID string) {
		if _, seen := attempted[noteID]; seen {
			return
		}
		attempted[noteID] = struct{}{}
		candidates = append(candidates, noteID)
	}

	// (a) Due retries. The store already excludes items at or beyond the
	// failure cutoff, so exhausted notes never reach the pool.
	ready, err := s.storages.RetryQueue.GetItemsReadyForRetry(ctx, s.now(), s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("get retry-ready items: %w", err)
	}
	for _, item := range ready {
		if item.VaultID != vaultID {
			continue
		}
		add(item.NoteID)
	}

	// (b) Unsynced notes not already in the retry queue: a queued note is
	// retried on the queue's schedule, not eagerly on every sweep.
	queued, err := s.storages.RetryQueue.GetItemsByVault(ctx, vaultID)
	if err != nil {
		return nil, fmt.Errorf("get queued items: %w", err)
	}
	inQueue := make(map[string]struct{}, len(queued))
	for _, item := range queued {
		inQueue[item.NoteID] = struct{}{}
	}

	unsynced, err := s.storages.Notes.GetUnsyncedNotes(ctx, vaultID)
	if err != nil {
		return nil, fmt.Errorf("get unsynced notes: %w", err)
	}
	for _, note := range unsynced {
		if _, queued := inQueue[note.NoteID]; queued {
			continue
		}
		add(note.NoteID)
	}

	// (c) Pending uploads, bounded by the retry cutoff.
	pending, err := s.storages.SyncStates.GetPendingUploads(ctx, vaultID, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("get pending uploads: %w", err)
	}
	for _, state := range pending {
		if _, queued := inQueue[state.NoteID]; queued {
			continue
		}
		add(state.NoteID)
	}

	return candidates, nil
}

// syncCandidates feeds the notes to the coordinator on a bounded pool,
// serializing per note through the keyed lock, and accounts each outcome.
func (s *sweepService) syncCandidates(ctx context.Context, candidates []string, summary *models.SweepSummary) {
	log := logger.FromContext(ctx)

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(s.workers)

	for _, noteID := range candidates {
		// Cooperative checkpoint: stop submitting once cancelled, let
		// in-flight attempts finish.
		if ctx.Err() != nil {
			break
		}

		id := noteID
		mu.Lock()
		summary.NotesAttempted++
		mu.Unlock()

		g.Go(func() error {
			s.locks.Lock(id)
			defer s.locks.Unlock(id)

			outcome, err := s.coordinator.SyncNote(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				summary.Failed++
				log.Error().
					Str("func", "sweepService.syncCandidates").
					Str("note_id", id).
					Err(err).
					Msg("sync attempt hit a storage failure")
			case outcome.Result == models.SyncSuccess:
				summary.Synced++
			case outcome.Result == models.SyncConflict:
				summary.Conflicts++
			default:
				summary.Failed++
			}
			return nil
		})
	}

	// Workers never return errors; Wait only fences the pool.
	_ = g.Wait()
}
