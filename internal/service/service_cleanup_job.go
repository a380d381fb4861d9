package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type cleanupJob struct {
	states   store.SyncStateStore
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCleanupJob creates a cleanupJob that periodically purges synced state
// rows whose note no longer exists locally. The job is idle until Start is
// called.
func NewCleanupJob(states store.SyncStateStore, interval time.Duration, logger *logger.Logger) Job {
	if interval <= 0 {
		interval = time.Hour
	}
	return &cleanupJob{states: states, interval: interval, logger: logger}
}

// Start implements Job.
func (j *cleanupJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		j.logger.Info().Dur("interval", j.interval).Msg("cleanup job started")

		for {
			select {
			case <-jobCtx.Done():
				j.logger.Info().Msg("cleanup job stopped")
				return
			case <-ticker.C:
				log := j.logger.GetChildLogger()
				runCtx := log.WithContext(jobCtx)

				removed, err := j.states.DeleteSyncedOrphans(runCtx)
				if err != nil {
					log.Err(err).
						Str("func", "cleanupJob.Start").
						Msg("orphan cleanup failed")
					continue
				}
				if removed > 0 {
					log.Info().
						Str("func", "cleanupJob.Start").
						Int64("removed", removed).
						Msg("purged orphaned synced states")
				}
			}
		}
	}()
}

// Stop implements Job.
func (j *cleanupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.wg.Wait()
	}
}
