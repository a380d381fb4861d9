package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type sweepJob struct {
	sweep    SweepService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSweepJob creates a sweepJob that calls sweep.RunSweep on a ticker. The
// job is idle until Start is called.
func NewSweepJob(sweep SweepService, interval time.Duration, logger *logger.Logger) Job {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &sweepJob{sweep: sweep, interval: interval, logger: logger}
}

// Start implements Job. It stops any previously running job, then launches a
// background goroutine running one sweep per tick. A tick that fires while
// the previous sweep is still running waits for it: sweeps never overlap.
func (j *sweepJob) Start(ctx context.Context) {
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

		j.logger.Info().Dur("interval", j.interval).Msg("sweep job started")

		for {
			select {
			case <-jobCtx.Done():
				j.logger.Info().Msg("sweep job stopped")
				return
			case <-ticker.C:
				log := j.logger.GetChildLogger()
				runCtx := log.WithContext(jobCtx)

				if _, err := j.sweep.RunSweep(runCtx); err != nil {
					log.Err(err).
						Str("func", "sweepJob.Start").
						Msg("sweep failed before any vault was read")
				}
			}
		}
	}()
}

// Stop implements Job.
func (j *sweepJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.wg.Wait()
	}
}
