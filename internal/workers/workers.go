package workers

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers collects the sync engine's background jobs: the periodic sweep
// and the orphaned-state cleanup.
func NewWorkers(services *service.Services) *Workers {
	return &Workers{
		workers: []Worker{
			services.SweepJob,
			services.CleanupJob,
		},
	}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops workers in reverse registration order and waits for each.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
