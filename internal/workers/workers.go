package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/jncep-web/internal/logger"
)

// Workers runs a set of background workers and stops them as a group.
// Each worker gets its own goroutine; Stop cancels their shared context and
// blocks until every Run has returned.
type Workers struct {
	workers []Worker
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{
		workers: workers,
		logger:  logger,
	}
}

// Run starts every worker in its own goroutine and returns immediately.
// The workers share a context derived from ctx, so cancelling ctx stops
// them just like Stop does.
func (w *Workers) Run(ctx context.Context) {
	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	w.logger.Info().Int("count", len(w.workers)).Msg("starting background workers")

	for _, worker := range w.workers {
		worker := worker
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(runCtx)
		}()
	}
}

// Stop cancels the shared context and waits for all workers to return.
// Safe to call when nothing is running (no-op in that case).
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()

	w.logger.Info().Msg("background workers stopped")
}
