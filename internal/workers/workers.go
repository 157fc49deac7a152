package workers

import (
	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers wires all background workers from the configuration. Workers
// whose configuration disables them are not created.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := &Workers{}

	if cfg.CleanupInterval > 0 {
		workers.workers = append(workers.workers, newTokenJanitor(storages.TokenStore, cfg.CleanupInterval, logger))
	}

	return workers
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
