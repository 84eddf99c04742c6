package workers

import (
	"github.com/mpetrenko/authd/internal/config"
	"github.com/mpetrenko/authd/internal/logger"
	"github.com/mpetrenko/authd/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the service. Currently that
// is the janitor sweeping the revocation and challenge stores.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newJanitor(storages, cfg, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker that supports stopping and waits for it to finish.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if stopper, ok := worker.(interface{ Stop() }); ok {
			stopper.Stop()
		}
	}
}
