// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the jobs enabled by cfg. A zero reload interval
// disables the settings reloader.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ReloadInterval > 0 {
		w.workers = append(w.workers, NewSettingsReloader(services.SettingsService, cfg.ReloadInterval, logger))
	} else {
		logger.Info().Msg("settings reloader disabled")
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Wait blocks until every worker has stopped.
func (w *Workers) Wait() {
	for _, worker := range w.workers {
		worker.Wait()
	}
}
