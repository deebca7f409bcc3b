// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/service"
)

// SettingsReloader rebuilds the option store on a fixed interval so edits
// to the option file, the environment or uiconfig reach a running server.
type SettingsReloader struct {
	settings service.SettingsService
	interval time.Duration

	wg sync.WaitGroup

	logger *logger.Logger
}

func NewSettingsReloader(settings service.SettingsService, interval time.Duration, logger *logger.Logger) *SettingsReloader {
	return &SettingsReloader{
		settings: settings,
		interval: interval,
		logger:   logger,
	}
}

func (r *SettingsReloader) Run(ctx context.Context) {
	r.logger.Info().Dur("interval", r.interval).Msg("starting settings reloader")

	ticker := time.NewTicker(r.interval)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer ticker.Stop()
		r.loop(ctx, ticker.C)
	}()
}

func (r *SettingsReloader) Wait() {
	r.wg.Wait()
}

// loop reloads once per tick. A failed reload keeps the previous options.
func (r *SettingsReloader) loop(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("settings reloader stopped")
			return
		case <-ticks:
			if err := r.settings.Reload(ctx); err != nil {
				r.logger.Err(err).Str("func", "*SettingsReloader.loop").Msg("error reloading settings, keeping previous options")
				continue
			}
			r.logger.Debug().Msg("settings reloaded")
		}
	}
}
