// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
)

// HealthWorker pings the database on a fixed interval and publishes the
// result to its reporters. The first check runs immediately.
type HealthWorker struct {
	pinger    Pinger
	reporters []HealthReporter
	interval  time.Duration
	timeout   time.Duration

	logger *logger.Logger
}

func NewHealthWorker(pinger Pinger, cfg config.Workers, logger *logger.Logger, reporters ...HealthReporter) *HealthWorker {
	interval := cfg.HealthInterval
	if interval <= 0 {
		interval = config.DefaultHealthInterval
	}

	return &HealthWorker{
		pinger:    pinger,
		reporters: reporters,
		interval:  interval,
		timeout:   min(interval, 5*time.Second),
		logger:    logger,
	}
}

func (w *HealthWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("health worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	serving := w.check(ctx)
	w.publish(serving)

	for {
		select {
		case <-ctx.Done():
			w.publish(false)
			w.logger.Info().Msg("health worker stopped")
			return
		case <-ticker.C:
			next := w.check(ctx)
			if next != serving {
				w.logger.Info().Bool("serving", next).Msg("database health changed")
			}
			serving = next
			w.publish(serving)
		}
	}
}

func (w *HealthWorker) check(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.pinger.Ping(pingCtx); err != nil {
		w.logger.Warn().Err(err).Msg("database ping failed")
		return false
	}
	return true
}

func (w *HealthWorker) publish(serving bool) {
	for _, r := range w.reporters {
		r.SetServing(serving)
	}
}
