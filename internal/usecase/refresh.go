package usecase

import (
	"context"
	"log/slog"
	"time"

	"TechPulse/internal/ports"
)

// Refresher wires the cron driver with the fetch pipeline.
type Refresher struct {
	driver   ports.Scheduler
	pipeline *Pipeline
	logger   *slog.Logger
}

// NewRefresher returns a helper to start/stop the recurring refresh.
func NewRefresher(driver ports.Scheduler, pipeline *Pipeline, logger *slog.Logger) *Refresher {
	return &Refresher{driver: driver, pipeline: pipeline, logger: logger}
}

// Start registers the refresh job with the provided scheduler. A failed
// run is logged and the schedule keeps going; the next tick retries.
func (r *Refresher) Start(ctx context.Context) error {
	if r.driver == nil || r.pipeline == nil {
		return nil
	}

	job := func(trigger time.Time) {
		if err := r.pipeline.Refresh(ctx, trigger); err != nil && r.logger != nil {
			r.logger.Error("refresh run failed", "error", err, "trigger", trigger)
		}
	}

	return r.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (r *Refresher) Stop(ctx context.Context) error {
	if r.driver == nil {
		return nil
	}

	return r.driver.Stop(ctx)
}
