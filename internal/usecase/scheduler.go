package usecase

import (
	"context"
	"time"

	"patiodash/internal/ports"
)

// Scheduler wires the interval driver with the refresh use case.
type Scheduler struct {
	driver    ports.Scheduler
	refresher *Refresher
}

// NewScheduler returns a helper to start/stop the recurring refresh.
func NewScheduler(driver ports.Scheduler, refresher *Refresher) *Scheduler {
	return &Scheduler{driver: driver, refresher: refresher}
}

// Start registers the refresh job with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.refresher == nil {
		return nil
	}

	job := func(trigger time.Time) {
		s.refresher.Refresh(ctx, trigger)
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
