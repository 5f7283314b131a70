package counter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

// Refresher is what the scheduler triggers on every tick.
type Refresher interface {
	RefreshAll(ctx context.Context)
}

// Scheduler refreshes the badges periodically for long-running sessions.
type Scheduler struct {
	cron *cron.Cron
	r    Refresher
	ctx  context.Context
	log  *slog.Logger
}

// NewScheduler creates a Scheduler that calls r.RefreshAll every interval.
// ctx bounds the reads started by each tick.
func NewScheduler(
	ctx context.Context,
	r Refresher,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", interval)
	}

	c := cron.New()
	s := &Scheduler{
		cron: c,
		r:    r,
		ctx:  ctx,
		log:  logger.Component(log, "scheduler"),
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runRefresh); err != nil {
		return nil, fmt.Errorf("scheduling badge refresh: %w", err)
	}
	return s, nil
}

// Start begins running scheduled refreshes.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done once running jobs
// have finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRefresh() {
	if s.ctx.Err() != nil {
		return
	}
	s.log.Debug("scheduled badge refresh")
	s.r.RefreshAll(s.ctx)
}
