package scheduler

import (
	"context"
	"log/slog"
	"time"

	"portfolio_sync/internal/service"
)

// Scheduler re-runs the sync on a fixed interval so fallback files stay fresh
// even when nothing hits the HTTP endpoints. A run that is already recent
// enough is skipped.
type Scheduler struct {
	syncer     service.Syncer
	status     service.StatusStore
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func New(
	syncer service.Syncer,
	status service.StatusStore,
	interval time.Duration,
	runTimeout time.Duration,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		status:     status,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
		now:        time.Now,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	if last, err := s.status.Read(); err == nil && last != nil &&
		last.Success && last.Age(s.now()) < s.interval {
		s.logger.Debug("skipping sync, last run still fresh", "age", last.Age(s.now()))
		return
	}

	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := s.syncer.Sync(syncCtx); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
