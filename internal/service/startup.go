package service

import (
	"context"
	"log/slog"
	"time"
)

// StartupDecision is the outcome of one "should we resync" check.
type StartupDecision struct {
	DBAvailable   bool
	SyncTriggered bool
	Skipped       bool
	LastSyncTime  *time.Time
	Message       string
}

// StartupChecker decides whether a fresh sync is warranted: the data source
// must be reachable, and the last run must be missing, failed, or older than
// the resync threshold. A warranted sync runs in a detached goroutine; its
// outcome is only logged, never returned to the caller.
type StartupChecker struct {
	source     ContentSource
	status     StatusStore
	syncer     Syncer
	threshold  time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func NewStartupChecker(
	source ContentSource,
	status StatusStore,
	syncer Syncer,
	threshold time.Duration,
	runTimeout time.Duration,
	logger *slog.Logger,
) *StartupChecker {
	return &StartupChecker{
		source:     source,
		status:     status,
		syncer:     syncer,
		threshold:  threshold,
		runTimeout: runTimeout,
		logger:     logger.With("component", "startup"),
		now:        time.Now,
	}
}

func (c *StartupChecker) Check(ctx context.Context) StartupDecision {
	if err := c.source.Ping(ctx); err != nil {
		c.logger.Warn("startup check skipped, data source unreachable", "error", err)
		return StartupDecision{
			DBAvailable: false,
			Skipped:     true,
			Message:     "sync skipped, no data source",
		}
	}

	last, err := c.status.Read()
	if err != nil {
		// An unreadable status file counts as "never synced".
		c.logger.Warn("failed to read sync status", "error", err)
		last = nil
	}

	if last != nil && last.Success && last.Age(c.now()) <= c.threshold {
		ts := last.Timestamp
		return StartupDecision{
			DBAvailable:  true,
			Skipped:      true,
			LastSyncTime: &ts,
			Message:      "recent sync found",
		}
	}

	c.trigger()

	decision := StartupDecision{
		DBAvailable:   true,
		SyncTriggered: true,
		Message:       "sync initiated",
	}
	if last != nil {
		ts := last.Timestamp
		decision.LastSyncTime = &ts
	}
	return decision
}

// trigger spawns the detached run. It deliberately does not inherit the
// caller's context: the triggering HTTP request returns immediately and must
// not cancel the background sync.
func (c *StartupChecker) trigger() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.runTimeout)
		defer cancel()

		if _, err := c.syncer.Sync(ctx); err != nil {
			c.logger.Error("background sync failed", "error", err)
		}
	}()
}
