// Package poller keeps fallback data fresh from the consumer side. It mirrors
// the behavior of the website's refresh hook: check the sync status on a
// capped tick, trigger a sync once the last run is stale, back off
// exponentially on failures, and wake early when asked.
package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"portfolio_sync/internal/client"
	"portfolio_sync/internal/domain"
)

// API is the server surface the poller drives.
type API interface {
	Status(ctx context.Context) (*client.Status, error)
	Trigger(ctx context.Context) (*domain.RunSummary, error)
}

type Config struct {
	Interval       time.Duration
	MaxTick        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
}

// State is a snapshot of the poller's view of the world.
type State struct {
	Loading    bool
	LastSync   *time.Time
	Stats      map[string]int
	Err        error
	RetryCount int
}

type Poller struct {
	api            API
	interval       time.Duration
	maxTick        time.Duration
	maxRetries     int
	initialBackoff time.Duration
	logger         *slog.Logger
	now            func() time.Time

	wake  chan struct{}
	force chan struct{}

	mu    sync.Mutex
	state State
}

func New(api API, cfg Config, logger *slog.Logger) *Poller {
	return &Poller{
		api:            api,
		interval:       cfg.Interval,
		maxTick:        cfg.MaxTick,
		maxRetries:     cfg.MaxRetries,
		initialBackoff: cfg.InitialBackoff,
		logger:         logger.With("component", "poller"),
		now:            time.Now,
		wake:           make(chan struct{}, 1),
		force:          make(chan struct{}, 1),
	}
}

// Run checks once immediately, then on every tick until the context ends.
// The tick is capped so a long interval still gets frequent due-checks.
func (p *Poller) Run(ctx context.Context) error {
	p.check(ctx, false)

	tick := p.interval
	if p.maxTick > 0 && tick > p.maxTick {
		tick = p.maxTick
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.check(ctx, false)
		case <-p.wake:
			p.check(ctx, false)
		case <-p.force:
			p.check(ctx, true)
		}
	}
}

// Wake requests an immediate due-check, the way a tab becoming visible does.
// Safe to call from any goroutine; coalesces when one is already pending.
func (p *Poller) Wake() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// ForceSync requests a sync regardless of how fresh the last run is.
func (p *Poller) ForceSync() {
	select {
	case p.force <- struct{}{}:
	default:
	}
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) check(ctx context.Context, force bool) {
	status, err := p.api.Status(ctx)
	if err != nil {
		p.logger.Warn("status check failed", "error", err)
		p.setErr(err)
		return
	}

	if !force && !p.due(status.LastSync) {
		p.setSynced(status.LastSync)
		return
	}

	p.sync(ctx)
}

// due reports whether a new sync is warranted: never synced, last run failed,
// or the last success is older than the poll interval.
func (p *Poller) due(last *domain.RunSummary) bool {
	if last == nil || !last.Success {
		return true
	}
	return last.Age(p.now()) > p.interval
}

// sync triggers a run, retrying transient failures with doubling backoff. A
// 401 is terminal: the secret is wrong and retrying cannot fix it.
func (p *Poller) sync(ctx context.Context) {
	p.setLoading(true)
	defer p.setLoading(false)

	backoff := p.initialBackoff
	for attempt := 0; ; attempt++ {
		summary, err := p.api.Trigger(ctx)
		if err == nil {
			p.setSynced(summary)
			p.logger.Info("sync triggered",
				"success", summary.Success,
				"errors", len(summary.Errors),
			)
			return
		}

		if errors.Is(err, client.ErrUnauthorized) {
			p.logger.Error("sync trigger rejected", "error", err)
			p.setErr(err)
			return
		}

		// The initial attempt does not count against the retry budget:
		// maxRetries=3 means up to three delayed retries after it.
		if attempt >= p.maxRetries {
			p.setRetry(attempt, err)
			p.logger.Error("sync failed after retries", "retries", attempt, "error", err)
			return
		}

		p.setRetry(attempt+1, err)
		p.logger.Warn("sync trigger failed, retrying",
			"retry", attempt+1,
			"backoff", backoff,
			"error", err,
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		backoff *= 2
	}
}

func (p *Poller) setLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Loading = loading
}

func (p *Poller) setSynced(summary *domain.RunSummary) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if summary != nil {
		ts := summary.Timestamp
		p.state.LastSync = &ts
		p.state.Stats = summary.Stats
	}
	p.state.Err = nil
	p.state.RetryCount = 0
}

func (p *Poller) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Err = err
}

func (p *Poller) setRetry(count int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.RetryCount = count
	p.state.Err = err
}
