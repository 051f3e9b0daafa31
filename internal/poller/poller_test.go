package poller

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_sync/internal/client"
	"portfolio_sync/internal/domain"
)

type stubAPI struct {
	statusFn  func(ctx context.Context) (*client.Status, error)
	triggerFn func(ctx context.Context) (*domain.RunSummary, error)

	statusCalls  atomic.Int32
	triggerCalls atomic.Int32
}

func (s *stubAPI) Status(ctx context.Context) (*client.Status, error) {
	s.statusCalls.Add(1)
	return s.statusFn(ctx)
}

func (s *stubAPI) Trigger(ctx context.Context) (*domain.RunSummary, error) {
	s.triggerCalls.Add(1)
	return s.triggerFn(ctx)
}

func newTestPoller(api API) *Poller {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(api, Config{
		Interval:       30 * time.Minute,
		MaxTick:        5 * time.Minute,
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
	}, logger)
}

func freshStatus(age time.Duration) *client.Status {
	return &client.Status{
		LastSync: &domain.RunSummary{
			Timestamp: time.Now().Add(-age),
			Success:   true,
			Stats:     map[string]int{domain.DomainProjects: 6},
		},
	}
}

func TestCheck_RecentSyncNotRetriggered(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return freshStatus(10 * time.Minute), nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			t.Fatal("trigger must not be called for a fresh sync")
			return nil, nil
		},
	}
	p := newTestPoller(api)

	p.check(context.Background(), false)

	state := p.State()
	assert.NoError(t, state.Err)
	require.NotNil(t, state.LastSync)
	assert.Equal(t, 6, state.Stats[domain.DomainProjects])
}

func TestCheck_StaleSyncTriggers(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return freshStatus(45 * time.Minute), nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			return &domain.RunSummary{Timestamp: time.Now(), Success: true}, nil
		},
	}
	p := newTestPoller(api)

	p.check(context.Background(), false)

	assert.Equal(t, int32(1), api.triggerCalls.Load())
	assert.Equal(t, 0, p.State().RetryCount)
}

func TestCheck_NeverSyncedTriggers(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return &client.Status{}, nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			return &domain.RunSummary{Timestamp: time.Now(), Success: true}, nil
		},
	}
	p := newTestPoller(api)

	p.check(context.Background(), false)

	assert.Equal(t, int32(1), api.triggerCalls.Load())
}

func TestCheck_FailedRunTriggers(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return &client.Status{
				LastSync: &domain.RunSummary{
					Timestamp: time.Now().Add(-time.Minute),
					Success:   false,
					Errors:    []string{"projects: boom"},
				},
			}, nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			return &domain.RunSummary{Timestamp: time.Now(), Success: true}, nil
		},
	}
	p := newTestPoller(api)

	p.check(context.Background(), false)

	assert.Equal(t, int32(1), api.triggerCalls.Load())
}

func TestCheck_ForceIgnoresFreshness(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return freshStatus(time.Minute), nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			return &domain.RunSummary{Timestamp: time.Now(), Success: true}, nil
		},
	}
	p := newTestPoller(api)

	p.check(context.Background(), true)

	assert.Equal(t, int32(1), api.triggerCalls.Load())
}

func TestSync_TransientFailuresRetryWithBackoff(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return &client.Status{}, nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			return nil, errors.New("unexpected status: 500")
		},
	}
	p := newTestPoller(api)

	p.check(context.Background(), false)

	// Initial attempt plus the full retry budget.
	assert.Equal(t, int32(4), api.triggerCalls.Load())
	state := p.State()
	assert.Equal(t, 3, state.RetryCount)
	assert.Error(t, state.Err)
	assert.False(t, state.Loading)
}

func TestSync_RetryDelaysDoublePerAttempt(t *testing.T) {
	var attempts []time.Time
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return &client.Status{}, nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			attempts = append(attempts, time.Now())
			return nil, errors.New("unexpected status: 500")
		},
	}
	p := newTestPoller(api)
	p.initialBackoff = 20 * time.Millisecond

	p.check(context.Background(), false)

	require.Len(t, attempts, 4)
	for i, want := range []time.Duration{20, 40, 80} {
		gap := attempts[i+1].Sub(attempts[i])
		assert.GreaterOrEqual(t, gap, want*time.Millisecond, "retry %d fired too early", i+1)
	}
}

func TestSync_RetrySucceedsBeforeGivingUp(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return &client.Status{}, nil
		},
	}
	api.triggerFn = func(context.Context) (*domain.RunSummary, error) {
		if api.triggerCalls.Load() < 3 {
			return nil, errors.New("unexpected status: 502")
		}
		return &domain.RunSummary{Timestamp: time.Now(), Success: true}, nil
	}
	p := newTestPoller(api)

	p.check(context.Background(), false)

	assert.Equal(t, int32(3), api.triggerCalls.Load())
	state := p.State()
	assert.NoError(t, state.Err)
	assert.Equal(t, 0, state.RetryCount)
}

func TestSync_UnauthorizedNeverRetries(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return &client.Status{}, nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			return nil, client.ErrUnauthorized
		},
	}
	p := newTestPoller(api)

	p.check(context.Background(), false)

	assert.Equal(t, int32(1), api.triggerCalls.Load())
	assert.ErrorIs(t, p.State().Err, client.ErrUnauthorized)
}

func TestSync_ContextCancelStopsRetryLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return &client.Status{}, nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			cancel()
			return nil, errors.New("unexpected status: 500")
		},
	}
	p := newTestPoller(api)
	p.initialBackoff = time.Hour // would hang without cancellation

	done := make(chan struct{})
	go func() {
		p.check(ctx, false)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("retry loop ignored context cancellation")
	}
	assert.Equal(t, int32(1), api.triggerCalls.Load())
}

func TestRun_InitialCheckAndWake(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return freshStatus(time.Minute), nil
		},
	}
	p := newTestPoller(api)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return api.statusCalls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond, "initial check never ran")

	p.Wake()
	require.Eventually(t, func() bool {
		return api.statusCalls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond, "wake never produced a check")

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run loop did not stop on context cancellation")
	}
}

func TestRun_ForceSyncBypassesDueCheck(t *testing.T) {
	api := &stubAPI{
		statusFn: func(context.Context) (*client.Status, error) {
			return freshStatus(time.Minute), nil
		},
		triggerFn: func(context.Context) (*domain.RunSummary, error) {
			return &domain.RunSummary{Timestamp: time.Now(), Success: true}, nil
		},
	}
	p := newTestPoller(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = p.Run(ctx) }()

	require.Eventually(t, func() bool {
		return api.statusCalls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	p.ForceSync()
	require.Eventually(t, func() bool {
		return api.triggerCalls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond, "force sync never triggered")
}
