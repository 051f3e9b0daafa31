// Package leetcode crawls solve counts and ranking from the LeetCode GraphQL
// endpoint.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"portfolio_sync/internal/domain"
)

const statsQuery = `query userStats($username: String!) {
  matchedUser(username: $username) {
    username
    profile { ranking }
    submitStatsGlobal {
      acSubmissionNum { difficulty count }
    }
  }
}`

type Config struct {
	Username       string
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Source struct {
	httpClient     *http.Client
	baseURL        string
	username       string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		username:       cfg.Username,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "leetcode"),
	}
}

func (s *Source) Username() string {
	return s.username
}

func (s *Source) FetchStats(ctx context.Context) (*domain.LeetCodeSnapshot, error) {
	var resp statsResponse

	err := s.withRetry(ctx, func() error {
		return s.doRequest(ctx, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch leetcode stats: %w", err)
	}

	if resp.Data.MatchedUser == nil {
		return nil, fmt.Errorf("user %q not found", s.username)
	}

	snap := &domain.LeetCodeSnapshot{
		Username:  resp.Data.MatchedUser.Username,
		Ranking:   resp.Data.MatchedUser.Profile.Ranking,
		FetchedAt: time.Now().UTC(),
	}

	for _, entry := range resp.Data.MatchedUser.SubmitStatsGlobal.ACSubmissionNum {
		switch entry.Difficulty {
		case "All":
			snap.TotalSolved = entry.Count
		case "Easy":
			snap.EasySolved = entry.Count
		case "Medium":
			snap.MediumSolved = entry.Count
		case "Hard":
			snap.HardSolved = entry.Count
		}
	}

	return snap, nil
}

func (s *Source) withRetry(ctx context.Context, fn func() error) error {
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, out *statsResponse) error {
	body, err := json.Marshal(graphqlRequest{
		Query:     statsQuery,
		Variables: map[string]string{"username": s.username},
	})
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "PortfolioSync/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
