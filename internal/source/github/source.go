// Package github crawls public profile and repository statistics from the
// GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"portfolio_sync/internal/domain"
)

const perPage = 100

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
		logger:         logger.With("source", "github"),
	}
}

func (s *Source) Username() string {
	return s.username
}

// FetchStats aggregates the profile and all non-fork repositories into one
// snapshot.
func (s *Source) FetchStats(ctx context.Context) (*domain.GitHubSnapshot, error) {
	var user userResponse
	userURL := fmt.Sprintf("%s/users/%s", s.baseURL, s.username)
	if err := s.getJSON(ctx, userURL, &user); err != nil {
		return nil, fmt.Errorf("fetch user profile: %w", err)
	}

	snap := &domain.GitHubSnapshot{
		Username:    s.username,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		FetchedAt:   time.Now().UTC(),
	}

	for page := 1; ; page++ {
		var repos []repoResponse
		reposURL := fmt.Sprintf("%s/users/%s/repos?per_page=%d&page=%d", s.baseURL, s.username, perPage, page)
		if err := s.getJSON(ctx, reposURL, &repos); err != nil {
			return nil, fmt.Errorf("fetch repos page %d: %w", page, err)
		}

		for _, repo := range repos {
			if repo.Fork {
				continue
			}
			snap.TotalStars += repo.StargazersCount
			snap.TotalForks += repo.ForksCount
			snap.Repos = append(snap.Repos, domain.RepoStat{
				Name:     repo.Name,
				URL:      repo.HTMLURL,
				Language: repo.Language,
				Stars:    repo.StargazersCount,
				Forks:    repo.ForksCount,
			})
		}

		s.logger.Debug("fetched repos page",
			"page", page,
			"repos", len(repos),
			"total", len(snap.Repos),
		)

		if len(repos) < perPage {
			break
		}
	}

	return snap, nil
}

func (s *Source) getJSON(ctx context.Context, url string, out any) error {
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = s.doRequest(ctx, url, out)
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

func (s *Source) doRequest(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
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
