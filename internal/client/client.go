// Package client is a thin HTTP client for the sync endpoints. The poller
// uses it to check and trigger syncs against a running server; retries belong
// to the caller.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"portfolio_sync/internal/domain"
)

// ErrUnauthorized marks a rejected trigger. Callers must not retry it; the
// secret will not become valid on its own.
var ErrUnauthorized = errors.New("sync trigger unauthorized")

type Config struct {
	BaseURL string
	Secret  string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	secret     string
}

// Status mirrors the GET /api/sync/status response body.
type Status struct {
	LastSync *domain.RunSummary `json:"lastSync"`
	Message  string             `json:"message"`
}

func New(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		secret:  cfg.Secret,
	}
}

func (c *Client) Status(ctx context.Context) (*Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/sync/status", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &status, nil
}

// Trigger runs a sync. Both a clean run and a partial one return the summary;
// the summary's Errors field carries per-domain failures.
func (c *Client) Trigger(ctx context.Context) (*domain.RunSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/sync", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusMultiStatus:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var summary domain.RunSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &summary, nil
}
