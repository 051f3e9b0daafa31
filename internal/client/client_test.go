package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_sync/internal/domain"
)

func newTestClient(t *testing.T, secret string, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Config{
		BaseURL: server.URL,
		Secret:  secret,
		Timeout: 2 * time.Second,
	})
}

func TestStatus_ReturnsLastRun(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/status", r.URL.Path)
		fmt.Fprint(w, `{"lastSync":{"timestamp":"2026-02-03T04:05:06Z","success":true,"stats":{"projects":6}},"message":"ok"}`)
	})

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	require.NotNil(t, status.LastSync)
	assert.True(t, status.LastSync.Success)
	assert.Equal(t, 6, status.LastSync.Stats[domain.DomainProjects])
}

func TestStatus_NoSyncYet(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"lastSync":null,"message":"no sync has run yet"}`)
	})

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Nil(t, status.LastSync)
	assert.Equal(t, "no sync has run yet", status.Message)
}

func TestTrigger_SendsBearerSecret(t *testing.T) {
	c := newTestClient(t, "s3cret", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync", r.URL.Path)
		assert.Equal(t, "Bearer s3cret", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"timestamp":"2026-02-03T04:05:06Z","success":true,"stats":{"projects":6}}`)
	})

	summary, err := c.Trigger(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.Success)
}

func TestTrigger_MultiStatusStillReturnsSummary(t *testing.T) {
	c := newTestClient(t, "s3cret", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMultiStatus)
		fmt.Fprint(w, `{"success":false,"stats":{"projects":6},"errors":["publications: boom"]}`)
	})

	summary, err := c.Trigger(context.Background())
	require.NoError(t, err)
	assert.False(t, summary.Success)
	assert.Len(t, summary.Errors, 1)
}

func TestTrigger_UnauthorizedIsSentinel(t *testing.T) {
	c := newTestClient(t, "wrong", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Trigger(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTrigger_ServerErrorIsNotUnauthorized(t *testing.T) {
	c := newTestClient(t, "s3cret", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Trigger(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "500")
}
