package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) *Source {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{
		Username:       "octocat",
		BaseURL:        server.URL,
		Timeout:        2 * time.Second,
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     10 * time.Millisecond,
	}, logger)
}

func TestFetchStats_ParsesDifficultyBreakdown(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "octocat", req.Variables["username"])
		assert.Contains(t, req.Query, "matchedUser")

		fmt.Fprint(w, `{"data":{"matchedUser":{
			"username":"octocat",
			"profile":{"ranking":54321},
			"submitStatsGlobal":{"acSubmissionNum":[
				{"difficulty":"All","count":250},
				{"difficulty":"Easy","count":120},
				{"difficulty":"Medium","count":100},
				{"difficulty":"Hard","count":30}
			]}
		}}}`)
	})

	snap, err := source.FetchStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "octocat", snap.Username)
	assert.Equal(t, 250, snap.TotalSolved)
	assert.Equal(t, 120, snap.EasySolved)
	assert.Equal(t, 100, snap.MediumSolved)
	assert.Equal(t, 30, snap.HardSolved)
	assert.Equal(t, 54321, snap.Ranking)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestFetchStats_UnknownUser(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"matchedUser":null}}`)
	})

	_, err := source.FetchStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFetchStats_RetriesThenFails(t *testing.T) {
	calls := 0
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := source.FetchStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, 2, calls)
}
