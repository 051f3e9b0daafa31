package status

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_sync/internal/domain"
)

func TestFileStore_ReadMissingReturnsNil(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "sync-status.json"))

	summary, err := store.Read()

	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestFileStore_WriteThenRead(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "sync-status.json"))

	written := &domain.RunSummary{
		Timestamp:  time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		Success:    false,
		Stats:      map[string]int{"projects": 4, "publications": 2},
		Errors:     []string{"blogPosts: table unavailable"},
		DurationMs: 840,
	}
	require.NoError(t, store.Write(written))

	read, err := store.Read()

	require.NoError(t, err)
	assert.Equal(t, written, read)
}

func TestFileStore_WriteOverwritesPriorSummary(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "sync-status.json"))

	require.NoError(t, store.Write(&domain.RunSummary{Success: false, Errors: []string{"boom"}}))
	require.NoError(t, store.Write(&domain.RunSummary{Success: true, Stats: map[string]int{"projects": 1}}))

	read, err := store.Read()

	require.NoError(t, err)
	assert.True(t, read.Success)
	assert.Empty(t, read.Errors)
}

func TestFileStore_ReadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync-status.json")
	store := NewFileStore(path)
	require.NoError(t, store.Write(&domain.RunSummary{Success: true}))

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.Read()
	assert.Error(t, err)
}
