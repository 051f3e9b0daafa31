// Package status persists the most recent sync run summary as a single JSON
// document on disk. The orchestrator is the only writer; trigger surfaces
// read it to report status and to decide whether a resync is due.
package status

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"portfolio_sync/internal/domain"
)

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the last persisted summary, or nil when no sync has ever run.
func (s *FileStore) Read() (*domain.RunSummary, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read status file: %w", err)
	}

	var summary domain.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("parse status file: %w", err)
	}
	return &summary, nil
}

// Write overwrites the status file with the given summary. Whole-file
// overwrite only; the previous summary is not retained.
func (s *FileStore) Write(summary *domain.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create status dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write status file: %w", err)
	}
	return nil
}
