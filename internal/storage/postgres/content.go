// Package postgres provides read access to the portfolio content tables and
// write access to the crawler stat snapshots. The content tables themselves
// are owned by the admin CRUD application; the sync subsystem only reads
// them.
package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

// Ping is the connectivity probe the orchestrator runs before attempting any
// domain sync.
func (s *ContentStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
