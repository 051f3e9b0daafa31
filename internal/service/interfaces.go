package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"portfolio_sync/internal/domain"
)

// Syncer is what the trigger surfaces need from the orchestrator.
type Syncer interface {
	Sync(ctx context.Context) (*domain.RunSummary, error)
}

// ContentSource is the read side of the relational store. Ping doubles as the
// connectivity probe run before any domain sync.
type ContentSource interface {
	Ping(ctx context.Context) error
	Projects(ctx context.Context) ([]domain.Project, error)
	Publications(ctx context.Context) ([]domain.Publication, error)
	Education(ctx context.Context) ([]domain.Education, error)
	Experience(ctx context.Context) ([]domain.Experience, error)
	Achievements(ctx context.Context) ([]domain.Achievement, error)
	Technologies(ctx context.Context) ([]domain.Technology, error)
	BlogPosts(ctx context.Context) ([]domain.BlogPost, error)
}

// ModuleWriter persists one flattened domain structure as a fallback module.
type ModuleWriter interface {
	WriteModule(name string, data any) error
}

// StatusStore holds the most recent run summary. Read returns nil when no
// sync has ever run.
type StatusStore interface {
	Read() (*domain.RunSummary, error)
	Write(summary *domain.RunSummary) error
}

// Publisher fans a completed run summary out to interested consumers.
type Publisher interface {
	PublishRun(ctx context.Context, summary *domain.RunSummary) error
	Close() error
}

// GitHubSource and LeetCodeSource fetch profile statistics from the
// third-party APIs the crawler polls.
type GitHubSource interface {
	Username() string
	FetchStats(ctx context.Context) (*domain.GitHubSnapshot, error)
}

type LeetCodeSource interface {
	Username() string
	FetchStats(ctx context.Context) (*domain.LeetCodeSnapshot, error)
}

// StatsSink is the write side used by the crawler.
type StatsSink interface {
	UpsertGitHubSnapshot(ctx context.Context, snap *domain.GitHubSnapshot) error
	UpsertLeetCodeSnapshot(ctx context.Context, snap *domain.LeetCodeSnapshot) error
	RefreshProjectCounters(ctx context.Context, repos []domain.RepoStat) error
}

// TransactionManager scopes a function to one database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
