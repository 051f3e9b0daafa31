package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"portfolio_sync/internal/domain"
)

// StatsStore persists crawler snapshots and refreshes the per-project
// counters derived from them. This is the only writer the sync subsystem
// carries; everything else is read-only.
type StatsStore struct {
	db *sqlx.DB
}

func NewStatsStore(db *sqlx.DB) *StatsStore {
	return &StatsStore{db: db}
}

func (s *StatsStore) UpsertGitHubSnapshot(ctx context.Context, snap *domain.GitHubSnapshot) error {
	query := `
		INSERT INTO github_stats (username, public_repos, followers, total_stars, total_forks, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO UPDATE SET
			public_repos = EXCLUDED.public_repos,
			followers = EXCLUDED.followers,
			total_stars = EXCLUDED.total_stars,
			total_forks = EXCLUDED.total_forks,
			fetched_at = EXCLUDED.fetched_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		snap.Username,
		snap.PublicRepos,
		snap.Followers,
		snap.TotalStars,
		snap.TotalForks,
		snap.FetchedAt,
	)
	return err
}

func (s *StatsStore) UpsertLeetCodeSnapshot(ctx context.Context, snap *domain.LeetCodeSnapshot) error {
	query := `
		INSERT INTO leetcode_stats (username, total_solved, easy_solved, medium_solved, hard_solved, ranking, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username) DO UPDATE SET
			total_solved = EXCLUDED.total_solved,
			easy_solved = EXCLUDED.easy_solved,
			medium_solved = EXCLUDED.medium_solved,
			hard_solved = EXCLUDED.hard_solved,
			ranking = EXCLUDED.ranking,
			fetched_at = EXCLUDED.fetched_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		snap.Username,
		snap.TotalSolved,
		snap.EasySolved,
		snap.MediumSolved,
		snap.HardSolved,
		snap.Ranking,
		snap.FetchedAt,
	)
	return err
}

// RefreshProjectCounters updates star/fork/language columns on projects whose
// github_url ends with the crawled repository name. Projects without a
// matching repository are left untouched.
func (s *StatsStore) RefreshProjectCounters(ctx context.Context, repos []domain.RepoStat) error {
	if len(repos) == 0 {
		return nil
	}

	query := `
		UPDATE projects
		SET stars = $1, forks = $2, language = $3, updated_at = now()
		WHERE github_url LIKE $4`

	for _, repo := range repos {
		name := strings.TrimSuffix(repo.Name, "/")
		_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
			repo.Stars,
			repo.Forks,
			repo.Language,
			"%/"+name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
