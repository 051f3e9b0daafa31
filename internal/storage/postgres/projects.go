package postgres

import (
	"context"

	"github.com/lib/pq"

	"portfolio_sync/internal/domain"
)

func (s *ContentStore) Projects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT id, title, description, technologies, github_url, live_url,
		       image_url, featured, stars, forks, language, created_at, updated_at
		FROM projects
		ORDER BY featured DESC, stars DESC, title`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		var technologies pq.StringArray
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&technologies,
			&p.GithubURL,
			&p.LiveURL,
			&p.ImageURL,
			&p.Featured,
			&p.Stars,
			&p.Forks,
			&p.Language,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Technologies = technologies
		projects = append(projects, p)
	}

	return projects, rows.Err()
}
