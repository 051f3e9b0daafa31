package postgres

import (
	"context"

	"github.com/lib/pq"

	"portfolio_sync/internal/domain"
)

func (s *ContentStore) Education(ctx context.Context) ([]domain.Education, error) {
	query := `
		SELECT id, institution, location, degree, field, start_date, end_date,
		       period, visible, display_order, highlights
		FROM education
		WHERE visible
		ORDER BY display_order, start_date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Education
	for rows.Next() {
		var e domain.Education
		var highlights pq.StringArray
		if err := rows.Scan(
			&e.ID,
			&e.Institution,
			&e.Location,
			&e.Degree,
			&e.Field,
			&e.StartDate,
			&e.EndDate,
			&e.Period,
			&e.Visible,
			&e.DisplayOrder,
			&highlights,
		); err != nil {
			return nil, err
		}
		e.Highlights = highlights
		records = append(records, e)
	}

	return records, rows.Err()
}

func (s *ContentStore) Experience(ctx context.Context) ([]domain.Experience, error) {
	query := `
		SELECT id, company, location, position, description, start_date, end_date,
		       period, visible, display_order, responsibilities
		FROM experience
		WHERE visible
		ORDER BY display_order, start_date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Experience
	for rows.Next() {
		var e domain.Experience
		var responsibilities pq.StringArray
		if err := rows.Scan(
			&e.ID,
			&e.Company,
			&e.Location,
			&e.Position,
			&e.Description,
			&e.StartDate,
			&e.EndDate,
			&e.Period,
			&e.Visible,
			&e.DisplayOrder,
			&responsibilities,
		); err != nil {
			return nil, err
		}
		e.Responsibilities = responsibilities
		records = append(records, e)
	}

	return records, rows.Err()
}

func (s *ContentStore) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	query := `
		SELECT id, category, title, description, year, type, organization,
		       rank, value, url, image_url, visible, display_order
		FROM achievements
		WHERE visible
		ORDER BY display_order, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(
			&a.ID,
			&a.Category,
			&a.Title,
			&a.Description,
			&a.Year,
			&a.Type,
			&a.Organization,
			&a.Rank,
			&a.Value,
			&a.URL,
			&a.ImageURL,
			&a.Visible,
			&a.DisplayOrder,
		); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
