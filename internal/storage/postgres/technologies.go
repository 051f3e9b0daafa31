package postgres

import (
	"context"

	"portfolio_sync/internal/domain"
)

// Technologies returns all rows including hidden ones; visibility filtering
// belongs to the technologies mapper.
func (s *ContentStore) Technologies(ctx context.Context) ([]domain.Technology, error) {
	query := `
		SELECT id, name, category, icon, description, proficiency,
		       year_started, visible, display_order, color
		FROM technologies
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Technology
	for rows.Next() {
		var t domain.Technology
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Category,
			&t.Icon,
			&t.Description,
			&t.Proficiency,
			&t.YearStarted,
			&t.Visible,
			&t.DisplayOrder,
			&t.Color,
		); err != nil {
			return nil, err
		}
		records = append(records, t)
	}

	return records, rows.Err()
}
