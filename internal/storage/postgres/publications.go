package postgres

import (
	"context"

	"github.com/lib/pq"

	"portfolio_sync/internal/domain"
)

func (s *ContentStore) Publications(ctx context.Context) ([]domain.Publication, error) {
	query := `
		SELECT id, title, authors, venue, year, doi, arxiv_id, pdf_url,
		       category, abstract, citations
		FROM publications
		ORDER BY year DESC, title`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var publications []domain.Publication
	for rows.Next() {
		var p domain.Publication
		var authors pq.StringArray
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&authors,
			&p.Venue,
			&p.Year,
			&p.DOI,
			&p.ArxivID,
			&p.PDFURL,
			&p.Category,
			&p.Abstract,
			&p.Citations,
		); err != nil {
			return nil, err
		}
		p.Authors = authors
		publications = append(publications, p)
	}

	return publications, rows.Err()
}
