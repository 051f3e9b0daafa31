package transform

import "portfolio_sync/internal/domain"

// Publications flattens publication records, one entry per record. The url
// field prefers a DOI link over the PDF; the arxiv field is derived from the
// arXiv id when present.
func Publications(records []domain.Publication) []domain.PublicationEntry {
	entries := make([]domain.PublicationEntry, 0, len(records))
	for _, p := range records {
		entry := domain.PublicationEntry{
			Title:     p.Title,
			Authors:   p.Authors,
			Venue:     p.Venue,
			Year:      p.Year,
			DOI:       strVal(p.DOI),
			ArxivID:   strVal(p.ArxivID),
			PDFURL:    strVal(p.PDFURL),
			Category:  p.Category,
			Abstract:  strVal(p.Abstract),
			Citations: p.Citations,
		}
		if entry.DOI != "" {
			entry.URL = "https://doi.org/" + entry.DOI
		} else {
			entry.URL = entry.PDFURL
		}
		if entry.ArxivID != "" {
			entry.Arxiv = "https://arxiv.org/abs/" + entry.ArxivID
		}
		entries = append(entries, entry)
	}
	return entries
}
