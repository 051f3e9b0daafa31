package transform

import (
	"sort"

	"portfolio_sync/internal/domain"
)

// BlogPosts filters to published posts, orders them newest first and expands
// attached files into nested descriptors.
func BlogPosts(records []domain.BlogPost) []domain.BlogPostEntry {
	entries := make([]domain.BlogPostEntry, 0, len(records))
	for _, p := range records {
		if !p.Published {
			continue
		}
		entry := domain.BlogPostEntry{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Excerpt:     p.Excerpt,
			Content:     p.Content,
			Author:      p.Author,
			PublishedAt: isoDate(p.PublishedAt),
			UpdatedAt:   isoDate(p.UpdatedAt),
			Category:    p.Category,
			Tags:        emptyIfNil(p.Tags),
			ReadingTime: p.ReadingTime,
			Featured:    p.Featured,
			Img:         strVal(p.ImageURL),
			Files:       make([]domain.FileEntry, 0, len(p.Files)),
		}
		for _, f := range p.Files {
			entry.Files = append(entry.Files, domain.FileEntry{
				ID:           f.ID,
				Filename:     f.Filename,
				OriginalName: f.OriginalName,
				MimeType:     f.MimeType,
				Size:         f.Size,
				Path:         f.Path,
				Category:     f.Category,
				Description:  strVal(f.Description),
			})
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PublishedAt > entries[j].PublishedAt
	})

	return entries
}
