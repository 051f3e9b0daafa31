package postgres

import (
	"context"

	"github.com/lib/pq"

	"portfolio_sync/internal/domain"
)

// BlogPosts returns all posts with their attached files. Draft filtering
// belongs to the blog posts mapper.
func (s *ContentStore) BlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	query := `
		SELECT id, title, slug, excerpt, content, author, published,
		       published_at, updated_at, category, tags, reading_time,
		       featured, image_url
		FROM blog_posts
		ORDER BY published_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.BlogPost
	byID := make(map[int64]int)
	for rows.Next() {
		var p domain.BlogPost
		var tags pq.StringArray
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Slug,
			&p.Excerpt,
			&p.Content,
			&p.Author,
			&p.Published,
			&p.PublishedAt,
			&p.UpdatedAt,
			&p.Category,
			&tags,
			&p.ReadingTime,
			&p.Featured,
			&p.ImageURL,
		); err != nil {
			return nil, err
		}
		p.Tags = tags
		byID[p.ID] = len(posts)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return posts, nil
	}

	files, err := s.blogFiles(ctx)
	if err != nil {
		return nil, err
	}
	for postID, postFiles := range files {
		if i, ok := byID[postID]; ok {
			posts[i].Files = postFiles
		}
	}

	return posts, nil
}

func (s *ContentStore) blogFiles(ctx context.Context) (map[int64][]domain.BlogFile, error) {
	query := `
		SELECT post_id, id, filename, original_name, mime_type, size,
		       path, category, description
		FROM blog_post_files
		ORDER BY post_id, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make(map[int64][]domain.BlogFile)
	for rows.Next() {
		var postID int64
		var f domain.BlogFile
		if err := rows.Scan(
			&postID,
			&f.ID,
			&f.Filename,
			&f.OriginalName,
			&f.MimeType,
			&f.Size,
			&f.Path,
			&f.Category,
			&f.Description,
		); err != nil {
			return nil, err
		}
		files[postID] = append(files[postID], f)
	}

	return files, rows.Err()
}
