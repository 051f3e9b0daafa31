// Package transform converts relational content records into the flattened
// shapes the static fallback modules export. Every mapper is total over
// well-formed input: missing optional fields become empty values, never
// errors.
package transform

import (
	"strings"

	"portfolio_sync/internal/domain"
)

// imageRule pairs a lowercase title substring with a local asset path.
// Rules are evaluated in order and the first match wins.
type imageRule struct {
	keyword string
	path    string
}

var imageRules = []imageRule{
	{"vehicle", "/assets/projects/vehicle-tracking.gif"},
	{"emotion", "/assets/projects/emotion-recognition.png"},
	{"chatbot", "/assets/projects/chatbot.png"},
	{"portfolio", "/assets/projects/portfolio.png"},
	{"stock", "/assets/projects/stock-prediction.png"},
	{"segmentation", "/assets/projects/segmentation.png"},
}

// defaultProjectImage is used when no rule matches the title.
const defaultProjectImage = "/assets/projects/default.png"

// tagStyle is the decorative category the site applies to every technology
// tag in the fallback format.
const tagStyle = "secondary"

// Projects flattens project records into fallback entries, one per record.
func Projects(records []domain.Project) []domain.ProjectEntry {
	entries := make([]domain.ProjectEntry, 0, len(records))
	for _, p := range records {
		entry := domain.ProjectEntry{
			Img:      projectImage(p.Title),
			Title:    p.Title,
			Desc:     p.Description,
			Demo:     strVal(p.LiveURL),
			Source:   strVal(p.GithubURL),
			Stars:    p.Stars,
			Forks:    p.Forks,
			Language: p.Language,
			Featured: p.Featured,
			Tags:     make(map[string]string, len(p.Technologies)),
		}
		for _, tech := range p.Technologies {
			entry.Tags[tech] = tagStyle
		}
		entries = append(entries, entry)
	}
	return entries
}

func projectImage(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range imageRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.path
		}
	}
	return defaultProjectImage
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
