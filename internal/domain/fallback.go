package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flattened shapes written to the static fallback modules. Field names and
// JSON keys follow the legacy fallback format consumed by the site.

type ProjectEntry struct {
	Img      string            `json:"img"`
	Title    string            `json:"title"`
	Desc     string            `json:"desc"`
	Demo     string            `json:"demo,omitempty"`
	Source   string            `json:"source,omitempty"`
	Stars    int               `json:"stars"`
	Forks    int               `json:"forks"`
	Language string            `json:"language"`
	Featured bool              `json:"featured"`
	Tags     map[string]string `json:"tags"`
}

type PublicationEntry struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Venue     string   `json:"venue"`
	Year      int      `json:"year"`
	DOI       string   `json:"doi,omitempty"`
	ArxivID   string   `json:"arxivId,omitempty"`
	PDFURL    string   `json:"pdfUrl,omitempty"`
	Category  string   `json:"category"`
	Abstract  string   `json:"abstract,omitempty"`
	Citations int      `json:"citations"`
	URL       string   `json:"url,omitempty"`
	Arxiv     string   `json:"arxiv,omitempty"`
}

type EducationEntry struct {
	Institution string   `json:"institution"`
	Location    string   `json:"location"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Period      string   `json:"period"`
	Highlights  []string `json:"highlights"`
}

type ExperienceEntry struct {
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Position         string   `json:"position"`
	Description      string   `json:"description"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate,omitempty"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

type AchievementEntry struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Year         string `json:"year"`
	Type         string `json:"type,omitempty"`
	Organization string `json:"organization,omitempty"`
	Rank         string `json:"rank,omitempty"`
	Value        string `json:"value,omitempty"`
	URL          string `json:"url,omitempty"`
	Img          string `json:"img,omitempty"`
}

type AchievementGroup struct {
	Category string
	Items    []AchievementEntry
}

// AchievementGroups serializes as a JSON object keyed by category. The slice
// keeps first-seen category order, which the encoder preserves in the output
// text even though JSON objects are formally unordered.
type AchievementGroups []AchievementGroup

func (g AchievementGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}
		items, err := json.Marshal(group.Items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(items)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (g *AchievementGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("achievement groups: expected object, got %v", tok)
	}

	var groups AchievementGroups
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := tok.(string)
		if !ok {
			return fmt.Errorf("achievement groups: expected string key, got %v", tok)
		}
		var items []AchievementEntry
		if err := dec.Decode(&items); err != nil {
			return err
		}
		groups = append(groups, AchievementGroup{Category: category, Items: items})
	}
	*g = groups
	return nil
}

// ExperienceData joins education, experience and grouped achievements into
// the single structure the experiences fallback module exports.
type ExperienceData struct {
	Education    []EducationEntry  `json:"education"`
	Experience   []ExperienceEntry `json:"experience"`
	Achievements AchievementGroups `json:"achievements"`
}

type TechnologyEntry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	Proficiency string `json:"proficiency"`
	YearStarted int    `json:"yearStarted,omitempty"`
	Color       string `json:"color,omitempty"`
	Order       int    `json:"order"`
}

type FileEntry struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
	Category     string `json:"category"`
	Description  string `json:"description,omitempty"`
}

type BlogPostEntry struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Excerpt     string      `json:"excerpt"`
	Content     string      `json:"content"`
	Author      string      `json:"author"`
	PublishedAt string      `json:"publishedAt"`
	UpdatedAt   string      `json:"updatedAt"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	ReadingTime int         `json:"readingTime"`
	Featured    bool        `json:"featured"`
	Img         string      `json:"img,omitempty"`
	Files       []FileEntry `json:"files"`
}
