package static

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_sync/internal/domain"
)

func TestWriteModule_RoundTripsProjects(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	entries := []domain.ProjectEntry{
		{
			Img:      "/assets/projects/vehicle-tracking.gif",
			Title:    "Vehicle Counting",
			Desc:     "Counts vehicles in traffic footage",
			Source:   "https://github.com/u/vehicle-counting",
			Stars:    99,
			Forks:    31,
			Language: "Python",
			Tags:     map[string]string{"Python": "secondary", "YOLO": "secondary"},
		},
	}

	require.NoError(t, w.WriteModule("projects", entries))

	raw, err := os.ReadFile(filepath.Join(dir, "projects.js"))
	require.NoError(t, err)

	payload, err := Parse(raw)
	require.NoError(t, err)

	var decoded []domain.ProjectEntry
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, entries, decoded)
}

func TestWriteModule_RoundTripsAchievementGroupOrder(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	data := domain.ExperienceData{
		Education:  []domain.EducationEntry{},
		Experience: []domain.ExperienceEntry{},
		Achievements: domain.AchievementGroups{
			{Category: "Hackathons", Items: []domain.AchievementEntry{{Title: "Winner", Year: "2021"}}},
			{Category: "Academic", Items: []domain.AchievementEntry{{Title: "Dean's List", Year: "2020-2021"}}},
		},
	}

	require.NoError(t, w.WriteModule("experiences", data))

	raw, err := os.ReadFile(filepath.Join(dir, "experiences.js"))
	require.NoError(t, err)

	payload, err := Parse(raw)
	require.NoError(t, err)

	var decoded domain.ExperienceData
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, data, decoded)
	assert.Equal(t, "Hackathons", decoded.Achievements[0].Category)
}

func TestSerialize_ModuleShape(t *testing.T) {
	generated := time.Date(2026, time.February, 3, 4, 5, 6, 0, time.UTC)

	body, err := Serialize("technologies", []domain.TechnologyEntry{}, generated)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "// Timestamp: 2026-02-03T04:05:06Z")
	assert.Contains(t, text, "const technologies = []")
	assert.Contains(t, text, "export default technologies;")
}

func TestWriteModule_OverwritesPriorContent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	require.NoError(t, w.WriteModule("blogPosts", []domain.BlogPostEntry{{ID: 1, Slug: "first"}}))
	require.NoError(t, w.WriteModule("blogPosts", []domain.BlogPostEntry{{ID: 2, Slug: "second"}}))

	raw, err := os.ReadFile(filepath.Join(dir, "blogPosts.js"))
	require.NoError(t, err)

	payload, err := Parse(raw)
	require.NoError(t, err)

	var decoded []domain.BlogPostEntry
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "second", decoded[0].Slug)
}

func TestParse_RejectsMalformedModule(t *testing.T) {
	_, err := Parse([]byte("not a module"))
	assert.Error(t, err)
}
