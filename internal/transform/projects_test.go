package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portfolio_sync/internal/domain"
)

func TestProjects_VehicleTitleMapsToTrackingAsset(t *testing.T) {
	records := []domain.Project{
		{
			Title:        "Vehicle Counting",
			Technologies: []string{"Python", "YOLO"},
			Stars:        99,
			Forks:        31,
			Featured:     false,
			Language:     "Python",
		},
	}

	entries := Projects(records)

	assert.Len(t, entries, 1)
	assert.Equal(t, "/assets/projects/vehicle-tracking.gif", entries[0].Img)
	assert.Equal(t, map[string]string{"Python": "secondary", "YOLO": "secondary"}, entries[0].Tags)
	assert.Equal(t, 99, entries[0].Stars)
	assert.Equal(t, 31, entries[0].Forks)
	assert.Empty(t, entries[0].Demo)
	assert.Empty(t, entries[0].Source)
}

func TestProjects_DefaultImageWhenNoRuleMatches(t *testing.T) {
	entries := Projects([]domain.Project{{Title: "Compiler Playground"}})

	assert.Len(t, entries, 1)
	assert.Equal(t, defaultProjectImage, entries[0].Img)
}

func TestProjects_ImageMatchIsCaseInsensitive(t *testing.T) {
	entries := Projects([]domain.Project{{Title: "EMOTION Mirror"}})

	assert.Equal(t, "/assets/projects/emotion-recognition.png", entries[0].Img)
}

func TestProjects_EmptyTechnologyListMapsToEmptyTags(t *testing.T) {
	entries := Projects([]domain.Project{{Title: "Bare"}})

	assert.NotNil(t, entries[0].Tags)
	assert.Empty(t, entries[0].Tags)
}

func TestProjects_CardinalityPreserved(t *testing.T) {
	live := "https://example.com"
	records := []domain.Project{
		{Title: "One", LiveURL: &live, CreatedAt: time.Now()},
		{Title: "Two"},
		{Title: "Three"},
	}

	entries := Projects(records)

	assert.Len(t, entries, len(records))
	assert.Equal(t, "https://example.com", entries[0].Demo)
}
