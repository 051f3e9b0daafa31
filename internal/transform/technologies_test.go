package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio_sync/internal/domain"
)

func TestTechnologies_FiltersHiddenAndSorts(t *testing.T) {
	year := 2018
	records := []domain.Technology{
		{ID: 1, Name: "Rust", Category: "languages", Proficiency: "learning", Visible: true, DisplayOrder: 2},
		{ID: 2, Name: "Go", Category: "languages", Proficiency: "expert", Visible: true, DisplayOrder: 1, YearStarted: &year},
		{ID: 3, Name: "Redis", Category: "databases", Proficiency: "advanced", Visible: true, DisplayOrder: 1},
		{ID: 4, Name: "COBOL", Category: "languages", Proficiency: "rusty", Visible: false, DisplayOrder: 0},
	}

	entries := Technologies(records)

	assert.Len(t, entries, 3)
	assert.Equal(t, "Redis", entries[0].Name) // databases < languages
	assert.Equal(t, "Go", entries[1].Name)
	assert.Equal(t, "Rust", entries[2].Name)
	assert.Equal(t, 2018, entries[1].YearStarted)
}

func TestTechnologies_NameBreaksOrderTies(t *testing.T) {
	records := []domain.Technology{
		{ID: 1, Name: "Zig", Category: "languages", Visible: true, DisplayOrder: 1},
		{ID: 2, Name: "Ada", Category: "languages", Visible: true, DisplayOrder: 1},
	}

	entries := Technologies(records)

	assert.Equal(t, "Ada", entries[0].Name)
	assert.Equal(t, "Zig", entries[1].Name)
}
