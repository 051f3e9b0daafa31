package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portfolio_sync/internal/domain"
)

func TestExperiences_AchievementsGroupedByCategoryInFirstSeenOrder(t *testing.T) {
	achievements := []domain.Achievement{
		{Category: "Competition Achievements", Title: "1st Place", Year: "2020"},
		{Category: "Competition Achievements", Title: "5th Place", Year: "2020"},
	}

	data := Experiences(nil, nil, achievements)

	assert.Len(t, data.Achievements, 1)
	assert.Equal(t, "Competition Achievements", data.Achievements[0].Category)
	assert.Equal(t, "1st Place", data.Achievements[0].Items[0].Title)
	assert.Equal(t, "5th Place", data.Achievements[0].Items[1].Title)
}

func TestExperiences_GroupOrderFollowsInput(t *testing.T) {
	achievements := []domain.Achievement{
		{Category: "Hackathons", Title: "Winner", Year: "2021", Type: domain.AchievementHackathon},
		{Category: "Scholarships", Title: "Merit", Year: "2019", Type: domain.AchievementScholarship},
		{Category: "Hackathons", Title: "Finalist", Year: "2022", Type: domain.AchievementHackathon},
	}

	data := Experiences(nil, nil, achievements)

	assert.Len(t, data.Achievements, 2)
	assert.Equal(t, "Hackathons", data.Achievements[0].Category)
	assert.Equal(t, "Scholarships", data.Achievements[1].Category)
	assert.Len(t, data.Achievements[0].Items, 2)
}

func TestExperiences_PeriodDerivedFromDates(t *testing.T) {
	start := time.Date(2019, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)

	data := Experiences([]domain.Education{
		{Institution: "State University", StartDate: start, EndDate: &end},
	}, nil, nil)

	assert.Equal(t, "Sep 2019 - Jun 2023", data.Education[0].Period)
	assert.Equal(t, "2019-09-01T00:00:00Z", data.Education[0].StartDate)
	assert.Equal(t, "2023-06-30T00:00:00Z", data.Education[0].EndDate)
}

func TestExperiences_OngoingPositionRendersPresent(t *testing.T) {
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	data := Experiences(nil, []domain.Experience{
		{Company: "Lab", Position: "Research Assistant", StartDate: start},
	}, nil)

	assert.Equal(t, "Jan 2024 - Present", data.Experience[0].Period)
	assert.Empty(t, data.Experience[0].EndDate)
	assert.NotNil(t, data.Experience[0].Responsibilities)
}

func TestExperiences_SuppliedPeriodWins(t *testing.T) {
	period := "Fall 2020"
	start := time.Date(2020, time.September, 1, 0, 0, 0, 0, time.UTC)

	data := Experiences([]domain.Education{
		{Institution: "College", StartDate: start, Period: &period},
	}, nil, nil)

	assert.Equal(t, "Fall 2020", data.Education[0].Period)
}
