package transform

import (
	"time"

	"portfolio_sync/internal/domain"
)

// Experiences joins education, experience and achievement records into the
// single structure the experiences fallback module exports. Achievements are
// regrouped from a flat list into category groups in first-seen order.
func Experiences(education []domain.Education, experience []domain.Experience, achievements []domain.Achievement) domain.ExperienceData {
	data := domain.ExperienceData{
		Education:    make([]domain.EducationEntry, 0, len(education)),
		Experience:   make([]domain.ExperienceEntry, 0, len(experience)),
		Achievements: groupAchievements(achievements),
	}

	for _, e := range education {
		data.Education = append(data.Education, domain.EducationEntry{
			Institution: e.Institution,
			Location:    e.Location,
			Degree:      e.Degree,
			Field:       e.Field,
			StartDate:   isoDate(e.StartDate),
			EndDate:     isoDateOrEmpty(e.EndDate),
			Period:      periodString(e.StartDate, e.EndDate, e.Period),
			Highlights:  emptyIfNil(e.Highlights),
		})
	}

	for _, e := range experience {
		data.Experience = append(data.Experience, domain.ExperienceEntry{
			Company:          e.Company,
			Location:         e.Location,
			Position:         e.Position,
			Description:      e.Description,
			StartDate:        isoDate(e.StartDate),
			EndDate:          isoDateOrEmpty(e.EndDate),
			Period:           periodString(e.StartDate, e.EndDate, e.Period),
			Responsibilities: emptyIfNil(e.Responsibilities),
		})
	}

	return data
}

func groupAchievements(achievements []domain.Achievement) domain.AchievementGroups {
	groups := domain.AchievementGroups{}
	index := make(map[string]int)

	for _, a := range achievements {
		entry := domain.AchievementEntry{
			Title:        a.Title,
			Description:  a.Description,
			Year:         a.Year,
			Type:         a.Type,
			Organization: strVal(a.Organization),
			Rank:         strVal(a.Rank),
			Value:        strVal(a.Value),
			URL:          strVal(a.URL),
			Img:          strVal(a.ImageURL),
		}

		i, seen := index[a.Category]
		if !seen {
			index[a.Category] = len(groups)
			groups = append(groups, domain.AchievementGroup{Category: a.Category})
			i = len(groups) - 1
		}
		groups[i].Items = append(groups[i].Items, entry)
	}

	return groups
}

// periodString prefers the supplied period and otherwise derives one from the
// dates, e.g. "Sep 2019 - Jun 2023" or "Jan 2024 - Present".
func periodString(start time.Time, end *time.Time, override *string) string {
	if override != nil && *override != "" {
		return *override
	}
	from := start.Format("Jan 2006")
	if end == nil {
		return from + " - Present"
	}
	return from + " - " + end.Format("Jan 2006")
}

func isoDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func isoDateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return isoDate(*t)
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
