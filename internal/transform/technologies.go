package transform

import (
	"sort"

	"portfolio_sync/internal/domain"
)

// Technologies filters to visible records and orders them by category, then
// display order, then name. The rest is a field rename.
func Technologies(records []domain.Technology) []domain.TechnologyEntry {
	entries := make([]domain.TechnologyEntry, 0, len(records))
	for _, t := range records {
		if !t.Visible {
			continue
		}
		entry := domain.TechnologyEntry{
			ID:          t.ID,
			Name:        t.Name,
			Category:    t.Category,
			Icon:        strVal(t.Icon),
			Description: strVal(t.Description),
			Proficiency: t.Proficiency,
			Color:       strVal(t.Color),
			Order:       t.DisplayOrder,
		}
		if t.YearStarted != nil {
			entry.YearStarted = *t.YearStarted
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		if entries[i].Order != entries[j].Order {
			return entries[i].Order < entries[j].Order
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}
