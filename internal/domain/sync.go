package domain

import "time"

// Domain names in the fixed order the orchestrator runs them.
const (
	DomainProjects     = "projects"
	DomainPublications = "publications"
	DomainExperiences  = "experiences"
	DomainTechnologies = "technologies"
	DomainBlogPosts    = "blogPosts"
)

// SyncDomains lists the five fallback domains in run order.
var SyncDomains = []string{
	DomainProjects,
	DomainPublications,
	DomainExperiences,
	DomainTechnologies,
	DomainBlogPosts,
}

// RunSummary is the outcome of one orchestrator run. Only the most recent
// summary is kept; the status store overwrites on every run.
type RunSummary struct {
	Timestamp  time.Time      `json:"timestamp"`
	Success    bool           `json:"success"`
	Stats      map[string]int `json:"stats"`
	Errors     []string       `json:"errors"`
	DurationMs int64          `json:"durationMs"`
}

// Age reports how long ago the run finished.
func (s *RunSummary) Age(now time.Time) time.Duration {
	return now.Sub(s.Timestamp)
}
