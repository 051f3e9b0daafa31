package domain

import "time"

// GitHubSnapshot is one crawl of a user's GitHub profile.
type GitHubSnapshot struct {
	Username    string    `db:"username"`
	PublicRepos int       `db:"public_repos"`
	Followers   int       `db:"followers"`
	TotalStars  int       `db:"total_stars"`
	TotalForks  int       `db:"total_forks"`
	FetchedAt   time.Time `db:"fetched_at"`
	Repos       []RepoStat
}

// RepoStat carries the per-repository counters used to refresh project rows.
type RepoStat struct {
	Name     string
	URL      string
	Language string
	Stars    int
	Forks    int
}

// LeetCodeSnapshot is one crawl of a user's LeetCode solve counts.
type LeetCodeSnapshot struct {
	Username     string    `db:"username"`
	TotalSolved  int       `db:"total_solved"`
	EasySolved   int       `db:"easy_solved"`
	MediumSolved int       `db:"medium_solved"`
	HardSolved   int       `db:"hard_solved"`
	Ranking      int       `db:"ranking"`
	FetchedAt    time.Time `db:"fetched_at"`
}
