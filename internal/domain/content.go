package domain

import "time"

// Achievement type tags as stored in the achievements table.
const (
	AchievementAcademic    = "academic"
	AchievementCompetition = "competition"
	AchievementHackathon   = "hackathon"
	AchievementScholarship = "scholarship"
	AchievementRecognition = "recognition"
)

type Project struct {
	ID           int64
	Title        string
	Description  string
	Technologies []string
	GithubURL    *string
	LiveURL      *string
	ImageURL     *string
	Featured     bool
	Stars        int
	Forks        int
	Language     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Publication struct {
	ID        int64
	Title     string
	Authors   []string // ordered as they appear on the paper
	Venue     string
	Year      int
	DOI       *string
	ArxivID   *string
	PDFURL    *string
	Category  string
	Abstract  *string
	Citations int
}

type Education struct {
	ID           int64
	Institution  string
	Location     string
	Degree       string
	Field        string
	StartDate    time.Time
	EndDate      *time.Time // nil means ongoing
	Period       *string    // overrides the derived period string when set
	Visible      bool
	DisplayOrder int
	Highlights   []string
}

type Experience struct {
	ID               int64
	Company          string
	Location         string
	Position         string
	Description      string
	StartDate        time.Time
	EndDate          *time.Time // nil means ongoing
	Period           *string
	Visible          bool
	DisplayOrder     int
	Responsibilities []string
}

type Achievement struct {
	ID           int64
	Category     string
	Title        string
	Description  string
	Year         string // may encode a range like "2020-2021"
	Type         string
	Organization *string
	Rank         *string
	Value        *string
	URL          *string
	ImageURL     *string
	Visible      bool
	DisplayOrder int
}

type Technology struct {
	ID           int64
	Name         string
	Category     string
	Icon         *string
	Description  *string
	Proficiency  string
	YearStarted  *int
	Visible      bool
	DisplayOrder int
	Color        *string
}

type BlogPost struct {
	ID          int64
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Author      string
	Published   bool
	PublishedAt time.Time
	UpdatedAt   time.Time
	Category    string
	Tags        []string
	ReadingTime int
	Featured    bool
	ImageURL    *string
	Files       []BlogFile
}

type BlogFile struct {
	ID           int64
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
	Path         string
	Category     string
	Description  *string
}
