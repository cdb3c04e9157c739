package course

import (
	"fmt"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/listing"
)

// Statuses
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusReview    = "review"
	StatusArchived  = "archived"
)

// Levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
	LevelAll          = "All Levels"
)

// Lesson types
const (
	LessonVideo = "video"
	LessonText  = "text"
	LessonCode  = "code"
)

var (
	StatusChoices = []listing.Choice{
		{Value: listing.All, Label: "All Status"},
		{Value: StatusPublished, Label: "Published"},
		{Value: StatusDraft, Label: "Draft"},
		{Value: StatusReview, Label: "In Review"},
	}
	LevelChoices = []listing.Choice{
		{Value: listing.All, Label: "All Levels"},
		{Value: LevelBeginner, Label: "Beginner"},
		{Value: LevelIntermediate, Label: "Intermediate"},
		{Value: LevelAdvanced, Label: "Advanced"},
		{Value: LevelExpert, Label: "Expert"},
	}
)

type (
	Lesson struct {
		ID       int    `json:"id"`
		Title    string `json:"title"`
		Duration string `json:"duration"`
		Free     bool   `json:"free"`
		Type     string `json:"type"`
		Status   string `json:"status"`
		Views    int    `json:"views"`
	}

	Module struct {
		ID      int      `json:"id"`
		Title   string   `json:"title"`
		Lessons []Lesson `json:"lessons"`
	}

	Project struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Difficulty  string `json:"difficulty"`
	}

	Course struct {
		ID              int       `json:"id"`
		Slug            string    `json:"slug"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		LongDescription string    `json:"long_description"`
		Image           string    `json:"image"`
		Category        string    `json:"category"`
		Level           string    `json:"level"`
		Status          string    `json:"status"`
		Duration        string    `json:"duration"`
		Lessons         int       `json:"lessons"`
		Students        int       `json:"students"` // all-time learners, shown publicly
		Enrolled        int       `json:"enrolled"` // active enrollments
		Rating          float64   `json:"rating"`
		Reviews         int       `json:"reviews"`
		CompletionRate  int       `json:"completion_rate"` // percent
		Revenue         int       `json:"revenue"`         // USD
		LastUpdated     string    `json:"last_updated"`
		Outcomes        []string  `json:"outcomes"`
		Tools           []string  `json:"tools"`
		Modules         []Module  `json:"modules,omitempty"`
		Projects        []Project `json:"projects,omitempty"`
	}

	// Version is one entry of a course's content history.
	Version struct {
		Version string `json:"version"`
		Date    string `json:"date"`
		Author  string `json:"author"`
		Changes string `json:"changes"`
	}
)

// Path is the public detail page of the course.
func (c Course) Path() string { return "/courses/" + c.Slug }

// FreeLessons counts the lessons open to visitors.
func (c Course) FreeLessons() int {
	var n int
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			if l.Free {
				n++
			}
		}
	}
	return n
}

// StatusCount tallies the module's lessons by status.
func (m Module) StatusCount(status string) int {
	var n int
	for _, l := range m.Lessons {
		if l.Status == status {
			n++
		}
	}
	return n
}

// FormatRevenue renders Revenue as "$28.4K".
func (c Course) FormatRevenue() string {
	if c.Revenue == 0 {
		return "$0"
	}
	return fmt.Sprintf("$%.1fK", float64(c.Revenue)/1000)
}

type QueryFilter struct {
	Search string `query:"search" json:"search"`
	Status string `query:"status" json:"status"`
	Level  string `query:"level" json:"level"`
}

func (f *QueryFilter) Clean() {
	f.Status = core.CleanString(f.Status)
	f.Level = core.CleanString(f.Level)
}

// Spec matches Search against the title, and Status and Level exactly.
func (f QueryFilter) Spec() listing.Spec[Course] {
	return listing.Spec[Course]{
		Query:  f.Search,
		Search: []listing.Field[Course]{func(c Course) string { return c.Title }},
		Facets: []listing.Facet[Course]{
			{Field: func(c Course) string { return c.Status }, Selected: f.Status},
			{Field: func(c Course) string { return c.Level }, Selected: f.Level},
		},
	}
}
