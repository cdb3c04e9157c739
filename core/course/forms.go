package course

import (
	"strings"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/listing"
)

// NewID marks a course form that creates a course.
const NewID = "new"

var (
	// Levels offered by the course form, in order.
	Levels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert, LevelAll}
	// Categories offered by the course form, in order.
	Categories = []string{"Core", "Skills", "Career", "Business", "Advanced"}
	// LessonTypes labels the lesson types offered by the lesson form.
	LessonTypes = []listing.Choice{
		{Value: LessonVideo, Label: "Video"},
		{Value: LessonText, Label: "Text"},
		{Value: LessonCode, Label: "Code Exercise"},
	}
	// LessonStatuses labels the statuses offered by the lesson form.
	LessonStatuses = StatusChoices[1:]
)

type (
	// Form creates or edits a course. ID is zero for a new course.
	Form struct {
		ID          int    `form:"id" json:"id"`
		Title       string `form:"title" json:"title" validate:"required,max=120"`
		Description string `form:"description" json:"description" validate:"required"`
		Level       string `form:"level" json:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert 'All Levels'"`
		Category    string `form:"category" json:"category" validate:"required,oneof=Core Skills Career Business Advanced"`
		Duration    string `form:"duration" json:"duration"`
		Lessons     int    `form:"lessons" json:"lessons" validate:"min=0"`
		Outcomes    string `form:"outcomes" json:"outcomes"` // one per line
	}

	// LessonForm edits one lesson of a course.
	LessonForm struct {
		ID       int    `form:"id" json:"id" validate:"required"`
		Title    string `form:"title" json:"title" validate:"required,max=120"`
		Type     string `form:"type" json:"type" validate:"required,oneof=video text code"`
		Duration string `form:"duration" json:"duration"`
		Status   string `form:"status" json:"status" validate:"required,oneof=published draft review"`
		Content  string `form:"content" json:"content"`
		Prompts  string `form:"prompts" json:"prompts"`
	}
)

// NewForm fills the course form from c. The zero Course gives the blank create form.
func NewForm(c Course) Form {
	f := Form{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Level:       c.Level,
		Category:    c.Category,
		Duration:    c.Duration,
		Lessons:     c.Lessons,
		Outcomes:    strings.Join(c.Outcomes, "\n"),
	}
	if f.Level == "" {
		f.Level = LevelBeginner
	}
	if f.Category == "" {
		f.Category = Categories[0]
	}
	return f
}

func (f Form) IsNew() bool { return f.ID == 0 }

func (f *Form) Clean() {
	f.Title = core.CleanString(f.Title)
	f.Description = core.CleanString(f.Description)
	f.Duration = core.CleanString(f.Duration)

	var outcomes []string
	for _, line := range strings.Split(f.Outcomes, "\n") {
		if line = core.CleanString(line); line != "" {
			outcomes = append(outcomes, line)
		}
	}
	f.Outcomes = strings.Join(outcomes, "\n")
}

func NewLessonForm(l Lesson) LessonForm {
	return LessonForm{ID: l.ID, Title: l.Title, Type: l.Type, Duration: l.Duration, Status: l.Status}
}

func (f *LessonForm) Clean() {
	f.Title = core.CleanString(f.Title)
	f.Duration = core.CleanString(f.Duration)
	f.Content = strings.TrimSpace(f.Content)
	f.Prompts = strings.TrimSpace(f.Prompts)
}

// Lesson finds the lesson identified by id in the course's modules.
func (c Course) Lesson(id int) (Lesson, bool) {
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			if l.ID == id {
				return l, true
			}
		}
	}
	return Lesson{}, false
}
