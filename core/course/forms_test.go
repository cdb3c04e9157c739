package course_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/course"
)

func TestNewForm(t *testing.T) {
	blank := course.NewForm(course.Course{})
	assert.True(t, blank.IsNew())
	assert.Equal(t, course.LevelBeginner, blank.Level)
	assert.Equal(t, "Core", blank.Category)

	f := course.NewForm(course.Course{ID: 2, Title: "Prompt Engineering", Level: course.LevelIntermediate, Category: "Skills", Outcomes: []string{"a", "b"}})
	assert.False(t, f.IsNew())
	assert.Equal(t, "a\nb", f.Outcomes)
}

func TestForm_Validate(t *testing.T) {
	validate, translator := core.NewValidator()
	valid := course.Form{Title: "LLM Ops", Description: "Run models in production", Level: course.LevelAll, Category: "Advanced"}

	tests := []struct {
		name    string
		mutate  func(*course.Form)
		wantErr []string
	}{
		{name: "valid", mutate: func(*course.Form) {}},
		{name: "level with a space", mutate: func(f *course.Form) { f.Level = course.LevelAll }},
		{name: "missing title", mutate: func(f *course.Form) { f.Title = "   " }, wantErr: []string{"title"}},
		{name: "unknown level", mutate: func(f *course.Form) { f.Level = "Guru" }, wantErr: []string{"level"}},
		{name: "unknown category", mutate: func(f *course.Form) { f.Category = "Misc" }, wantErr: []string{"category"}},
		{name: "negative lessons", mutate: func(f *course.Form) { f.Lessons = -1 }, wantErr: []string{"lessons"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			f.Clean()
			errs := core.FieldErrors(validate.StructCtx(context.Background(), f), translator)
			keys := make([]string, 0, len(errs))
			for k := range errs {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tt.wantErr, keys)
		})
	}
}

func TestForm_Clean(t *testing.T) {
	f := course.Form{Title: "  LLM Ops ", Outcomes: " deploy \n\n  monitor\n"}
	f.Clean()
	assert.Equal(t, "LLM Ops", f.Title)
	assert.Equal(t, "deploy\nmonitor", f.Outcomes)
}

func TestCourse_Lesson(t *testing.T) {
	c, _, err := newService(t).Content(context.Background(), 1)
	require.NoError(t, err)

	l, ok := c.Lesson(102)
	require.True(t, ok)
	assert.Equal(t, "History and Evolution of AI", l.Title)

	f := course.NewLessonForm(l)
	assert.Equal(t, course.LessonVideo, f.Type)
	assert.Equal(t, course.StatusPublished, f.Status)

	_, ok = c.Lesson(999)
	assert.False(t, ok)
}
