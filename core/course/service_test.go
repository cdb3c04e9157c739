package course_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

func newService(t *testing.T) *course.Service {
	db, err := mockdb.Open()
	require.NoError(t, err)
	return course.NewService(mockdb.NewCourseRepository(db))
}

func titles(courses []course.Course) []string {
	res := make([]string, 0, len(courses))
	for _, c := range courses {
		res = append(res, c.Title)
	}
	return res
}

func TestService_Query(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name   string
		filter course.QueryFilter
		want   []string
	}{
		{name: "draft", filter: course.QueryFilter{Status: course.StatusDraft}, want: []string{"AI for Business & Automation"}},
		{name: "level", filter: course.QueryFilter{Level: course.LevelExpert}, want: []string{"Advanced LLM Fine-tuning"}},
		{name: "search", filter: course.QueryFilter{Search: "prompt"}, want: []string{"Prompt Engineering"}},
		{
			name:   "published ai",
			filter: course.QueryFilter{Search: "AI", Status: course.StatusPublished},
			want:   []string{"AI Fundamentals", "AI for Freelancers"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.Query(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(page.Items))
		})
	}

	page, err := svc.Query(context.Background(), course.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Showing 1 to 5 of 5 courses", page.Summary("courses"))
}

func TestService_Catalog(t *testing.T) {
	svc := newService(t)

	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"AI Fundamentals",
		"Prompt Engineering",
		"AI for Freelancers",
		"AI for Business & Automation",
	}, titles(catalog))
	assert.Equal(t, "/courses/ai-for-business", catalog[3].Path())
}

func TestService_Get(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c, err := svc.Get(ctx, "AI-Fundamentals")
	require.NoError(t, err)
	assert.Equal(t, 24, c.Lessons)
	assert.Len(t, c.Modules, 4)
	assert.Equal(t, "$28.4K", c.FormatRevenue())

	for _, slug := range []string{"", "  ", "machine-learning"} {
		_, err = svc.Get(ctx, slug)
		assert.Equal(t, course.ErrNotFound, err, "slug=%q", slug)
	}
}

func TestService_Content(t *testing.T) {
	svc := newService(t)

	c, versions, err := svc.Content(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "AI Fundamentals", c.Title)
	require.Len(t, c.Modules, 4)
	assert.Equal(t, 1, c.Modules[2].StatusCount(course.StatusReview))
	assert.Len(t, versions, 4)

	_, _, err = svc.Content(context.Background(), 99)
	assert.Equal(t, course.ErrNotFound, err)
}
