package learner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core/learner"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

func newService(t *testing.T) *learner.Service {
	db, err := mockdb.Open()
	require.NoError(t, err)
	return learner.NewService(mockdb.NewLearnerRepository(db))
}

func TestService_Courses(t *testing.T) {
	svc := newService(t)
	wantCounts := []learner.TabCount{
		{Key: learner.TabAll, Count: 4},
		{Key: learner.TabInProgress, Count: 2},
		{Key: learner.TabCompleted, Count: 1},
	}

	tests := []struct {
		tab  string
		want []string
	}{
		{tab: learner.TabAll, want: []string{"ai-fundamentals", "prompt-engineering", "ai-for-freelancers", "ai-basics"}},
		{tab: learner.TabInProgress, want: []string{"ai-fundamentals", "prompt-engineering"}},
		{tab: learner.TabCompleted, want: []string{"ai-basics"}},
		{tab: "archived", want: []string{"ai-fundamentals", "prompt-engineering", "ai-for-freelancers", "ai-basics"}},
	}
	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			courses, counts, err := svc.Courses(context.Background(), tt.tab)
			require.NoError(t, err)

			slugs := make([]string, 0, len(courses))
			for _, c := range courses {
				slugs = append(slugs, c.CourseSlug)
			}
			assert.Equal(t, tt.want, slugs)
			assert.Equal(t, wantCounts, counts)
		})
	}
}

func TestService_Projects(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		tab  string
		want []int
	}{
		{tab: learner.TabAll, want: []int{1, 2, 3, 4}},
		{tab: learner.TabInProgress, want: []int{2, 3, 4}},
		{tab: learner.TabCompleted, want: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			projects, counts, err := svc.Projects(context.Background(), tt.tab)
			require.NoError(t, err)

			ids := make([]int, 0, len(projects))
			for _, p := range projects {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, []learner.TabCount{
				{Key: learner.TabAll, Count: 4},
				{Key: learner.TabInProgress, Count: 3},
				{Key: learner.TabCompleted, Count: 1},
			}, counts)
		})
	}
}

func TestService_Home(t *testing.T) {
	home, err := newService(t).Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alex", home.Profile.FirstName)
	assert.Len(t, home.Stats, 4)
	assert.Equal(t, 65, home.Current.Progress)
}

func TestService_Lesson(t *testing.T) {
	lesson, err := newService(t).Lesson(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "anything", lesson.ID)
	assert.Len(t, lesson.Transcript, 8)
	require.NotNil(t, lesson.Next)
	assert.Equal(t, "Project: Image Classifier", lesson.Next.Title)
}

func TestService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newService(t).Courses(ctx, learner.TabAll)
	assert.Error(t, err)
}
