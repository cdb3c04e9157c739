package mockdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/user"
)

func openRepos(t *testing.T) Repositories {
	db, err := Open()
	require.NoError(t, err)
	return NewRepositories(db)
}

func TestOpen_Seeds(t *testing.T) {
	repos := openRepos(t)
	ctx := context.Background()

	users, err := repos.User.QueryAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 10)

	courses, err := repos.Course.QueryAllCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 5)

	certs, err := repos.Certificate.QueryAllCertificates(ctx)
	require.NoError(t, err)
	assert.Len(t, certs, 8)

	subs, err := repos.Submission.QueryAllSubmissions(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 8)

	events, err := repos.Audit.QueryAllEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 8)

	roles, err := repos.Admin.QueryRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 5)
	assert.True(t, roles[0].Allowed("settings", "write"))
	assert.False(t, roles[1].Allowed("settings", "read"))
	assert.True(t, roles[4].Allowed("analytics", "export"))
}

func TestCourseRepository(t *testing.T) {
	repo := openRepos(t).Course
	ctx := context.Background()

	c, err := repo.GetCourseBySlug(ctx, "prompt-engineering")
	require.NoError(t, err)
	assert.Equal(t, "Prompt Engineering", c.Title)
	assert.Equal(t, 2, c.FreeLessons())

	_, err = repo.GetCourseBySlug(ctx, "")
	assert.Equal(t, course.ErrNotFound, err, "courses without a slug are never matched")

	content, err := repo.GetCourseContent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, content.Modules, 4)
	assert.Equal(t, 101, content.Modules[0].Lessons[0].ID)
	assert.Equal(t, 4, content.Modules[0].StatusCount(course.StatusPublished))

	_, err = repo.GetCourseContent(ctx, 42)
	assert.Equal(t, course.ErrNotFound, err)

	versions, err := repo.QueryVersions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "1.3", versions[0].Version)

	versions, err = repo.QueryVersions(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestRepositories_DoNotShareRows(t *testing.T) {
	repos := openRepos(t)
	ctx := context.Background()

	users, err := repos.User.QueryAllUsers(ctx)
	require.NoError(t, err)
	users[0].Name = "changed"

	again, err := repos.User.QueryAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", again[0].Name)

	settings, err := repos.Admin.GetSettings(ctx)
	require.NoError(t, err)
	settings.Features[0].Enabled = false

	settings, err = repos.Admin.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.Features[0].Enabled)
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	repo := openRepos(t).User
	ctx := context.Background()

	usr, err := repo.GetUserByEmail(ctx, "lisa.t@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Lisa Thompson", usr.Name)

	_, err = repo.GetUserByEmail(ctx, "nobody@example.com")
	assert.Equal(t, user.ErrNotFound, err)
}

func TestLearnerRepository_GetLesson(t *testing.T) {
	repo := openRepos(t).Learner
	ctx := context.Background()

	tests := []struct {
		id          string
		wantCurrent int // index of the outline entry matching the lesson
	}{
		{id: "4", wantCurrent: 3},
		{id: "2", wantCurrent: 1},
		{id: "intro-to-ai", wantCurrent: 3},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			lesson, err := repo.GetLesson(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, lesson.ID)
			assert.Equal(t, "Building Your First Neural Network", lesson.Title)

			var current []int
			for i, ref := range lesson.Outline {
				if ref.IsCurrent(lesson) {
					current = append(current, i)
				}
			}
			assert.Equal(t, []int{tt.wantCurrent}, current)
		})
	}
}

func TestRepositories_CancelledContext(t *testing.T) {
	repos := openRepos(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repos.User.QueryAllUsers(ctx)
	assert.Equal(t, context.Canceled, err)
	_, err = repos.Learner.GetHome(ctx)
	assert.Equal(t, context.Canceled, err)
	_, err = repos.Admin.GetOverview(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestDB_Close(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repos := NewRepositories(db)
	ctx := context.Background()

	_, err = repos.User.QueryAllUsers(ctx)
	require.NoError(t, err)

	require.NoError(t, db.Close())
	require.NoError(t, db.Close())

	_, err = repos.User.QueryAllUsers(ctx)
	assert.Equal(t, ErrClosed, err)
	assert.True(t, core.IsShutdown(err))

	_, err = repos.Admin.GetSettings(ctx)
	assert.True(t, core.IsShutdown(err))
	_, _, err = course.NewService(repos.Course).Content(ctx, 1)
	assert.True(t, core.IsShutdown(err))
}
