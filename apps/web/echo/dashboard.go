package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core/account"
	"github.com/trezcool/masterly/core/learner"
	"github.com/trezcool/masterly/core/uistate"
	"github.com/trezcool/masterly/views"
)

const (
	settingsSaved = "Your changes have been saved."
	courseSaved   = "Course saved."
	lessonSaved   = "Lesson saved."
)

func (s *server) registerDashboardPages(grp *echo.Group) {
	grp.GET("", s.dashboardHome)
	grp.GET("/courses", s.dashboardCourses)
	grp.GET("/lesson/:lessonId", s.lesson)
	grp.GET("/projects", s.dashboardProjects)
	grp.GET("/certificates", s.dashboardCertificates)
	grp.GET("/settings", s.settingsPage)
	grp.POST("/settings", s.saveSettings)
}

// profile returns the signed-in student shown in the sidebar.
func (s *server) profile(ctx echo.Context) (learner.Profile, error) {
	home, err := s.opts.LearnerSvc.Home(ctx.Request().Context())
	return home.Profile, errors.Wrap(err, "loading profile")
}

func (s *server) dashboardHome(ctx echo.Context) error {
	home, err := s.opts.LearnerSvc.Home(ctx.Request().Context())
	if err != nil {
		return err
	}
	return renderOK(ctx, views.DashboardHome(s.meta(ctx, "Dashboard"), shell(ctx), home))
}

func (s *server) dashboardCourses(ctx echo.Context) error {
	profile, err := s.profile(ctx)
	if err != nil {
		return err
	}
	tabs := uistate.NewTabs(learner.Tabs...).Select(ctx.QueryParam("tab"))
	items, counts, err := s.opts.LearnerSvc.Courses(ctx.Request().Context(), tabs.Active())
	if err != nil {
		return err
	}
	return renderOK(ctx, views.DashboardCourses(s.meta(ctx, "My Courses"), shell(ctx), profile, tabs, counts, items))
}

// lesson plays any lesson id: the player always resolves one.
func (s *server) lesson(ctx echo.Context) error {
	profile, err := s.profile(ctx)
	if err != nil {
		return err
	}
	lesson, err := s.opts.LearnerSvc.Lesson(ctx.Request().Context(), ctx.Param("lessonId"))
	if err != nil {
		return err
	}
	tabs := uistate.NewTabs(views.LessonTabs...).Select(ctx.QueryParam("tab"))
	return renderOK(ctx, views.Lesson(s.meta(ctx, lesson.Title), shell(ctx), profile, lesson, tabs, ctx.QueryParam("bookmarked") == "1"))
}

func (s *server) dashboardProjects(ctx echo.Context) error {
	c := ctx.Request().Context()
	profile, err := s.profile(ctx)
	if err != nil {
		return err
	}
	tabs := uistate.NewTabs(learner.Tabs...).Select(ctx.QueryParam("tab"))
	projects, counts, err := s.opts.LearnerSvc.Projects(c, tabs.Active())
	if err != nil {
		return err
	}
	challenges, err := s.opts.LearnerSvc.Challenges(c)
	if err != nil {
		return err
	}
	return renderOK(ctx, views.DashboardProjects(s.meta(ctx, "Projects"), shell(ctx), profile, tabs, counts, projects, challenges))
}

func (s *server) dashboardCertificates(ctx echo.Context) error {
	profile, err := s.profile(ctx)
	if err != nil {
		return err
	}
	certs, err := s.opts.LearnerSvc.Certificates(ctx.Request().Context())
	if err != nil {
		return err
	}
	return renderOK(ctx, views.DashboardCertificates(s.meta(ctx, "Certificates"), shell(ctx), profile, certs))
}

func (s *server) settingsPage(ctx echo.Context) error {
	profile, err := s.profile(ctx)
	if err != nil {
		return err
	}
	form := views.SettingsForm{
		Tabs:    uistate.NewTabs(views.SettingsTabs...).Select(ctx.QueryParam("tab")),
		Profile: account.DefaultProfile,
	}
	return renderOK(ctx, views.DashboardSettings(s.meta(ctx, "Settings"), shell(ctx), profile, form))
}

// saveSettings validates the form of the posted tab. Nothing is stored.
func (s *server) saveSettings(ctx echo.Context) error {
	c := ctx.Request().Context()
	profile, err := s.profile(ctx)
	if err != nil {
		return err
	}
	form := views.SettingsForm{
		Tabs:    uistate.NewTabs(views.SettingsTabs...).Select(ctx.FormValue("tab")),
		Profile: account.DefaultProfile,
	}

	switch form.Tabs.Active() {
	case "profile":
		var data account.ProfileForm
		if err := bindForm(ctx, &data); err != nil {
			return err
		}
		form.Profile, err = s.opts.AccountSvc.SaveProfile(c, data)
	case "password":
		var data account.PasswordForm
		if err := bindForm(ctx, &data); err != nil {
			return err
		}
		err = s.opts.AccountSvc.ChangePassword(c, data)
	}

	code := http.StatusOK
	if form.Errors = s.fieldErrors(err); form.Errors != nil {
		code = http.StatusBadRequest
	} else if err != nil {
		return errors.Wrap(err, "saving settings")
	} else {
		form.Flash = settingsSaved
	}
	return render(ctx, code, views.DashboardSettings(s.meta(ctx, "Settings"), shell(ctx), profile, form))
}
