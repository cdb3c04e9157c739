package echoweb

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/admin"
	"github.com/trezcool/masterly/core/audit"
	"github.com/trezcool/masterly/core/certificate"
	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/submission"
	"github.com/trezcool/masterly/core/uistate"
	"github.com/trezcool/masterly/core/user"
	"github.com/trezcool/masterly/views"
)

// Modules open by default in the content editor.
var defaultOpenModules = []string{"1", "2", "3"}

const defaultTimeRange = "7d"

func (s *server) registerAdminPages(grp *echo.Group) {
	grp.GET("", s.adminOverview)
	grp.GET("/users", s.adminUsers)
	grp.GET("/courses", s.adminCourses)
	grp.POST("/courses", s.saveAdminCourse)
	grp.GET("/content", s.adminContent)
	grp.POST("/content", s.saveAdminLesson)
	grp.GET("/analytics", s.adminAnalytics)
	grp.GET("/certifications", s.adminCertifications)
	grp.GET("/submissions", s.adminSubmissions)
	grp.GET("/notifications", s.adminNotifications)
	grp.GET("/roles", s.adminRoles)
	grp.GET("/settings", s.adminSettingsPage)
	grp.POST("/settings", s.saveAdminSettings)
	grp.GET("/security", s.adminSecurity)
}

func adminShell(ctx echo.Context) uistate.Shell {
	return shell(ctx, views.AdminContentMenu)
}

func (s *server) adminOverview(ctx echo.Context) error {
	ov, err := s.opts.AdminSvc.Overview(ctx.Request().Context())
	if err != nil {
		return err
	}
	return renderOK(ctx, views.AdminOverview(s.meta(ctx, "Admin"), adminShell(ctx), ov))
}

// adminUsers lists users. ?selected= holds the selected rows, ?user= opens a user's details.
func (s *server) adminUsers(ctx echo.Context) error {
	c := ctx.Request().Context()
	list := views.UserList{Selected: uistate.ParseToggleSet(ctx.QueryParam("selected"))}
	if err := bindQuery(ctx, &list.Filter); err != nil {
		return err
	}
	page, err := s.opts.UserSvc.Query(c, list.Filter)
	if err != nil {
		return err
	}
	list.Page = page

	id, ok, err := intQuery(ctx, "user")
	if err != nil {
		return err
	} else if ok {
		usr, err := s.opts.UserSvc.Get(c, id)
		if errors.Cause(err) == user.ErrNotFound {
			return errHttpNotFound
		} else if err != nil {
			return errors.Wrap(err, "getting user")
		}
		list.Detail = &usr
	}
	return renderOK(ctx, views.AdminUsers(s.meta(ctx, "Users"), adminShell(ctx), list))
}

// courseList lists courses and opens the course form given by ?edit=<id>|new.
func (s *server) courseList(ctx echo.Context) (views.CourseList, error) {
	c := ctx.Request().Context()
	var list views.CourseList
	if err := bindQuery(ctx, &list.Filter); err != nil {
		return list, err
	}
	page, err := s.opts.CourseSvc.Query(c, list.Filter)
	if err != nil {
		return list, err
	}
	list.Page = page

	switch edit := ctx.QueryParam("edit"); edit {
	case "":
	case course.NewID:
		f := course.NewForm(course.Course{})
		list.Form = &f
	default:
		id, err := strconv.Atoi(edit)
		if err != nil {
			return list, core.NewValidationError(err, core.FieldError{Field: "edit", Error: "must be a number"})
		}
		crs, _, err := s.opts.CourseSvc.Content(c, id)
		if errors.Cause(err) == course.ErrNotFound {
			return list, errHttpNotFound
		} else if err != nil {
			return list, errors.Wrap(err, "getting course")
		}
		f := course.NewForm(crs)
		list.Form = &f
	}
	return list, nil
}

func (s *server) adminCourses(ctx echo.Context) error {
	list, err := s.courseList(ctx)
	if err != nil {
		return err
	}
	return renderOK(ctx, views.AdminCourses(s.meta(ctx, "Courses"), adminShell(ctx), list))
}

// saveAdminCourse validates the posted course form. Nothing is stored.
func (s *server) saveAdminCourse(ctx echo.Context) error {
	list, err := s.courseList(ctx)
	if err != nil {
		return err
	}
	var form course.Form
	if err := bindForm(ctx, &form); err != nil {
		return err
	}

	form, err = s.opts.AccountSvc.SaveCourse(ctx.Request().Context(), form)
	if errs := s.fieldErrors(err); errs != nil {
		list.Form, list.Errors = &form, errs
		return render(ctx, http.StatusBadRequest, views.AdminCourses(s.meta(ctx, "Courses"), adminShell(ctx), list))
	} else if err != nil {
		return errors.Wrap(err, "saving course")
	}
	list.Form, list.Flash = nil, courseSaved
	return renderOK(ctx, views.AdminCourses(s.meta(ctx, "Courses"), adminShell(ctx), list))
}

// contentEditor loads the course given by ?course=<id>, the first course by default,
// with the lesson editor (?lesson=<id>) and version history (?history=open) panels.
func (s *server) contentEditor(ctx echo.Context) (views.ContentEditor, error) {
	c := ctx.Request().Context()
	var ed views.ContentEditor
	all, err := s.opts.CourseSvc.Query(c, course.QueryFilter{})
	if err != nil {
		return ed, err
	}
	if len(all.Items) == 0 {
		return ed, errHttpNotFound
	}

	id, ok, err := intQuery(ctx, "course")
	if err != nil {
		return ed, err
	} else if !ok {
		id = all.Items[0].ID
	}
	crs, versions, err := s.opts.CourseSvc.Content(c, id)
	if errors.Cause(err) == course.ErrNotFound {
		return ed, errHttpNotFound
	} else if err != nil {
		return ed, errors.Wrap(err, "loading course content")
	}

	open := uistate.NewToggleSet(defaultOpenModules...)
	if q := ctx.QueryParams(); q.Has("open") {
		open = uistate.ParseToggleSet(q.Get("open"))
	} else if id != all.Items[0].ID {
		open = uistate.NewToggleSet()
		if len(crs.Modules) > 0 {
			open = uistate.NewToggleSet(strconv.Itoa(crs.Modules[0].ID))
		}
	}
	ed = views.ContentEditor{
		Course:   crs,
		Courses:  all.Items,
		Versions: versions,
		Open:     open,
		History:  ctx.QueryParam("history") == "open",
	}

	lessonID, ok, err := intQuery(ctx, "lesson")
	if err != nil {
		return ed, err
	} else if ok {
		l, found := crs.Lesson(lessonID)
		if !found {
			return ed, errHttpNotFound
		}
		f := course.NewLessonForm(l)
		ed.Lesson = &f
	}
	return ed, nil
}

func (s *server) adminContent(ctx echo.Context) error {
	ed, err := s.contentEditor(ctx)
	if err != nil {
		return err
	}
	return renderOK(ctx, views.AdminContent(s.meta(ctx, "Modules & Lessons"), adminShell(ctx), ed))
}

// saveAdminLesson validates the posted lesson form. Nothing is stored.
func (s *server) saveAdminLesson(ctx echo.Context) error {
	ed, err := s.contentEditor(ctx)
	if err != nil {
		return err
	}
	if ed.Lesson == nil {
		return errHttpNotFound
	}
	form := course.LessonForm{ID: ed.Lesson.ID}
	if err := bindForm(ctx, &form); err != nil {
		return err
	}
	form.ID = ed.Lesson.ID

	form, err = s.opts.AccountSvc.SaveLesson(ctx.Request().Context(), form)
	if errs := s.fieldErrors(err); errs != nil {
		ed.Lesson, ed.Errors = &form, errs
		return render(ctx, http.StatusBadRequest, views.AdminContent(s.meta(ctx, "Modules & Lessons"), adminShell(ctx), ed))
	} else if err != nil {
		return errors.Wrap(err, "saving lesson")
	}
	ed.Lesson, ed.Flash = nil, lessonSaved
	return renderOK(ctx, views.AdminContent(s.meta(ctx, "Modules & Lessons"), adminShell(ctx), ed))
}

func (s *server) adminAnalytics(ctx echo.Context) error {
	tabs := uistate.NewTabs(views.AnalyticsTabs...).Select(ctx.QueryParam("tab"))
	timeRange := defaultTimeRange
	for _, r := range admin.TimeRanges {
		if r == ctx.QueryParam("range") {
			timeRange = r
		}
	}
	stats, charts, err := s.opts.AdminSvc.Analytics(ctx.Request().Context(), tabs.Active())
	if err != nil {
		return err
	}
	return renderOK(ctx, views.AdminAnalytics(s.meta(ctx, "Analytics"), adminShell(ctx), tabs, timeRange, stats, charts))
}

// adminCertifications lists certificates. ?preview=<id> opens a certificate preview.
func (s *server) adminCertifications(ctx echo.Context) error {
	c := ctx.Request().Context()
	var list views.CertificateList
	if err := bindQuery(ctx, &list.Filter); err != nil {
		return err
	}
	page, err := s.opts.CertificateSvc.Query(c, list.Filter)
	if err != nil {
		return err
	}
	list.Page = page

	if id := ctx.QueryParam("preview"); id != "" {
		cert, err := s.opts.CertificateSvc.Get(c, id)
		if errors.Cause(err) == certificate.ErrNotFound {
			return errHttpNotFound
		} else if err != nil {
			return errors.Wrap(err, "getting certificate")
		}
		list.Preview = &cert
	}
	return renderOK(ctx, views.AdminCertifications(s.meta(ctx, "Certifications"), adminShell(ctx), list))
}

func (s *server) adminSubmissions(ctx echo.Context) error {
	c := ctx.Request().Context()
	var filter submission.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	page, err := s.opts.SubmissionSvc.Query(c, filter)
	if err != nil {
		return err
	}
	counts, err := s.opts.SubmissionSvc.Counts(c)
	if err != nil {
		return err
	}
	return renderOK(ctx, views.AdminSubmissions(s.meta(ctx, "Submissions"), adminShell(ctx), filter, page, counts))
}

// adminNotifications shows one of the announcements, history or templates tabs.
func (s *server) adminNotifications(ctx echo.Context) error {
	c := ctx.Request().Context()
	nc := views.NotificationCenter{Tabs: uistate.NewTabs(views.NotificationTabs...).Select(ctx.QueryParam("tab"))}
	var err error
	switch nc.Tabs.Active() {
	case "history":
		nc.History, err = s.opts.AdminSvc.NotificationHistory(c)
	case "templates":
		nc.Templates, err = s.opts.AdminSvc.NotificationTemplates(c)
	default:
		nc.Announcements, err = s.opts.AdminSvc.Announcements(c)
	}
	if err != nil {
		return err
	}
	return renderOK(ctx, views.AdminNotifications(s.meta(ctx, "Notifications"), adminShell(ctx), nc))
}

func (s *server) adminRoles(ctx echo.Context) error {
	c := ctx.Request().Context()
	roles, err := s.opts.AdminSvc.Roles(c)
	if err != nil {
		return err
	}
	team, err := s.opts.AdminSvc.Team(c)
	if err != nil {
		return err
	}
	selected, _ := strconv.Atoi(ctx.QueryParam("role")) // 0 selects the first role
	return renderOK(ctx, views.AdminRoles(s.meta(ctx, "Roles & Permissions"), adminShell(ctx), roles, team, selected))
}

func (s *server) adminSettingsPage(ctx echo.Context) error {
	settings, err := s.opts.AdminSvc.Settings(ctx.Request().Context())
	if err != nil {
		return err
	}
	return renderOK(ctx, views.AdminSettings(s.meta(ctx, "Settings"), adminShell(ctx), settings, nil, ""))
}

// saveAdminSettings validates the posted settings. Nothing is stored.
func (s *server) saveAdminSettings(ctx echo.Context) error {
	c := ctx.Request().Context()
	settings, err := s.opts.AdminSvc.Settings(c)
	if err != nil {
		return err
	}
	if err := bindForm(ctx, &settings); err != nil {
		return err
	}
	form, err := ctx.FormParams()
	if err != nil {
		return errors.Wrap(err, "reading settings form")
	}
	applyToggles(settings.Features, "feature_", form.Has)
	applyToggles(settings.Verification, "verification_", form.Has)

	settings, err = s.opts.AccountSvc.SavePlatformSettings(c, settings)
	if errs := s.fieldErrors(err); errs != nil {
		return render(ctx, http.StatusBadRequest, views.AdminSettings(s.meta(ctx, "Settings"), adminShell(ctx), settings, errs, ""))
	} else if err != nil {
		return errors.Wrap(err, "saving settings")
	}
	return renderOK(ctx, views.AdminSettings(s.meta(ctx, "Settings"), adminShell(ctx), settings, nil, settingsSaved))
}

// applyToggles sets each toggle from the presence of its checkbox.
func applyToggles(toggles []admin.Toggle, prefix string, checked func(string) bool) {
	for i := range toggles {
		toggles[i].Enabled = checked(prefix + toggles[i].Key)
	}
}

func (s *server) adminSecurity(ctx echo.Context) error {
	c := ctx.Request().Context()
	var filter audit.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	page, err := s.opts.AuditSvc.Query(c, filter)
	if err != nil {
		return err
	}
	logins, err := s.opts.AuditSvc.LoginHistory(c)
	if err != nil {
		return err
	}
	return renderOK(ctx, views.AdminSecurity(s.meta(ctx, "Security"), adminShell(ctx), filter, page, logins))
}
