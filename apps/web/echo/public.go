package echoweb

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	g "maragu.dev/gomponents"

	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/uistate"
	"github.com/trezcool/masterly/views"
)

func (s *server) registerPublicPages(grp *echo.Group) {
	grp.GET("/", s.home)
	grp.GET("/courses", s.courses)
	grp.GET("/courses/:courseId", s.courseDetail)
	grp.GET("/certification", s.staticPage("Certification", views.Certification))
	grp.GET("/careers", s.staticPage("Careers", views.Careers))
	grp.GET("/testimonials", s.staticPage("Testimonials", views.Testimonials))
}

func (s *server) home(ctx echo.Context) error {
	catalog, err := s.opts.CourseSvc.Catalog(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "loading catalog")
	}
	if len(catalog) > 3 {
		catalog = catalog[:3]
	}
	return renderOK(ctx, views.Home(s.meta(ctx, "Learn AI. Build Real Projects."), catalog))
}

func (s *server) courses(ctx echo.Context) error {
	catalog, err := s.opts.CourseSvc.Catalog(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "loading catalog")
	}
	return renderOK(ctx, views.Courses(s.meta(ctx, "Courses"), catalog))
}

// courseDetail sends unknown course ids back to the catalog.
func (s *server) courseDetail(ctx echo.Context) error {
	c, err := s.opts.CourseSvc.Get(ctx.Request().Context(), ctx.Param("courseId"))
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return ctx.Redirect(http.StatusFound, "/courses")
		}
		return errors.Wrap(err, "getting course")
	}

	open := uistate.NewToggleSet()
	if q := ctx.QueryParams(); q.Has("open") {
		open = uistate.ParseToggleSet(q.Get("open"))
	} else if len(c.Modules) > 0 {
		open = uistate.NewToggleSet(strconv.Itoa(c.Modules[0].ID))
	}
	return renderOK(ctx, views.CourseDetail(s.meta(ctx, c.Title), c, open))
}

func (s *server) staticPage(title string, page func(views.Meta) g.Node) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return renderOK(ctx, page(s.meta(ctx, title)))
	}
}
