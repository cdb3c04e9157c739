package echoweb

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/masterly/core/listing"
)

func (s *server) registerAPI(grp *echo.Group) {
	grp.GET("/routes", s.routeTable)

	ag := grp.Group("/admin")
	ag.GET("/users", listAPI(s.opts.UserSvc.Query))
	ag.GET("/courses", listAPI(s.opts.CourseSvc.Query))
	ag.GET("/certifications", listAPI(s.opts.CertificateSvc.Query))
	ag.GET("/submissions", listAPI(s.opts.SubmissionSvc.Query))
	ag.GET("/security", listAPI(s.opts.AuditSvc.Query))
}

// filterPtr constrains F to the query filters, whose Clean has a pointer receiver.
type filterPtr[F any] interface {
	*F
	cleaner
}

// listAPI serves one filtered admin list as a JSON page.
func listAPI[T, F any, PF filterPtr[F]](query func(context.Context, F) (listing.Page[T], error)) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var filter F
		if err := bindQuery(ctx, PF(&filter)); err != nil {
			return err
		}
		page, err := query(ctx.Request().Context(), filter)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, page)
	}
}

func (s *server) routeTable(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.Routes())
}

