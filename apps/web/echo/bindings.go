package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	g "maragu.dev/gomponents"

	"github.com/trezcool/masterly/core/uistate"
	"github.com/trezcool/masterly/views"
)

// cleaner is implemented by every query filter and form.
type cleaner interface {
	Clean()
}

var binder = new(echo.DefaultBinder)

// bindQuery fills dst from the query string only, then normalizes it.
func bindQuery(ctx echo.Context, dst cleaner) error {
	if err := binder.BindQueryParams(ctx, dst); err != nil {
		return errors.Wrap(err, "binding query")
	}
	dst.Clean()
	return nil
}

// bindForm fills dst from the posted form only.
func bindForm(ctx echo.Context, dst interface{}) error {
	if err := binder.BindBody(ctx, dst); err != nil {
		return errors.Wrap(err, "binding form")
	}
	return nil
}

func (s *server) meta(ctx echo.Context, title string) views.Meta {
	return views.Meta{AppName: s.opts.Conf.AppName, Title: title, Path: ctx.Request().URL.Path}
}

// shell reads the layout state; defaultExpanded applies when the query does not say.
func shell(ctx echo.Context, defaultExpanded ...string) uistate.Shell {
	return uistate.ShellFromQuery(ctx.QueryParams(), defaultExpanded...)
}

func render(ctx echo.Context, code int, page g.Node) error {
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	res.WriteHeader(code)
	return errors.Wrap(page.Render(res), "rendering page")
}

func renderOK(ctx echo.Context, page g.Node) error {
	return render(ctx, http.StatusOK, page)
}
