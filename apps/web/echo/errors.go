package echoweb

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/views"
)

var errHttpNotFound = echo.NewHTTPError(http.StatusNotFound, "not found")

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// Pages get an HTML error page; /api routes get JSON.
// s.opts.SignalShutdown is called whenever a core shutdown error is caught.
func (s *server) newAppHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors, *core.ValidationError:
			code = http.StatusBadRequest
			if flds := core.FieldErrors(origErr, s.opts.Translator); len(flds) > 0 {
				message = flds
			} else {
				message = origErr.Error()
			}
		default: // any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg

			s.opts.Logger.Error(msg, errors.Wrap(err, msg), map[string]interface{}{
				"method": ctx.Request().Method,
				"uri":    ctx.Request().RequestURI,
				"id":     ctx.Response().Header().Get(echo.HeaderXRequestID),
			})

			// shutting down...
			if core.IsShutdown(err) {
				s.opts.SignalShutdown()
			}
		}

		if ctx.Response().Committed {
			return
		}
		if ctx.Request().Method == http.MethodHead { // Issue #608
			err = ctx.NoContent(code)
		} else if isAPIRequest(ctx) {
			if ctx.Echo().Debug && code == http.StatusInternalServerError {
				message = err.Error()
			}
			if m, ok := message.(string); ok {
				message = echo.Map{"error": m}
			}
			err = ctx.JSON(code, message)
		} else {
			err = s.renderError(ctx, code, message)
		}
		if err != nil {
			s.opts.Logger.Error("sending error response", err)
		}
	}
}

func (s *server) renderError(ctx echo.Context, code int, message interface{}) error {
	meta := s.meta(ctx, http.StatusText(code))
	if code == http.StatusNotFound {
		meta.Title = "Page not found"
		return render(ctx, code, views.NotFound(meta))
	}
	var msg string
	switch m := message.(type) {
	case string:
		msg = m
	case map[string]string:
		msg = joinFieldErrors(m)
	}
	if msg == "" || code == http.StatusInternalServerError {
		msg = "Something went wrong. Please try again."
	}
	return render(ctx, code, views.ErrorPage(meta, code, msg))
}

// joinFieldErrors renders {field: message} as "field message; ...", sorted by field.
func joinFieldErrors(flds map[string]string) string {
	keys := make([]string, 0, len(flds))
	for k := range flds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+flds[k])
	}
	return strings.Join(parts, "; ")
}

// intQuery parses the optional integer query param name.
func intQuery(ctx echo.Context, name string) (n int, ok bool, err error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, false, nil
	}
	if n, err = strconv.Atoi(raw); err != nil {
		return 0, false, core.NewValidationError(err, core.FieldError{Field: name, Error: "must be a number"})
	}
	return n, true, nil
}

func isAPIRequest(ctx echo.Context) bool {
	path := ctx.Request().URL.Path
	return path == "/api" || strings.HasPrefix(path, "/api/") || path == "/healthz"
}
