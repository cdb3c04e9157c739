package echoweb

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core"
)

func TestAppHTTPErrorHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	s := srv.(*server)

	shutdown := false
	s.opts.SignalShutdown = func() { shutdown = true }

	s.app.GET("/boom", func(echo.Context) error { return errors.New("boom") })
	s.app.GET("/teapot", func(echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "short and stout") })
	s.app.GET("/api/invalid", func(echo.Context) error {
		return errors.Wrap(core.NewValidationError(errors.New("invalid"), core.FieldError{Field: "course", Error: "must be a number"}), "parsing")
	})

	runHTTPTests(t, srv, []httpTest{
		{name: "page: server error", path: "/boom", wantCode: http.StatusInternalServerError, wantBody: []string{"Something went wrong"}},
		{name: "page: http error", path: "/teapot", wantCode: http.StatusTeapot, wantBody: []string{"short and stout"}},
		{name: "page: validation error", path: "/admin/content?course=lol", wantCode: http.StatusBadRequest, wantBody: []string{"course must be a number"}},
		{name: "api: validation error", path: "/api/invalid", wantCode: http.StatusBadRequest, wantData: []byte(`{"course":"must be a number"}`)},
		{name: "head", method: http.MethodHead, path: "/lol", wantCode: http.StatusNotFound},
		{name: "api: db open", path: "/api/admin/users", wantCode: http.StatusOK},
	})
	assert.False(t, shutdown)

	require.NoError(t, s.opts.DB.Close())
	runHTTPTests(t, srv, []httpTest{
		{
			name:     "api: db closed",
			path:     "/api/admin/users",
			wantCode: http.StatusInternalServerError,
			wantData: []byte(`{"error":"Internal Server Error"}`),
		},
	})
	assert.True(t, shutdown)
}
