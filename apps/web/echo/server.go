// Package echoweb serves every page of the site, the admin JSON lists and the static assets.
package echoweb

import (
	"context"
	"net/http"
	"sort"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trezcool/masterly/assets"
	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/account"
	"github.com/trezcool/masterly/core/admin"
	"github.com/trezcool/masterly/core/audit"
	"github.com/trezcool/masterly/core/certificate"
	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/learner"
	"github.com/trezcool/masterly/core/onboarding"
	"github.com/trezcool/masterly/core/submission"
	"github.com/trezcool/masterly/core/user"
	"github.com/trezcool/masterly/core/wizard"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

type (
	Options struct {
		Conf           *core.Config
		Logger         core.Logger
		Validate       *validator.Validate
		Translator     ut.Translator
		SignalShutdown func()
		DB             *mockdb.DB

		UserSvc        *user.Service
		CourseSvc      *course.Service
		CertificateSvc *certificate.Service
		SubmissionSvc  *submission.Service
		AuditSvc       *audit.Service
		LearnerSvc     *learner.Service
		AdminSvc       *admin.Service
		AccountSvc     *account.Service
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
		Routes() []Route
	}

	// Route is one entry of the route table.
	Route struct {
		Method string `json:"method"`
		Path   string `json:"path"`
	}

	server struct {
		opts    *Options
		app     *echo.Echo
		wizard  *wizard.Wizard
		state   *stateCodec
		metrics *metrics
	}
)

var _ Server = (*server)(nil) // interface compliance check

func NewServer(opts *Options) Server {
	if opts.SignalShutdown == nil {
		opts.SignalShutdown = func() {}
	}
	s := &server{
		opts:    opts,
		app:     echo.New(),
		wizard:  onboarding.New(),
		state:   newStateCodec(opts.Conf),
		metrics: newMetrics(prometheus.NewRegistry()),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.HideBanner = true
	s.app.HidePort = true
	s.app.Debug = conf.Debug
	s.app.Server.ReadTimeout = conf.Server.ReadTimeout
	s.app.Server.WriteTimeout = conf.Server.WriteTimeout

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(requestIDMiddleware())
	s.app.Use(s.metrics.middleware())
	if !conf.Server.DisableReqLogs {
		s.app.Use(requestLoggerMiddleware(s.opts.Logger))
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = s.newAppHTTPErrorHandler()

	s.app.StaticFS("/static", assets.Static())
	s.app.GET("/healthz", s.healthz)
	s.app.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	s.registerPublicPages(s.app.Group(""))
	s.registerAuthPages(s.app.Group(""))
	s.registerDashboardPages(s.app.Group("/dashboard"))
	s.registerAdminPages(s.app.Group("/admin"))
	s.registerAPI(s.app.Group("/api"))
}

// Start blocks until the server stops. A graceful Stop yields a nil error.
func (s *server) Start() error {
	s.opts.Logger.Info("server listening", map[string]interface{}{"address": s.opts.Conf.Server.Address})
	if err := s.app.Start(s.opts.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "starting server")
	}
	return nil
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

// Routes lists the registered routes sorted by path then method.
func (s *server) Routes() []Route {
	seen := make(map[Route]bool)
	var routes []Route
	for _, r := range s.app.Routes() {
		if r.Method == echo.RouteNotFound {
			continue
		}
		rt := Route{Method: r.Method, Path: r.Path}
		if !seen[rt] {
			seen[rt] = true
			routes = append(routes, rt)
		}
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

func (s *server) healthz(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok", "build": s.opts.Conf.Build})
}
