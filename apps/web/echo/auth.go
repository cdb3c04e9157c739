package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/account"
	"github.com/trezcool/masterly/core/onboarding"
	"github.com/trezcool/masterly/core/wizard"
	"github.com/trezcool/masterly/views"
)

func (s *server) registerAuthPages(grp *echo.Group) {
	grp.GET("/login", s.loginPage)
	grp.POST("/login", s.login)
	grp.GET("/signup", s.signupPage)
	grp.POST("/signup", s.signup)
	grp.GET("/forgot-password", s.forgotPasswordPage)
	grp.POST("/forgot-password", s.forgotPassword)
	grp.GET("/onboarding", s.onboardingPage)
	grp.POST("/onboarding", s.onboard)
}

// fieldErrors returns the per-field messages of a validation error, nil for any other error.
func (s *server) fieldErrors(err error) map[string]string {
	return core.FieldErrors(errors.Cause(err), s.opts.Translator)
}

func (s *server) loginPage(ctx echo.Context) error {
	return renderOK(ctx, views.Login(s.meta(ctx, "Sign in"), account.LoginForm{}, nil))
}

func (s *server) login(ctx echo.Context) error {
	var form account.LoginForm
	if err := bindForm(ctx, &form); err != nil {
		return err
	}
	next, err := s.opts.AccountSvc.Login(ctx.Request().Context(), form)
	if errs := s.fieldErrors(err); errs != nil {
		return render(ctx, http.StatusBadRequest, views.Login(s.meta(ctx, "Sign in"), form, errs))
	} else if err != nil {
		return errors.Wrap(err, "signing in")
	}
	return ctx.Redirect(http.StatusSeeOther, next)
}

func (s *server) signupPage(ctx echo.Context) error {
	return renderOK(ctx, views.Signup(s.meta(ctx, "Sign up"), account.SignupForm{}, nil))
}

func (s *server) signup(ctx echo.Context) error {
	var form account.SignupForm
	if err := bindForm(ctx, &form); err != nil {
		return err
	}
	next, err := s.opts.AccountSvc.Signup(ctx.Request().Context(), form)
	if errs := s.fieldErrors(err); errs != nil {
		return render(ctx, http.StatusBadRequest, views.Signup(s.meta(ctx, "Sign up"), form, errs))
	} else if err != nil {
		return errors.Wrap(err, "signing up")
	}
	return ctx.Redirect(http.StatusSeeOther, next)
}

func (s *server) forgotPasswordPage(ctx echo.Context) error {
	return renderOK(ctx, views.ForgotPassword(s.meta(ctx, "Reset password"), account.ForgotPasswordForm{}, nil, false))
}

func (s *server) forgotPassword(ctx echo.Context) error {
	var form account.ForgotPasswordForm
	if err := bindForm(ctx, &form); err != nil {
		return err
	}
	form.Clean()
	err := s.opts.AccountSvc.RequestPasswordReset(ctx.Request().Context(), form)
	if errs := s.fieldErrors(err); errs != nil {
		return render(ctx, http.StatusBadRequest, views.ForgotPassword(s.meta(ctx, "Reset password"), form, errs, false))
	} else if err != nil {
		return errors.Wrap(err, "requesting password reset")
	}
	return renderOK(ctx, views.ForgotPassword(s.meta(ctx, "Check your email"), form, nil, true))
}

func (s *server) onboardingPage(ctx echo.Context) error {
	state, runID := s.loadOnboarding(ctx)
	if err := s.saveOnboarding(ctx, state, runID); err != nil {
		return err
	}
	return renderOK(ctx, views.Onboarding(s.meta(ctx, "Welcome"), s.wizard, state, ""))
}

// onboard applies one posted action. The new state is saved and the page reloaded;
// finishing or skipping clears it and lands on the dashboard.
func (s *server) onboard(ctx echo.Context) error {
	state, runID := s.loadOnboarding(ctx)

	var cmd onboarding.Command
	if err := bindForm(ctx, &cmd); err != nil {
		return err
	}
	if err := s.opts.Validate.StructCtx(ctx.Request().Context(), cmd); err != nil {
		return render(ctx, http.StatusBadRequest, views.Onboarding(s.meta(ctx, "Welcome"), s.wizard, state, onboarding.MsgUnknownOption))
	}

	next, outcome, err := onboarding.Apply(s.wizard, state, cmd)
	if errs := s.fieldErrors(err); errs != nil {
		return render(ctx, http.StatusUnprocessableEntity, views.Onboarding(s.meta(ctx, "Welcome"), s.wizard, next, errs["value"]))
	} else if err != nil {
		return errors.Wrap(err, "applying onboarding command")
	}

	if outcome == wizard.Completed {
		s.opts.Logger.Info("onboarding completed", map[string]interface{}{"run": runID, "answers": next.Answers})
		s.clearOnboarding(ctx)
		return ctx.Redirect(http.StatusSeeOther, onboarding.CompletedPath)
	}
	if err := s.saveOnboarding(ctx, next, runID); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/onboarding")
}
