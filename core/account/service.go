// Package account simulates the account flows: every submission waits, then redirects.
// Nothing is stored and no credential is checked.
package account

import (
	"context"
	"net/mail"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/admin"
	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/user"
)

// Redirect targets
const (
	LoginNext  = "/dashboard"
	SignupNext = "/onboarding"
)

type Service struct {
	validate  *validator.Validate
	submitter *core.Submitter
	users     *user.Service
	mailSvc   core.EmailService
	logger    core.Logger
}

func NewService(
	validate *validator.Validate,
	submitter *core.Submitter,
	users *user.Service,
	mailSvc core.EmailService,
	logger core.Logger,
) *Service {
	return &Service{
		validate:  validate,
		submitter: submitter,
		users:     users,
		mailSvc:   mailSvc,
		logger:    logger,
	}
}

// Login validates the form then redirects to the dashboard after the submit delay.
// Unknown addresses are let in too; known ones are logged against their user.
func (svc *Service) Login(ctx context.Context, form LoginForm) (string, error) {
	form.Clean()
	if err := svc.validate.StructCtx(ctx, form); err != nil {
		return "", err
	}

	usr, err := svc.users.GetByEmail(ctx, form.Email)
	switch errors.Cause(err) {
	case nil:
		svc.logger.Info("login", core.Person{ID: strconv.Itoa(usr.ID), Name: usr.Name, Email: usr.Email})
	case user.ErrNotFound:
		svc.logger.Info("login", map[string]interface{}{"email": form.Email})
	default:
		return "", errors.Wrap(err, "looking up user")
	}
	return svc.submitter.Submit(LoginNext), nil
}

// Signup validates the form then redirects to onboarding after the submit delay.
func (svc *Service) Signup(ctx context.Context, form SignupForm) (string, error) {
	form.Clean()
	if err := svc.validate.StructCtx(ctx, form); err != nil {
		return "", err
	}
	svc.logger.Info("signup", map[string]interface{}{"email": form.Email})
	return svc.submitter.Submit(SignupNext), nil
}

// RequestPasswordReset sends the reset instructions to the given address.
// It succeeds for any valid address so that it never reveals which addresses exist.
func (svc *Service) RequestPasswordReset(ctx context.Context, form ForgotPasswordForm) error {
	form.Clean()
	if err := svc.validate.StructCtx(ctx, form); err != nil {
		return err
	}
	svc.submitter.Submit("")
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Address: form.Email}},
		Subject:      "Reset your password",
		TemplateName: "password_reset",
		TemplateData: struct{ Email string }{Email: form.Email},
	})
	return nil
}

func (svc *Service) SaveProfile(ctx context.Context, form ProfileForm) (ProfileForm, error) {
	form.Clean()
	if err := svc.validate.StructCtx(ctx, form); err != nil {
		return form, err
	}
	svc.submitter.Submit("")
	return form, nil
}

func (svc *Service) ChangePassword(ctx context.Context, form PasswordForm) error {
	if err := svc.validate.StructCtx(ctx, form); err != nil {
		return err
	}
	svc.submitter.Submit("")
	return nil
}

func (svc *Service) SavePlatformSettings(ctx context.Context, settings admin.PlatformSettings) (admin.PlatformSettings, error) {
	settings.PlatformName = core.CleanString(settings.PlatformName)
	settings.FromEmail = core.CleanString(settings.FromEmail, true /* lower */)
	settings.ReplyToEmail = core.CleanString(settings.ReplyToEmail, true /* lower */)
	if err := svc.validate.StructCtx(ctx, settings); err != nil {
		return settings, err
	}
	svc.submitter.Submit("")
	return settings, nil
}

// SaveCourse validates the course form. Nothing is stored.
func (svc *Service) SaveCourse(ctx context.Context, form course.Form) (course.Form, error) {
	form.Clean()
	if err := svc.validate.StructCtx(ctx, form); err != nil {
		return form, err
	}
	svc.submitter.Submit("")
	svc.logger.Info("course saved", map[string]interface{}{"id": form.ID, "title": form.Title})
	return form, nil
}

// SaveLesson validates the lesson form. Nothing is stored.
func (svc *Service) SaveLesson(ctx context.Context, form course.LessonForm) (course.LessonForm, error) {
	form.Clean()
	if err := svc.validate.StructCtx(ctx, form); err != nil {
		return form, err
	}
	svc.submitter.Submit("")
	svc.logger.Info("lesson saved", map[string]interface{}{"id": form.ID, "status": form.Status})
	return form, nil
}
