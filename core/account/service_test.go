package account_test

import (
	"context"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/trezcool/masterly/assets"
	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/account"
	"github.com/trezcool/masterly/core/admin"
	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/user"
	emailsvc "github.com/trezcool/masterly/services/email"
	logsvc "github.com/trezcool/masterly/services/logger"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

type testEnv struct {
	svc        *account.Service
	mailSvc    *emailsvc.ConsoleServiceMock
	translator ut.Translator
	logs       *observer.ObservedLogs
}

func setup(t *testing.T, delay time.Duration) testEnv {
	t.Helper()
	conf := core.NewTestConfig()
	obs, logs := observer.New(zapcore.InfoLevel)
	logger := logsvc.NewRollbarLogger(zap.New(obs), conf)
	mailSvc := emailsvc.NewConsoleServiceMock(core.NewEmailRenderer(assets.EmailTemplates(), conf), logger, conf)

	db, err := mockdb.Open()
	require.NoError(t, err)
	users := user.NewService(mockdb.NewUserRepository(db))

	validate, translator := core.NewValidator()
	return testEnv{
		svc:        account.NewService(validate, core.NewSubmitter(delay), users, mailSvc, logger),
		mailSvc:    mailSvc,
		translator: translator,
		logs:       logs,
	}
}

// fieldErrors translates err with the translator the service's validator was built with.
func (env testEnv) fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	return core.FieldErrors(vErrs, env.translator)
}

func TestLogin(t *testing.T) {
	env := setup(t, 0)
	ctx := context.Background()

	next, err := env.svc.Login(ctx, account.LoginForm{Email: " Alex@Example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", next)

	_, err = env.svc.Login(ctx, account.LoginForm{Email: "not-an-email"})
	assert.Equal(t, map[string]string{
		"email":    "email must be a valid email address",
		"password": "this field is required",
	}, env.fieldErrors(t, err))
}

func TestLogin_KnownUser(t *testing.T) {
	env := setup(t, 0)

	_, err := env.svc.Login(context.Background(), account.LoginForm{Email: "Sarah.Chen@example.com", Password: "secret"})
	require.NoError(t, err)

	entries := env.logs.FilterMessage("login").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].ContextMap()["person"])
}

func TestLogin_ClosedDB(t *testing.T) {
	conf := core.NewTestConfig()
	logger := logsvc.NewRollbarLogger(zap.NewNop(), conf)
	db, err := mockdb.Open()
	require.NoError(t, err)
	require.NoError(t, db.Close())

	validate, _ := core.NewValidator()
	svc := account.NewService(validate, core.NewSubmitter(0), user.NewService(mockdb.NewUserRepository(db)), nil, logger)
	_, err = svc.Login(context.Background(), account.LoginForm{Email: "a@b.co", Password: "x"})
	assert.True(t, core.IsShutdown(err))
}

func TestLogin_Delay(t *testing.T) {
	env := setup(t, 20*time.Millisecond)
	start := time.Now()
	_, err := env.svc.Login(context.Background(), account.LoginForm{Email: "a@b.co", Password: "x"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSignup(t *testing.T) {
	env := setup(t, 0)
	svc := env.svc
	ctx := context.Background()

	form := account.SignupForm{FirstName: "Alex", LastName: "Johnson", Email: "alex@example.com", Password: "pwd", AgreeTerms: "on"}
	next, err := svc.Signup(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "/onboarding", next)

	form.AgreeTerms = ""
	_, err = svc.Signup(ctx, form)
	assert.Equal(t, map[string]string{"agree_terms": "this field is required"}, env.fieldErrors(t, err))
}

func TestRequestPasswordReset(t *testing.T) {
	env := setup(t, 0)
	svc, mailSvc := env.svc, env.mailSvc
	ctx := context.Background()

	require.NoError(t, svc.RequestPasswordReset(ctx, account.ForgotPasswordForm{Email: "Nobody@Example.com"}))
	sent := mailSvc.SentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "nobody@example.com", sent[0].To[0].Address)
	assert.Contains(t, sent[0].TextContent, "nobody@example.com")

	err := svc.RequestPasswordReset(ctx, account.ForgotPasswordForm{})
	assert.Equal(t, map[string]string{"email": "this field is required"}, env.fieldErrors(t, err))
	assert.Len(t, mailSvc.SentMessages(), 1)
}

func TestChangePassword(t *testing.T) {
	env := setup(t, 0)
	svc := env.svc
	ctx := context.Background()

	require.NoError(t, svc.ChangePassword(ctx, account.PasswordForm{Current: "a", New: "b", Confirm: "b"}))

	err := svc.ChangePassword(ctx, account.PasswordForm{Current: "a", New: "b", Confirm: "c"})
	assert.Equal(t, map[string]string{"confirm_password": "the two values do not match"}, env.fieldErrors(t, err))
}

func TestSaveProfile(t *testing.T) {
	env := setup(t, 0)
	svc := env.svc
	got, err := svc.SaveProfile(context.Background(), account.ProfileForm{FirstName: " Alex ", LastName: "J", Email: "A@B.CO"})
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.FirstName)
	assert.Equal(t, "a@b.co", got.Email)

	_, err = svc.SaveProfile(context.Background(), account.ProfileForm{FirstName: "A", LastName: "J", Email: "a@b.co", Website: "nope"})
	assert.Contains(t, env.fieldErrors(t, err), "website")
}

func TestSavePlatformSettings(t *testing.T) {
	env := setup(t, 0)
	svc := env.svc
	settings := admin.PlatformSettings{
		PlatformName:     "Masterly AI",
		PrimaryColor:     "#FF4D2E",
		SecondaryColor:   "#2F45FF",
		FromName:         "Masterly AI",
		FromEmail:        "noreply@masterly.ai",
		CertificateTitle: "Certificate of Completion",
		IssuerName:       "Masterly AI",
	}
	_, err := svc.SavePlatformSettings(context.Background(), settings)
	require.NoError(t, err)

	settings.PrimaryColor = "coral"
	_, err = svc.SavePlatformSettings(context.Background(), settings)
	assert.Contains(t, env.fieldErrors(t, err), "primary_color")
}

func TestSaveCourse(t *testing.T) {
	env := setup(t, 0)
	form := course.Form{Title: " LLM Ops ", Description: "Run models", Level: course.LevelExpert, Category: "Advanced"}

	got, err := env.svc.SaveCourse(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "LLM Ops", got.Title)
	assert.Len(t, env.logs.FilterMessage("course saved").AllUntimed(), 1)

	form.Description = ""
	_, err = env.svc.SaveCourse(context.Background(), form)
	assert.Equal(t, map[string]string{"description": "this field is required"}, env.fieldErrors(t, err))
}

func TestSaveLesson(t *testing.T) {
	env := setup(t, 0)
	form := course.LessonForm{ID: 101, Title: "What is AI?", Type: course.LessonVideo, Status: course.StatusReview}

	_, err := env.svc.SaveLesson(context.Background(), form)
	require.NoError(t, err)

	form.Type = "podcast"
	_, err = env.svc.SaveLesson(context.Background(), form)
	assert.Contains(t, env.fieldErrors(t, err), "type")
}
