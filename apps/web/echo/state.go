package echoweb

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/wizard"
)

const onboardingCookie = "masterly_onboarding"

// onboardingClaims carry the wizard state between requests. The token id names the run.
type onboardingClaims struct {
	jwt.RegisteredClaims
	Step    int               `json:"step"`
	Answers map[string]string `json:"answers,omitempty"`
}

// stateCodec signs and verifies the onboarding state cookie.
type stateCodec struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func newStateCodec(conf *core.Config) *stateCodec {
	return &stateCodec{
		key:    []byte(conf.SecretKey),
		issuer: conf.AppName,
		ttl:    conf.OnboardingTTL,
		now:    time.Now,
	}
}

func (c *stateCodec) encode(state wizard.State, runID string) (string, error) {
	now := c.now()
	claims := onboardingClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        runID,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Step:    state.Step,
		Answers: state.Answers,
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	return ss, errors.Wrap(err, "signing onboarding state")
}

func (c *stateCodec) decode(token string) (wizard.State, string, error) {
	var claims onboardingClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (interface{}, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return wizard.State{}, "", errors.Wrap(err, "parsing onboarding state")
	}
	return wizard.State{Step: claims.Step, Answers: claims.Answers}, claims.ID, nil
}

// loadOnboarding returns the visitor's wizard state, or a fresh run when the cookie
// is missing, expired or tampered with.
func (s *server) loadOnboarding(ctx echo.Context) (wizard.State, string) {
	if cookie, err := ctx.Cookie(onboardingCookie); err == nil {
		if state, runID, err := s.state.decode(cookie.Value); err == nil {
			return s.wizard.Normalize(state), runID
		}
	}
	return s.wizard.Start(), uuid.NewString()
}

func (s *server) saveOnboarding(ctx echo.Context, state wizard.State, runID string) error {
	token, err := s.state.encode(state, runID)
	if err != nil {
		return err
	}
	ctx.SetCookie(&http.Cookie{
		Name:     onboardingCookie,
		Value:    token,
		Path:     "/onboarding",
		MaxAge:   int(s.state.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !s.opts.Conf.Debug,
	})
	return nil
}

func (s *server) clearOnboarding(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     onboardingCookie,
		Path:     "/onboarding",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
