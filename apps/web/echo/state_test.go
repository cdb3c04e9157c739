package echoweb

import (
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/onboarding"
	"github.com/trezcool/masterly/core/wizard"
)

func TestStateCodec(t *testing.T) {
	conf := core.NewTestConfig()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := newStateCodec(conf)
	codec.now = func() time.Time { return now }

	state := wizard.State{Step: 2, Answers: map[string]string{"goal": "career"}}
	token, err := codec.encode(state, "run-1")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		got, runID, err := codec.decode(token)
		require.NoError(t, err)
		assert.Equal(t, state, got)
		assert.Equal(t, "run-1", runID)
	})

	t.Run("expired", func(t *testing.T) {
		later := *codec
		later.now = func() time.Time { return now.Add(conf.OnboardingTTL + time.Second) }
		_, _, err := later.decode(token)
		assert.Error(t, err)
	})

	t.Run("other key", func(t *testing.T) {
		other := *codec
		other.key = []byte("lol")
		_, _, err := other.decode(token)
		assert.Error(t, err)
	})

	t.Run("other issuer", func(t *testing.T) {
		other := *codec
		other.issuer = "lol"
		_, _, err := other.decode(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := codec.decode("not-a-token")
		assert.Error(t, err)
	})
}

func TestOnboardingFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	var cookie *http.Cookie

	do := func(method string, form url.Values) *http.Response {
		req, rec := newRequest(method, "/onboarding", form)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		srv.ServeHTTP(rec, req)
		if c := findCookie(rec, onboardingCookie); c != nil {
			cookie = c
		}
		res := rec.Result()
		t.Cleanup(func() { _ = res.Body.Close() })
		return res
	}
	body := func(res *http.Response) string {
		data, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		return string(data)
	}

	res := do(http.MethodGet, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/onboarding", cookie.Path)
	assert.Contains(t, body(res), "Step 1 of 4")

	res = do(http.MethodPost, url.Values{"action": {"continue"}})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, body(res), onboarding.MsgIncomplete)

	res = do(http.MethodPost, url.Values{"action": {"select"}, "value": {"fame"}})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	res = do(http.MethodPost, url.Values{"action": {"dance"}})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = do(http.MethodPost, url.Values{"action": {"select"}, "value": {"career"}})
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/onboarding", res.Header.Get("Location"))

	res = do(http.MethodPost, url.Values{"action": {"continue"}})
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)

	res = do(http.MethodGet, nil)
	assert.Contains(t, body(res), "Step 2 of 4")

	res = do(http.MethodPost, url.Values{"action": {"back"}})
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	res = do(http.MethodGet, nil)
	assert.Contains(t, body(res), "Step 1 of 4")

	res = do(http.MethodPost, url.Values{"action": {"skip"}})
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/dashboard", res.Header.Get("Location"))
	assert.True(t, cookie.MaxAge < 0, "cookie cleared")
}

func TestOnboarding_TamperedCookieRestarts(t *testing.T) {
	srv, _ := newTestServer(t)

	req, rec := newRequest(http.MethodGet, "/onboarding", nil)
	req.AddCookie(&http.Cookie{Name: onboardingCookie, Value: "lol"})
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Step 1 of 4")
	c := findCookie(rec, onboardingCookie)
	require.NotNil(t, c)
	assert.NotEqual(t, "lol", c.Value)
}
