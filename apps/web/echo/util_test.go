package echoweb

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trezcool/masterly/assets"
	"github.com/trezcool/masterly/core"
	emailsvc "github.com/trezcool/masterly/services/email"
	logsvc "github.com/trezcool/masterly/services/logger"
)

type httpTest struct {
	name         string
	method       string
	path         string
	form         url.Values
	wantCode     int
	wantLocation string
	wantData     []byte   // JSON body, compared structurally
	wantBody     []string // HTML fragments
}

func newTestServer(t *testing.T) (Server, *emailsvc.ConsoleServiceMock) {
	conf := core.NewTestConfig()
	logger := logsvc.NewRollbarLogger(zap.NewNop(), conf)
	mailSvc := emailsvc.NewConsoleServiceMock(core.NewEmailRenderer(assets.EmailTemplates(), conf), logger, conf)

	opts, err := NewOptions(conf, logger, mailSvc)
	require.NoError(t, err)
	return NewServer(opts), mailSvc
}

func newRequest(method, path string, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if form != nil {
		body.WriteString(form.Encode())
	}
	req := httptest.NewRequest(method, path, &body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, httptest.NewRecorder()
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkResponse(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, tt.wantCode, rec.Code, "code")
	if tt.wantLocation != "" {
		assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
	}
	if tt.wantData != nil {
		ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
		if assert.NoError(t, err) {
			assert.True(t, ok, "data = %s; wantData %s", rec.Body.String(), tt.wantData)
		}
	}
	for _, frag := range tt.wantBody {
		assert.Contains(t, rec.Body.String(), frag)
	}
}

func runHTTPTests(t *testing.T, srv Server, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newRequest(method, tt.path, tt.form)
			srv.ServeHTTP(rec, req)
			checkResponse(t, tt, rec)
		})
	}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}
