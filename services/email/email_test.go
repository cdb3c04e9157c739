package emailsvc

import (
	"net/http"
	"net/mail"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/trezcool/masterly/assets"
	"github.com/trezcool/masterly/core"
	logsvc "github.com/trezcool/masterly/services/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreAnyFunction("github.com/rollbar/rollbar-go.NewAsyncTransport.func1"))
}

func newDeps() (*core.EmailRenderer, core.Logger, *core.Config) {
	conf := core.NewTestConfig()
	return core.NewEmailRenderer(assets.EmailTemplates(), conf), logsvc.NewRollbarLogger(zap.NewNop(), conf), conf
}

func resetMessage() *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Address: "alex@example.com"}},
		Subject:      "Reset your password",
		TemplateName: "password_reset",
		TemplateData: struct{ Email string }{Email: "alex@example.com"},
	}
}

func TestConsoleServiceMock(t *testing.T) {
	svc := NewConsoleServiceMock(newDeps())

	svc.SendMessages(
		resetMessage(),
		&core.EmailMessage{Subject: "nobody to send to", BodyStr: "hi"},
		&core.EmailMessage{To: []mail.Address{{Address: "a@b.c"}}, Subject: "plain", BodyStr: "hello"},
	)

	sent := svc.SentMessages()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].TextContent, "alex@example.com")
	assert.Contains(t, sent[0].TextContent, "http://localhost:8000/login")
	assert.Contains(t, sent[0].HTMLContent, "<strong>alex@example.com</strong>")
	assert.Equal(t, "hello", sent[1].TextContent)
	assert.Empty(t, sent[1].HTMLContent)
}

func TestConsoleService_Output(t *testing.T) {
	renderer, logger, conf := newDeps()
	var out strings.Builder
	svc := newConsoleService(renderer, logger, conf, &out)

	svc.sendMessage(resetMessage())

	s := out.String()
	assert.Contains(t, s, "Subject: [Masterly AI] Reset your password")
	assert.Contains(t, s, "To: <alex@example.com>")
	assert.Contains(t, s, "text/html")
}

func TestSendgridService(t *testing.T) {
	renderer, logger, conf := newDeps()
	conf.SendgridApiKey = "SG.test"

	var (
		mu   sync.Mutex
		reqs []rest.Request
		done = make(chan struct{})
	)
	svc := NewSendgridService(renderer, logger, conf).(*sendgridService)
	svc.api = func(req rest.Request) (*rest.Response, error) {
		mu.Lock()
		reqs = append(reqs, req)
		mu.Unlock()
		close(done)
		return &rest.Response{StatusCode: http.StatusAccepted}, nil
	}

	svc.SendMessages(resetMessage())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("message not sent")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, string(reqs[0].Method))
	assert.Equal(t, "Bearer SG.test", reqs[0].Headers["Authorization"])
	body := string(reqs[0].Body)
	assert.Contains(t, body, `"subject":"[Masterly AI] Reset your password"`)
	assert.Contains(t, body, `"email":"alex@example.com"`)
	assert.Contains(t, body, `"text/html"`)
}

func TestNewService(t *testing.T) {
	renderer, logger, conf := newDeps()
	_, ok := NewService(renderer, logger, conf).(*consoleService)
	assert.True(t, ok)

	conf.SendgridApiKey = "SG.test"
	_, ok = NewService(renderer, logger, conf).(*sendgridService)
	assert.True(t, ok)
}
