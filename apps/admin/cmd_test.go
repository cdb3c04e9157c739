package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	echoweb "github.com/trezcool/masterly/apps/web/echo"
	"github.com/trezcool/masterly/assets"
	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/listing"
	"github.com/trezcool/masterly/core/user"
	emailsvc "github.com/trezcool/masterly/services/email"
	logsvc "github.com/trezcool/masterly/services/logger"
)

func setup(t *testing.T, terminal bool) (*commandLine, *bytes.Buffer) {
	conf := core.NewTestConfig()
	logger := logsvc.NewRollbarLogger(zap.NewNop(), conf)
	mailSvc := emailsvc.NewConsoleServiceMock(core.NewEmailRenderer(assets.EmailTemplates(), conf), logger, conf)

	opts, err := echoweb.NewOptions(conf, logger, mailSvc)
	require.NoError(t, err)

	isTerminalFunc = func(int) bool { return terminal }
	t.Cleanup(func() { isTerminalFunc = func(int) bool { return false } })

	out := new(bytes.Buffer)
	return &commandLine{
		opts:   opts,
		routes: echoweb.NewServer(opts).Routes,
		out:    out,
	}, out
}

type cliTest struct {
	name     string
	args     []string // without program name
	wantErr  error
	contains []string
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "list without resource", args: []string{"list"}, wantErr: errHelp},
		{name: "routes", args: []string{"routes"}, contains: []string{"METHOD", "/admin/content", "/api/admin/users"}},
		{
			name:     "users by plan",
			args:     []string{"list", "users", "--plan", user.PlanEnterprise},
			contains: []string{"Enterprise", "users"},
		},
		{
			name:     "courses by search",
			args:     []string{"list", "courses", "--search", "prompt"},
			contains: []string{"TITLE", "Prompt Engineering"},
		},
		{
			name:     "no match",
			args:     []string{"list", "security", "--search", "nobody-at-all"},
			contains: []string{"Showing 0 of"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, true)
			err := cli.run(append([]string{"admin"}, tt.args...))
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, strings.ToLower(out.String()), strings.ToLower(want))
			}
		})
	}
}

func Test_commandLine_unknownFlag(t *testing.T) {
	cli, _ := setup(t, true)
	err := cli.run([]string{"admin", "list", "users", "--lol"})
	assert.Error(t, err)
}

func Test_commandLine_jsonOutput(t *testing.T) {
	cli, out := setup(t, false)
	require.NoError(t, cli.run([]string{"admin", "list", "users", "--status", user.StatusSuspended}))

	var page listing.Page[user.User]
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	assert.Equal(t, len(page.Items), page.Count)
	for _, u := range page.Items {
		assert.Equal(t, user.StatusSuspended, u.Status)
	}
}
