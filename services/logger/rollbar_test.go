package logsvc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/trezcool/masterly/core"
)

func TestRollbarLogger(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	l := NewRollbarLogger(zap.New(obs), core.NewTestConfig())
	assert.False(t, l.enabled)

	l.Info("signup", map[string]interface{}{"email": "alex@example.com"})
	l.Error("boom", errors.New("kaput"), core.Person{ID: "1", Name: "Alex"}, 42)
	l.Warn("slow")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "alex@example.com", entries[0].ContextMap()["email"])

	assert.Equal(t, "boom", entries[1].Message)
	ctx := entries[1].ContextMap()
	assert.Equal(t, "kaput", ctx["error"])
	assert.Equal(t, "1", ctx["person"])
	assert.EqualValues(t, 42, ctx["arg2"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
}

func TestNewZapLogger(t *testing.T) {
	conf := core.NewTestConfig()
	zl, err := NewZapLogger(conf)
	require.NoError(t, err)
	assert.False(t, zl.Core().Enabled(zapcore.ErrorLevel), "test logger is silent")
}
