package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New(true, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(false, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestWithResume(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithResume(zap.New(core), " r-1 ").Info("scored")
	WithResume(zap.New(core), "  ").Info("anonymous")

	entries := observed.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "r-1", entries[0].ContextMap()[FieldResumeID])
	assert.NotContains(t, entries[1].ContextMap(), FieldResumeID)
}

func TestWithResume_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		WithResume(nil, "r-1").Info("dropped")
	})
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "héllo...", TruncateForLog("  héllo world ", 5))
	assert.Equal(t, "short", TruncateForLog("short", 10))
	assert.Equal(t, "", TruncateForLog("anything", 0))
}

func TestNewTo_Stderr(t *testing.T) {
	l, err := NewTo("stderr", false, false)
	require.NoError(t, err)
	assert.NotNil(t, l)
}
