package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{Logger: zap.New(core)}, logs
}

func TestGlobalLoggerUsableBeforeInit(t *testing.T) {
	assert.NotNil(t, L)
	assert.NotPanics(t, func() { L.Warn("before init") })
}

func TestNew_Levels(t *testing.T) {
	assert.False(t, New(false).Core().Enabled(zapcore.InfoLevel), "production logs warn and up")
	assert.True(t, New(false).Core().Enabled(zapcore.WarnLevel))
	assert.True(t, New(true).Core().Enabled(zapcore.DebugLevel))
}

func TestWithRun(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)
	l.WithRun("r-1").Info("hello")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "r-1", entries[0].ContextMap()["run"])
	}
}

func TestHelpers(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)

	l.Loaded("files", 3, 2)
	l.Tokenized(11, 3, "ahocorasick")
	score := 14
	l.Solved("E", 3, &score)
	l.Solved("A", 3, nil)

	entries := logs.All()
	if !assert.Len(t, entries, 4) {
		return
	}
	assert.Equal(t, "tables loaded", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["terms"])
	assert.Equal(t, "ahocorasick", entries[1].ContextMap()["scanner"])
	assert.Equal(t, int64(14), entries[2].ContextMap()["score"])
	_, hasScore := entries[3].ContextMap()["score"]
	assert.False(t, hasScore)
}

func TestHelpers_FilteredAtWarn(t *testing.T) {
	l, logs := observed(zapcore.WarnLevel)
	l.Solved("B", 2, nil)
	assert.Equal(t, 0, logs.Len())
}
