package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, cats map[string]bool) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	Install(zap.New(core), cats)
	t.Cleanup(func() { Install(nil, nil) })
	return logs
}

func TestCategoriesEnabledByDefault(t *testing.T) {
	logs := observe(t, nil)

	API("calling %s", "gemini")
	Journey("parsed %d campaigns", 3)

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "api", entries[0].LoggerName)
	assert.Equal(t, "calling gemini", entries[0].Message)
	assert.Equal(t, "journey", entries[1].LoggerName)
}

func TestDisabledCategoryIsNoop(t *testing.T) {
	logs := observe(t, map[string]bool{"api": false, "session": true})

	API("should not appear")
	Session("transition %s", "onboarding")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "session", logs.All()[0].LoggerName)
	assert.False(t, IsCategoryEnabled(CategoryAPI))
	assert.True(t, IsCategoryEnabled(CategoryHTTP))
}

func TestWarnAndErrorLevels(t *testing.T) {
	logs := observe(t, nil)

	JourneyWarn("tier %s out of range", "Macro")
	APIError("invoke failed: %v", "boom")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestInitializeRejectsBadLevel(t *testing.T) {
	_, err := Initialize(Options{Level: "loud"})
	require.Error(t, err)
}

func TestInitializeBuildsLogger(t *testing.T) {
	l, err := Initialize(Options{Level: "warn", Format: "console", OutputPaths: []string{t.TempDir() + "/journey.log"}})
	require.NoError(t, err)
	t.Cleanup(func() { Install(nil, nil) })

	assert.Same(t, l, Base())
	assert.Equal(t, zapcore.WarnLevel, Level())
	Sync()
}
