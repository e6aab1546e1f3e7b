package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersWriteToGlobalLogger(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Replace(prev) })

	core, logs := observer.New(zapcore.InfoLevel)
	Replace(zap.New(core))

	Debug("hidden")
	Info("charges computed", zap.String("category", "Full Container"))
	Warn("service ignored", zap.String("service", "crane"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "charges computed", entries[0].Message)
	assert.Equal(t, "Full Container", entries[0].ContextMap()["category"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestInitializeFileOutput(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Replace(prev) })

	path := filepath.Join(t.TempDir(), "cargo-cost.log")
	require.NoError(t, Initialize(Config{Level: "debug", Format: "json", Output: path}))

	Debug("tariff resolved", zap.String("size", "40ft"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"tariff resolved"`))
	assert.True(t, strings.Contains(string(data), `"size":"40ft"`))
}

func TestInitializeBadLevelFallsBackToInfo(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Replace(prev) })

	require.NoError(t, Initialize(Config{Level: "loud", Format: "console", Output: "stderr"}))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
}
