package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	require.NoError(t, Initialize(""))
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	require.NoError(t, Initialize(""))
	assert.True(t, GetLogger().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, GetLogger().Core().Enabled(zapcore.InfoLevel))
}

func TestInitialize_ExplicitLevelWins(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "error")

	require.NoError(t, Initialize("DEBUG"))
	assert.True(t, GetLogger().Core().Enabled(zapcore.DebugLevel))
}

func TestInitialize_UnknownLevel(t *testing.T) {
	assert.Error(t, Initialize("chatty"))
}

func TestHelpersUseGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Debug("d")
	Info("i", zap.Int("count", 2))

	require.Equal(t, 2, logs.Len())
	entry := logs.FilterMessage("i").All()[0]
	assert.Equal(t, int64(2), entry.ContextMap()["count"])
}
