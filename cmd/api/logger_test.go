package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/akojamsy/voting-system/cfg"
)

func TestNewLogger_Level(t *testing.T) {
	logger, err := newLogger(cfg.VotingConfig{ServerMode: cfg.ModeDev, LogLevel: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = newLogger(cfg.VotingConfig{ServerMode: cfg.ModeProduction, LogLevel: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestSentryHook_NoClient(t *testing.T) {
	assert.NoError(t, sentryHook(zapcore.Entry{Level: zapcore.InfoLevel, Message: "ignored"}))
	assert.NoError(t, sentryHook(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "captured"}))
}
