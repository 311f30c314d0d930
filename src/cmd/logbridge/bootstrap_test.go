// FILE: logbridge/src/cmd/logbridge/bootstrap_test.go
package main

import (
	"testing"
	"time"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logbridge/src/internal/config"
)

func TestInitializeLogger(t *testing.T) {
	t.Run("QuietMode", func(t *testing.T) {
		cfg := &config.Config{Quiet: true, Logging: config.DefaultLogConfig()}

		require.NoError(t, initializeLogger(cfg))
		defer logger.Shutdown(time.Second)

		// Logging at any level must be a no-op, not a panic
		logger.Info("msg", "suppressed")
	})

	t.Run("OutputNone", func(t *testing.T) {
		cfg := &config.Config{Logging: config.DefaultLogConfig()}
		cfg.Logging.Output = "none"

		require.NoError(t, initializeLogger(cfg))
		defer logger.Shutdown(time.Second)
	})

	t.Run("OutputStderr", func(t *testing.T) {
		cfg := &config.Config{Logging: config.DefaultLogConfig()}
		cfg.Logging.Output = "stderr"

		require.NoError(t, initializeLogger(cfg))
		defer logger.Shutdown(time.Second)
	})

	t.Run("UnknownOutputMode", func(t *testing.T) {
		cfg := &config.Config{Logging: config.DefaultLogConfig()}
		cfg.Logging.Output = "syslog"

		assert.Error(t, initializeLogger(cfg))
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		cfg := &config.Config{Logging: config.DefaultLogConfig()}
		cfg.Logging.Level = "verbose"

		assert.Error(t, initializeLogger(cfg))
	})
}

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected int
	}{
		{"debug", int(log.LevelDebug)},
		{"info", int(log.LevelInfo)},
		{"warn", int(log.LevelWarn)},
		{"warning", int(log.LevelWarn)},
		{"error", int(log.LevelError)},
	}

	for _, tc := range testCases {
		got, err := parseLogLevel(tc.level)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got)
	}

	_, err := parseLogLevel("trace")
	assert.Error(t, err)
}
