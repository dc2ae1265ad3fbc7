package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	appConfig "github.com/karidea/pr.radiator/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")

	logger, err := New()
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  appConfig.LoggerConfig
	}{
		{"production json", appConfig.LoggerConfig{Level: "info", Format: "json"}},
		{"development console", appConfig.LoggerConfig{Level: "debug", Format: "console"}},
		{"warn level", appConfig.LoggerConfig{Level: "warn", Format: "json"}},
		{"error level", appConfig.LoggerConfig{Level: "error", Format: "json"}},
		{"invalid level falls back to info", appConfig.LoggerConfig{Level: "not-a-level", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithConfig(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)

			logger.Debugw("debug message", "key", "value")
			logger.Infow("info message", "key", "value")
			logger.Warnw("warn message", "key", "value")
			logger.Errorw("error message", "key", "value")
		})
	}
}
