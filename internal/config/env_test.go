package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("existing env var", func(t *testing.T) {
		t.Setenv("TEST_KEY", "test_value")
		assert.Equal(t, "test_value", GetEnv("TEST_KEY", "default"))
	})

	t.Run("missing env var", func(t *testing.T) {
		assert.Equal(t, "default", GetEnv("TEST_KEY_MISSING", "default"))
	})

	t.Run("empty env var falls back", func(t *testing.T) {
		t.Setenv("TEST_KEY_EMPTY", "")
		assert.Equal(t, "default", GetEnv("TEST_KEY_EMPTY", "default"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("valid integer", func(t *testing.T) {
		t.Setenv("TEST_INT", "42")
		assert.Equal(t, 42, GetEnvInt("TEST_INT", 0))
	})

	t.Run("invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT", "not_a_number")
		assert.Equal(t, 10, GetEnvInt("TEST_INT", 10))
	})

	t.Run("missing env var", func(t *testing.T) {
		assert.Equal(t, 5, GetEnvInt("TEST_INT_MISSING", 5))
	})

	t.Run("negative integer", func(t *testing.T) {
		t.Setenv("TEST_INT", "-10")
		assert.Equal(t, -10, GetEnvInt("TEST_INT", 0))
	})
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("valid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "30s")
		assert.Equal(t, 30*time.Second, GetEnvDuration("TEST_DURATION", 10*time.Second))
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "invalid")
		assert.Equal(t, 5*time.Second, GetEnvDuration("TEST_DURATION", 5*time.Second))
	})

	t.Run("missing env var", func(t *testing.T) {
		assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION_MISSING", time.Minute))
	})

	t.Run("compound duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "1h30m15s")
		assert.Equal(t, 1*time.Hour+30*time.Minute+15*time.Second, GetEnvDuration("TEST_DURATION", time.Second))
	})
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		expected     bool
	}{
		{name: "true value", envValue: "true", defaultValue: false, expected: true},
		{name: "false value", envValue: "false", defaultValue: true, expected: false},
		{name: "1 as true", envValue: "1", defaultValue: false, expected: true},
		{name: "0 as false", envValue: "0", defaultValue: true, expected: false},
		{name: "invalid value keeps default", envValue: "invalid", defaultValue: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.envValue)
			assert.Equal(t, tt.expected, GetEnvBool("TEST_BOOL", tt.defaultValue))
		})
	}
}
