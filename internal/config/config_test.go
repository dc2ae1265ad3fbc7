package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Logger: LoggerConfig{Level: "info", Format: "json"},
		GitHub: GitHubConfig{
			Token:             "ghp_test",
			Owner:             "acme",
			Team:              "platform",
			APIBaseURL:        "https://api.github.com",
			GraphQLURL:        "https://api.github.com/graphql",
			ChunkSize:         4,
			PageInterval:      time.Second,
			VerifyConcurrency: 20,
		},
		Store:   StoreConfig{Path: "radiator.db"},
		Poller:  PollerConfig{Interval: 5 * time.Minute, RecentWindow: 14 * 24 * time.Hour},
		GinMode: "release",
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_OWNER", "acme")
	t.Setenv("GITHUB_TEAM", "platform")

	cfg := LoadFromEnv()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 4, cfg.GitHub.ChunkSize)
	assert.Equal(t, time.Second, cfg.GitHub.PageInterval)
	assert.Equal(t, 20, cfg.GitHub.VerifyConcurrency)
	assert.Equal(t, 5*time.Minute, cfg.Poller.Interval)
	assert.Equal(t, 14*24*time.Hour, cfg.Poller.RecentWindow)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := validConfig()
		cfg.GitHub.Token = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	})

	t.Run("missing owner", func(t *testing.T) {
		cfg := validConfig()
		cfg.GitHub.Owner = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing team", func(t *testing.T) {
		cfg := validConfig()
		cfg.GitHub.Team = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero chunk size", func(t *testing.T) {
		cfg := validConfig()
		cfg.GitHub.ChunkSize = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero verify concurrency", func(t *testing.T) {
		cfg := validConfig()
		cfg.GitHub.VerifyConcurrency = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logger.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logger.Format = "xml"
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty store path", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.Path = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero poll interval", func(t *testing.T) {
		cfg := validConfig()
		cfg.Poller.Interval = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.GinMode = "production"
		assert.Error(t, cfg.Validate())
	})
}

func TestServerConfigValidate(t *testing.T) {
	t.Run("empty port", func(t *testing.T) {
		cfg := validConfig().Server
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero read timeout", func(t *testing.T) {
		cfg := validConfig().Server
		cfg.ReadTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero write timeout", func(t *testing.T) {
		cfg := validConfig().Server
		cfg.WriteTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero idle timeout", func(t *testing.T) {
		cfg := validConfig().Server
		cfg.IdleTimeout = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLoggerConfigIsProduction(t *testing.T) {
	assert.True(t, LoggerConfig{Level: "info", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "debug", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "info", Format: "console"}.IsProduction())
}
