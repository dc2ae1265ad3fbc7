package config

import (
	"fmt"
	"time"
)

// PollerConfig holds poll-loop timing configuration.
type PollerConfig struct {
	// Interval is how often open pull requests are refetched.
	Interval time.Duration
	// RecentWindow is how far back merge history is scanned.
	RecentWindow time.Duration
}

// LoadPollerConfigFromEnv loads poller configuration from environment variables.
func LoadPollerConfigFromEnv() PollerConfig {
	return PollerConfig{
		Interval:     GetEnvDuration("POLL_INTERVAL", 5*time.Minute),
		RecentWindow: GetEnvDuration("RECENT_WINDOW", 14*24*time.Hour),
	}
}

// Validate validates poller configuration.
func (c PollerConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be greater than 0")
	}
	if c.RecentWindow <= 0 {
		return fmt.Errorf("RECENT_WINDOW must be greater than 0")
	}
	return nil
}
