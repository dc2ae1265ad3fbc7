package config

import "fmt"

// StoreConfig holds settings-store configuration.
type StoreConfig struct {
	// Path is the sqlite database file (":memory:" for ephemeral runs).
	Path string
}

// LoadStoreConfigFromEnv loads store configuration from environment variables.
func LoadStoreConfigFromEnv() StoreConfig {
	return StoreConfig{
		Path: GetEnv("STORE_PATH", "radiator.db"),
	}
}

// Validate validates store configuration.
func (c StoreConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("STORE_PATH must not be empty")
	}
	return nil
}
