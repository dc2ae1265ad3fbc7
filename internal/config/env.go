package config

import (
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of key, or fallback when the variable is unset
// or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt parses key as a decimal integer. Unset, empty and malformed
// values all yield fallback.
func GetEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// GetEnvDuration parses key in time.ParseDuration syntax, e.g. "90s" or
// "1h30m". Unset, empty and malformed values all yield fallback.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// GetEnvBool parses key in strconv.ParseBool syntax. Unset, empty and
// malformed values all yield fallback.
func GetEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
