package config

import (
	"fmt"
	"time"
)

// GitHubConfig holds credentials and tuning for the GitHub API client.
type GitHubConfig struct {
	// Token is the bearer token used for both GraphQL and REST calls.
	Token string
	// Owner is the organization login the radiator watches.
	Owner string
	// Team is the team slug whose repositories are displayed.
	Team string
	// APIBaseURL is the REST API base (overridable for tests).
	APIBaseURL string
	// GraphQLURL is the GraphQL endpoint (overridable for tests).
	GraphQLURL string
	// ChunkSize is how many repositories share one batched query.
	ChunkSize int
	// PageInterval is the pause between repository-listing pages.
	PageInterval time.Duration
	// VerifyConcurrency caps in-flight permission-check requests.
	VerifyConcurrency int
}

// LoadGitHubConfigFromEnv loads GitHub configuration from environment variables.
func LoadGitHubConfigFromEnv() GitHubConfig {
	return GitHubConfig{
		Token:             GetEnv("GITHUB_TOKEN", ""),
		Owner:             GetEnv("GITHUB_OWNER", ""),
		Team:              GetEnv("GITHUB_TEAM", ""),
		APIBaseURL:        GetEnv("GITHUB_API_URL", "https://api.github.com"),
		GraphQLURL:        GetEnv("GITHUB_GRAPHQL_URL", "https://api.github.com/graphql"),
		ChunkSize:         GetEnvInt("GITHUB_CHUNK_SIZE", 4),
		PageInterval:      GetEnvDuration("GITHUB_PAGE_INTERVAL", time.Second),
		VerifyConcurrency: GetEnvInt("GITHUB_VERIFY_CONCURRENCY", 20),
	}
}

// Validate validates GitHub configuration.
func (c GitHubConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("GITHUB_TOKEN is required")
	}
	if c.Owner == "" {
		return fmt.Errorf("GITHUB_OWNER is required")
	}
	if c.Team == "" {
		return fmt.Errorf("GITHUB_TEAM is required")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("GITHUB_CHUNK_SIZE must be greater than 0")
	}
	if c.VerifyConcurrency <= 0 {
		return fmt.Errorf("GITHUB_VERIFY_CONCURRENCY must be greater than 0")
	}
	return nil
}
