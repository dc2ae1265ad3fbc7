// Package service assembles normalized radiator boards from raw GitHub data.
package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/karidea/pr.radiator/internal/config"
	"github.com/karidea/pr.radiator/internal/github"
	"github.com/karidea/pr.radiator/internal/radiator/model"
)

// Fetcher is the subset of the GitHub client the service depends on.
type Fetcher interface {
	ResolveTeamRepositories(ctx context.Context, owner, team string) ([]string, error)
	VerifyAdminRepos(ctx context.Context, owner, team string, candidates []string) ([]string, error)
	FetchOpenPRBatches(ctx context.Context, owner string, repos []string) ([]github.BatchResult, error)
	FetchRecentCommitBatches(ctx context.Context, owner string, repos []string, since time.Time) ([]github.BatchResult, error)
}

// Service defines the radiator's board-building operations.
type Service interface {
	// TeamRepositories resolves the team's admin repositories, re-verified
	// through the REST permission check.
	TeamRepositories(ctx context.Context) ([]string, error)

	// OpenPullRequests fetches and normalizes the open pull requests across
	// repos, oldest first. Draft pull requests are excluded.
	OpenPullRequests(ctx context.Context, repos []string) ([]model.PullRequest, error)

	// RecentMerges derives pull requests from merge commits landed on the
	// default branches since the given time, newest first, deduplicated by
	// URL.
	RecentMerges(ctx context.Context, repos []string, since time.Time) ([]model.PullRequest, error)
}

type service struct {
	fetcher Fetcher
	owner   string
	team    string
	logger  *zap.SugaredLogger
}

// New creates a new radiator service instance.
func New(fetcher Fetcher, cfg config.GitHubConfig, logger *zap.SugaredLogger) Service {
	return &service{
		fetcher: fetcher,
		owner:   cfg.Owner,
		team:    cfg.Team,
		logger:  logger,
	}
}

func (s *service) TeamRepositories(ctx context.Context) ([]string, error) {
	candidates, err := s.fetcher.ResolveTeamRepositories(ctx, s.owner, s.team)
	if err != nil {
		return nil, err
	}

	verified, err := s.fetcher.VerifyAdminRepos(ctx, s.owner, s.team, candidates)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("resolved team repositories",
		"team", s.team, "candidates", len(candidates), "verified", len(verified))
	return verified, nil
}

func (s *service) OpenPullRequests(ctx context.Context, repos []string) ([]model.PullRequest, error) {
	results, err := s.fetcher.FetchOpenPRBatches(ctx, s.owner, repos)
	if err != nil {
		return nil, err
	}

	var prs []model.PullRequest
	for _, res := range results {
		for _, repo := range res.Repos {
			node := res.Repo(repo)
			if node == nil || node.IsArchived {
				continue
			}
			for _, raw := range node.PullRequests.Nodes {
				if raw.IsDraft {
					continue
				}
				prs = append(prs, normalizePR(raw, repo))
			}
		}
	}

	sort.SliceStable(prs, func(i, j int) bool {
		return prs[i].CreatedAt.Before(prs[j].CreatedAt)
	})

	s.logger.Infow("fetched open pull requests", "repos", len(repos), "prs", len(prs))
	return prs, nil
}

func (s *service) RecentMerges(ctx context.Context, repos []string, since time.Time) ([]model.PullRequest, error) {
	results, err := s.fetcher.FetchRecentCommitBatches(ctx, s.owner, repos, since)
	if err != nil {
		return nil, err
	}

	// Iteration order is fixed (chunk, then repo, then main before master,
	// then history order) so that first-wins deduplication is deterministic.
	var merges []model.PullRequest
	seen := make(map[string]struct{})
	for _, res := range results {
		for _, repo := range res.Repos {
			node := res.Repo(repo)
			if node == nil {
				continue
			}
			for _, ref := range node.Refs() {
				for _, commit := range ref.Target.History.Nodes {
					if commit.Parents.TotalCount <= 1 {
						// Squash and rebase merges land as single-parent
						// commits; only true merge commits are considered.
						continue
					}
					for _, raw := range commit.AssociatedPullRequests.Nodes {
						if _, ok := seen[raw.URL]; ok {
							continue
						}
						seen[raw.URL] = struct{}{}

						pr := normalizePR(raw, repo)
						committed := commit.CommittedDate
						pr.CommittedDate = &committed
						merges = append(merges, pr)
					}
				}
			}
		}
	}

	sort.SliceStable(merges, func(i, j int) bool {
		return merges[i].CommittedDate.After(*merges[j].CommittedDate)
	})

	s.logger.Infow("fetched recent merges",
		"repos", len(repos), "merges", len(merges), "since", since)
	return merges, nil
}
