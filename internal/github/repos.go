package github

import (
	"context"

	gogithub "github.com/google/go-github/v61/github"
	"golang.org/x/sync/errgroup"
)

// ResolveTeamRepositories pages through a team's repository list and
// collects names where the team holds admin permission and the repository
// is not archived. Pages are fetched strictly sequentially, paced by the
// client's page limiter.
//
// GitHub's integrator guidance asks for at least one second between rapid
// sequential requests for a single user; the limiter enforces that
// unconditionally rather than adaptively.
func (c *Client) ResolveTeamRepositories(ctx context.Context, owner, team string) ([]string, error) {
	var names []string
	cursor := ""

	for {
		if err := c.pages.Wait(ctx); err != nil {
			return nil, err
		}

		var resp teamReposResponse
		if err := c.runQuery(ctx, repositoriesQuery(owner, team, cursor), &resp); err != nil {
			return nil, err
		}
		if err := graphQLErrorsToErr(resp.Errors); err != nil {
			return nil, err
		}

		repositories := resp.Data.Organization.Team.Repositories
		for _, edge := range repositories.Edges {
			if edge.Permission == "ADMIN" && !edge.Node.IsArchived {
				names = append(names, edge.Node.Name)
			}
		}

		if !repositories.PageInfo.HasNextPage {
			break
		}
		cursor = repositories.PageInfo.EndCursor
	}

	return names, nil
}

// VerifyAdminRepos re-checks each candidate repository's team list through
// the REST API and keeps only those where the team slug appears with admin
// permission. Lookups run concurrently, bounded by the configured limit. A
// single failing lookup excludes that repository but never aborts the batch.
func (c *Client) VerifyAdminRepos(ctx context.Context, owner, team string, candidates []string) ([]string, error) {
	admin := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.VerifyConcurrency)
	for i, repo := range candidates {
		g.Go(func() error {
			teams, _, err := c.rest.Repositories.ListTeams(gctx, owner, repo, &gogithub.ListOptions{PerPage: 100})
			if err != nil {
				c.logger.Warnw("team permission lookup failed, excluding repository",
					"repo", repo, "error", err)
				return nil
			}
			for _, t := range teams {
				if t.GetSlug() == team && t.GetPermission() == "admin" {
					admin[i] = true
					break
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(candidates))
	for i, repo := range candidates {
		if admin[i] {
			filtered = append(filtered, repo)
		}
	}
	return filtered, nil
}
