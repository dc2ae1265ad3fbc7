package github

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// chunkRepos partitions repos into ceil(n/size) chunks preserving order.
func chunkRepos(repos []string, size int) [][]string {
	if size <= 0 {
		size = 1
	}
	chunks := make([][]string, 0, (len(repos)+size-1)/size)
	for start := 0; start < len(repos); start += size {
		end := start + size
		if end > len(repos) {
			end = len(repos)
		}
		chunks = append(chunks, repos[start:end])
	}
	return chunks
}

// FetchOpenPRBatches fetches open pull requests for all repos, one batched
// query per chunk, all chunks in flight concurrently.
func (c *Client) FetchOpenPRBatches(ctx context.Context, owner string, repos []string) ([]BatchResult, error) {
	return c.fetchBatches(ctx, owner, repos, nil)
}

// FetchRecentCommitBatches fetches recent default-branch history for all
// repos since the given time, one batched query per chunk.
func (c *Client) FetchRecentCommitBatches(ctx context.Context, owner string, repos []string, since time.Time) ([]BatchResult, error) {
	return c.fetchBatches(ctx, owner, repos, &since)
}

// fetchBatches is the shared fan-out. Results come back in chunk order; if
// any chunk fails the whole call fails, with no partial result.
func (c *Client) fetchBatches(ctx context.Context, owner string, repos []string, since *time.Time) ([]BatchResult, error) {
	chunks := chunkRepos(repos, c.cfg.ChunkSize)

	batches := make([]batch, len(chunks))
	for i, chunk := range chunks {
		b, err := newBatch(chunk)
		if err != nil {
			// Alias collisions are caught before any request is issued.
			return nil, err
		}
		batches[i] = b
	}

	results := make([]BatchResult, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range batches {
		g.Go(func() error {
			var query string
			if since != nil {
				query = recentCommitsQuery(owner, b, *since)
			} else {
				query = openPRsQuery(owner, b)
			}

			var resp batchResponse
			if err := c.runQuery(gctx, query, &resp); err != nil {
				return err
			}
			if err := graphQLErrorsToErr(resp.Errors); err != nil {
				return err
			}

			nodes := make(map[string]*RepoNode, len(resp.Data))
			for alias, node := range resp.Data {
				repo, ok := b.aliases[alias]
				if !ok || node == nil {
					continue
				}
				nodes[repo] = node
			}
			results[i] = BatchResult{Repos: b.repos, Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
