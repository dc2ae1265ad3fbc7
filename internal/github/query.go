package github

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	reposPerPage           = 100
	openPRsPerRepo         = 15
	reviewsPerPR           = 50
	commentsPerPR          = 50
	historyPerRef          = 25
	associatedPRsPerCommit = 5
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// aliasFor derives the query alias for a repository name. Stripping
// non-alphanumerics can make distinct names collide; newBatch checks that.
// The "r" prefix keeps the alias a valid field name when the repository
// name starts with a digit.
func aliasFor(repo string) string {
	return "r" + nonAlphanumeric.ReplaceAllString(repo, "")
}

// batch is one chunk of repositories plus the alias map used to demultiplex
// the flat GraphQL response back into per-repository data.
type batch struct {
	repos   []string
	aliases map[string]string // alias -> repository name
}

// newBatch builds the alias map for a chunk, failing fast on collisions.
func newBatch(repos []string) (batch, error) {
	b := batch{repos: repos, aliases: make(map[string]string, len(repos))}
	for _, repo := range repos {
		alias := aliasFor(repo)
		if existing, ok := b.aliases[alias]; ok {
			return batch{}, fmt.Errorf("%w: %q and %q both reduce to %q", ErrAliasCollision, existing, repo, alias)
		}
		b.aliases[alias] = repo
	}
	return b, nil
}

// repositoriesQuery lists one page of a team's repositories with permission
// and archival status. An empty cursor means the first page.
func repositoriesQuery(owner, team, cursor string) string {
	after := "null"
	if cursor != "" {
		after = strconv.Quote(cursor)
	}
	return fmt.Sprintf(`{ organization(login: %q) { team(slug: %q) { repositories(first: %d, after: %s) { totalCount pageInfo { endCursor hasNextPage } edges { permission node { name isArchived } } } } } }`,
		owner, team, reposPerPage, after)
}

// openPRsQuery fetches open pull requests for every repository in the batch,
// each under its own alias.
func openPRsQuery(owner string, b batch) string {
	inner := fmt.Sprintf(`pullRequests(last: %d, states: OPEN) { nodes { title url createdAt baseRefName headRefOid isDraft number author { login } repository { name } comments(first: %d) { nodes { createdAt author { login } } } reviews(first: %d) { nodes { state createdAt author { login } } } commits(last: 1) { nodes { commit { oid statusCheckRollup { state } } } } reviewDecision } }`,
		openPRsPerRepo, commentsPerPR, reviewsPerPR)

	var sb strings.Builder
	sb.WriteString("query openPRs { ")
	for _, repo := range b.repos {
		// isArchived travels with every response so a repository archived
		// after resolution drops off the board without a re-resolve.
		fmt.Fprintf(&sb, "%s: repository(owner: %q, name: %q) { name isArchived %s } ", aliasFor(repo), owner, repo, inner)
	}
	sb.WriteString("}")
	return sb.String()
}

// recentCommitsQuery fetches recent default-branch history for every
// repository in the batch. Organizations use either main or master, so both
// candidate refs are requested under distinct field names and the caller
// merges them.
func recentCommitsQuery(owner string, b batch, since time.Time) string {
	history := fmt.Sprintf(`{ target { ... on Commit { history(first: %d, since: %q) { nodes { committedDate messageHeadline parents { totalCount } associatedPullRequests(first: %d) { nodes { createdAt number title url author { login } repository { name } } } } } } } }`,
		historyPerRef, since.UTC().Format(time.RFC3339), associatedPRsPerCommit)

	var sb strings.Builder
	sb.WriteString("query recentPRs { ")
	for _, repo := range b.repos {
		fmt.Fprintf(&sb, `%s: repository(owner: %q, name: %q) { name mainRef: ref(qualifiedName: "refs/heads/main") %s masterRef: ref(qualifiedName: "refs/heads/master") %s } `,
			aliasFor(repo), owner, repo, history, history)
	}
	sb.WriteString("}")
	return sb.String()
}
