package github

import "time"

// Typed decode targets for the three query shapes. Fields absent from a
// response decode to zero values; consumers treat those as empty rather
// than as errors. Timestamps are parsed here, at the decode boundary, and
// never re-parsed downstream.

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// PageInfo carries the pagination cursor of a repository listing page.
type PageInfo struct {
	EndCursor   string `json:"endCursor"`
	HasNextPage bool   `json:"hasNextPage"`
}

type repoEdge struct {
	Permission string `json:"permission"`
	Node       struct {
		Name       string `json:"name"`
		IsArchived bool   `json:"isArchived"`
	} `json:"node"`
}

type teamReposResponse struct {
	Data struct {
		Organization struct {
			Team struct {
				Repositories struct {
					TotalCount int        `json:"totalCount"`
					PageInfo   PageInfo   `json:"pageInfo"`
					Edges      []repoEdge `json:"edges"`
				} `json:"repositories"`
			} `json:"team"`
		} `json:"organization"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// Actor is a user reference on reviews, comments and pull requests.
type Actor struct {
	Login string `json:"login"`
}

// ReviewNode is one review event as returned by the open-PR query.
type ReviewNode struct {
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	Author    Actor     `json:"author"`
}

// CommentNode is one issue comment as returned by the open-PR query.
type CommentNode struct {
	CreatedAt time.Time `json:"createdAt"`
	Author    Actor     `json:"author"`
}

// CheckRollup is the consolidated CI status of a commit.
type CheckRollup struct {
	State string `json:"state"`
}

// CommitInfo is the commit payload under a pull request's commits list.
type CommitInfo struct {
	Oid               string       `json:"oid"`
	StatusCheckRollup *CheckRollup `json:"statusCheckRollup"`
}

// PRCommitNode wraps CommitInfo the way the GraphQL schema nests it.
type PRCommitNode struct {
	Commit CommitInfo `json:"commit"`
}

// RepoRef names the repository a pull request belongs to.
type RepoRef struct {
	Name string `json:"name"`
}

// PRNode is the raw pull-request record shared by the open-PR and
// recent-commit queries (the latter populates only a subset of fields).
type PRNode struct {
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	Number         int       `json:"number"`
	CreatedAt      time.Time `json:"createdAt"`
	BaseRefName    string    `json:"baseRefName"`
	HeadRefOid     string    `json:"headRefOid"`
	IsDraft        bool      `json:"isDraft"`
	Author         Actor     `json:"author"`
	Repository     RepoRef   `json:"repository"`
	ReviewDecision string    `json:"reviewDecision"`
	Comments       struct {
		Nodes []CommentNode `json:"nodes"`
	} `json:"comments"`
	Reviews struct {
		Nodes []ReviewNode `json:"nodes"`
	} `json:"reviews"`
	Commits struct {
		Nodes []PRCommitNode `json:"nodes"`
	} `json:"commits"`
}

// CommitNode is one commit in a branch's recent history.
type CommitNode struct {
	CommittedDate   time.Time `json:"committedDate"`
	MessageHeadline string    `json:"messageHeadline"`
	Parents         struct {
		TotalCount int `json:"totalCount"`
	} `json:"parents"`
	AssociatedPullRequests struct {
		Nodes []PRNode `json:"nodes"`
	} `json:"associatedPullRequests"`
}

// RefNode is a branch ref carrying recent commit history.
type RefNode struct {
	Target struct {
		History struct {
			Nodes []CommitNode `json:"nodes"`
		} `json:"history"`
	} `json:"target"`
}

// RepoNode is one aliased repository entry in a batch response.
type RepoNode struct {
	Name         string `json:"name"`
	IsArchived   bool   `json:"isArchived"`
	PullRequests struct {
		Nodes []PRNode `json:"nodes"`
	} `json:"pullRequests"`
	MainRef   *RefNode `json:"mainRef"`
	MasterRef *RefNode `json:"masterRef"`
}

// Refs returns the candidate branch refs in deterministic order, main first.
func (n *RepoNode) Refs() []*RefNode {
	refs := make([]*RefNode, 0, 2)
	if n.MainRef != nil {
		refs = append(refs, n.MainRef)
	}
	if n.MasterRef != nil {
		refs = append(refs, n.MasterRef)
	}
	return refs
}

type batchResponse struct {
	Data   map[string]*RepoNode `json:"data"`
	Errors []graphQLError       `json:"errors"`
}

// BatchResult is one chunk's decoded response keyed back to repository
// names. Repos preserves the original chunk order so that iteration over
// the result is deterministic; aliases are discarded during demultiplexing.
type BatchResult struct {
	Repos []string
	Nodes map[string]*RepoNode
}

// Repo returns the decoded entry for a repository, or nil if the response
// did not include it.
func (r BatchResult) Repo(name string) *RepoNode {
	return r.Nodes[name]
}
