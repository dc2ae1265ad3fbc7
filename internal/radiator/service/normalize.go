package service

import (
	"strings"

	"github.com/karidea/pr.radiator/internal/github"
	"github.com/karidea/pr.radiator/internal/radiator/model"
)

// normalizePR converts a raw pull-request node into the board model. repo
// is the repository the node was fetched under; the node's own repository
// name wins when present, since merge commits can reference pull requests
// from forks.
func normalizePR(raw github.PRNode, repo string) model.PullRequest {
	if raw.Repository.Name != "" {
		repo = raw.Repository.Name
	}

	pr := model.PullRequest{
		Repository:     repo,
		Number:         raw.Number,
		Title:          raw.Title,
		URL:            raw.URL,
		Author:         raw.Author.Login,
		BaseRefName:    raw.BaseRefName,
		HeadRefOid:     raw.HeadRefOid,
		CreatedAt:      raw.CreatedAt,
		ReviewDecision: raw.ReviewDecision,
		Events:         normalizeEvents(raw),
		Checks:         checkState(raw),
		ReviewCount:    len(raw.Reviews.Nodes),
	}

	model.SortEvents(pr.Events)
	pr.Timeline = model.CompressEvents(pr.Events)
	return pr
}

// normalizeEvents flattens reviews and comments into one event list.
// Comments always carry the COMMENTED state; review states pass through
// except that COMMENTED spellings are folded to the canonical form.
func normalizeEvents(raw github.PRNode) []model.Event {
	events := make([]model.Event, 0, len(raw.Reviews.Nodes)+len(raw.Comments.Nodes))
	for _, review := range raw.Reviews.Nodes {
		state := review.State
		if strings.EqualFold(state, model.EventCommented) {
			state = model.EventCommented
		}
		events = append(events, model.Event{
			CreatedAt: review.CreatedAt,
			Author:    review.Author.Login,
			State:     state,
		})
	}
	for _, comment := range raw.Comments.Nodes {
		events = append(events, model.Event{
			CreatedAt: comment.CreatedAt,
			Author:    comment.Author.Login,
			State:     model.EventCommented,
		})
	}
	return events
}

// checkState reads the rollup of the head commit. The fetched commit is
// matched against headRefOid; a push between page builds can leave the
// query's last commit behind the head, in which case no state is reported.
func checkState(raw github.PRNode) model.CheckState {
	for _, node := range raw.Commits.Nodes {
		if node.Commit.Oid != raw.HeadRefOid {
			continue
		}
		if node.Commit.StatusCheckRollup == nil {
			return model.ChecksNone
		}
		return model.CheckStateFrom(&node.Commit.StatusCheckRollup.State)
	}
	return model.ChecksNone
}
