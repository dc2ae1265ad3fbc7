package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karidea/pr.radiator/internal/radiator/model"
)

// boardFilters are the display toggles for the open-PR board. They hide
// rows from a response without affecting what the poller fetches.
type boardFilters struct {
	// ShowDependabot includes rows authored by dependabot.
	ShowDependabot bool
	// ShowProtected includes rows whose base branch is main or master.
	ShowProtected bool
	// NeedsReviewOnly keeps only rows still waiting for a review.
	NeedsReviewOnly bool
}

func filtersFromQuery(c *gin.Context) boardFilters {
	return boardFilters{
		ShowDependabot:  queryBool(c, "dependabot", false),
		ShowProtected:   queryBool(c, "protected", true),
		NeedsReviewOnly: queryBool(c, "needs_review", false),
	}
}

func queryBool(c *gin.Context, name string, fallback bool) bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func (f boardFilters) keep(pr model.PullRequest) bool {
	if !f.ShowDependabot && pr.Author == "dependabot" {
		return false
	}
	if !f.ShowProtected && (pr.BaseRefName == "main" || pr.BaseRefName == "master") {
		return false
	}
	if f.NeedsReviewOnly && pr.ReviewDecision != "" && pr.ReviewDecision != "REVIEW_REQUIRED" {
		return false
	}
	return true
}

func (f boardFilters) apply(prs []model.PullRequest) []model.PullRequest {
	filtered := make([]model.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if f.keep(pr) {
			filtered = append(filtered, pr)
		}
	}
	return filtered
}
