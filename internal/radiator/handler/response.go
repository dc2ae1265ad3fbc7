package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karidea/pr.radiator/internal/radiator/model"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code, message string, status int) {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(status, resp)
}

// PullRequestView is a board row with its age classification and review
// status rendered in.
type PullRequestView struct {
	model.PullRequest
	Age        model.AgeBucket `json:"age"`
	Unreviewed bool            `json:"unreviewed"`
}

// BoardResponse is the payload for board endpoints. LastError reports the
// most recent failed poll cycle; the rows themselves may be stale then.
type BoardResponse struct {
	CycleID      string            `json:"cycleId"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	LastError    string            `json:"lastError,omitempty"`
	PullRequests []PullRequestView `json:"pullRequests"`
}

// viewRows classifies each pull request's age relative to now. Open rows
// age from creation, merged rows from when the merge landed.
func viewRows(prs []model.PullRequest, now time.Time) []PullRequestView {
	rows := make([]PullRequestView, 0, len(prs))
	for _, pr := range prs {
		at := pr.CreatedAt
		if pr.CommittedDate != nil {
			at = *pr.CommittedDate
		}
		rows = append(rows, PullRequestView{
			PullRequest: pr,
			Age:         model.AgeBucketAt(at, now),
			Unreviewed:  pr.Unreviewed(),
		})
	}
	return rows
}
