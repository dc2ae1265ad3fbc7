// Package model defines the normalized board entities produced from raw
// GitHub responses.
package model

import "time"

// AgeBucket is the coarse age classification a board row is rendered with.
type AgeBucket string

const (
	AgeLastHour     AgeBucket = "last-hour"
	AgeLastTwoHours AgeBucket = "last-two-hours"
	AgeLastDay      AgeBucket = "last-day"
	AgeLastWeek     AgeBucket = "last-week"
	AgeOverWeekOld  AgeBucket = "over-week-old"
)

// CheckState is the consolidated CI status of a pull request's head commit.
type CheckState string

const (
	ChecksSuccess CheckState = "success"
	ChecksPending CheckState = "pending"
	ChecksFailure CheckState = "failure"
	ChecksError   CheckState = "error"
	ChecksNone    CheckState = "none"
)

// EventCommented is the state shared by all comment events. Review events
// keep their upstream state (APPROVED, CHANGES_REQUESTED, DISMISSED).
const EventCommented = "COMMENTED"

// Event is one review or comment on a pull request, normalized so both
// kinds share a shape.
type Event struct {
	CreatedAt time.Time `json:"createdAt"`
	Author    string    `json:"author"`
	State     string    `json:"state"`
}

// CompressedEvent is a run of adjacent events by the same author in the
// same state, collapsed to a single entry with a count.
type CompressedEvent struct {
	Event
	Count int `json:"count"`
}

// PullRequest is a normalized pull request ready for display. URL is the
// identity used for deduplication. For rows derived from merge commits,
// CommittedDate carries when the merge landed on the default branch; it is
// nil for open pull requests.
type PullRequest struct {
	Repository     string            `json:"repository"`
	Number         int               `json:"number"`
	Title          string            `json:"title"`
	URL            string            `json:"url"`
	Author         string            `json:"author"`
	BaseRefName    string            `json:"baseRefName,omitempty"`
	HeadRefOid     string            `json:"headRefOid,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	CommittedDate  *time.Time        `json:"committedDate,omitempty"`
	ReviewDecision string            `json:"reviewDecision,omitempty"`
	Events         []Event           `json:"-"`
	Timeline       []CompressedEvent `json:"timeline,omitempty"`
	Checks         CheckState        `json:"checks,omitempty"`
	ReviewCount    int               `json:"-"`
}

// Unreviewed reports whether no review has been submitted. Issue comments
// do not count; a COMMENTED review does.
func (pr *PullRequest) Unreviewed() bool {
	return pr.ReviewCount == 0
}
