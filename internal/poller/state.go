// Package poller runs the background fetch cycles and holds the board
// state the HTTP layer serves from.
package poller

import (
	"time"

	"github.com/karidea/pr.radiator/internal/radiator/model"
)

// Snapshot is one immutable view of the board. Slices are replaced, never
// mutated in place, so a snapshot handed out to a reader stays valid.
type Snapshot struct {
	CycleID      string              `json:"cycleId"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	Repositories []string            `json:"repositories"`
	Open         []model.PullRequest `json:"open"`
	Recent       []model.PullRequest `json:"recent"`
	LastError    string              `json:"lastError,omitempty"`
}

// event is one state transition produced by a fetch cycle.
type event interface {
	isEvent()
}

type reposResolved struct {
	repos []string
}

type openFetched struct {
	cycleID string
	at      time.Time
	prs     []model.PullRequest
}

type recentFetched struct {
	prs []model.PullRequest
}

type cycleFailed struct {
	cycleID string
	err     error
}

func (reposResolved) isEvent() {}
func (openFetched) isEvent()   {}
func (recentFetched) isEvent() {}
func (cycleFailed) isEvent()   {}

// apply folds an event into the snapshot. Failures record the error and
// keep the previous data, so the board degrades to stale rather than
// empty when GitHub is unreachable.
func apply(state Snapshot, ev event) Snapshot {
	switch e := ev.(type) {
	case reposResolved:
		state.Repositories = e.repos
	case openFetched:
		state.CycleID = e.cycleID
		state.UpdatedAt = e.at
		state.Open = e.prs
		state.LastError = ""
	case recentFetched:
		state.Recent = e.prs
	case cycleFailed:
		state.CycleID = e.cycleID
		state.LastError = e.err.Error()
	}
	return state
}
