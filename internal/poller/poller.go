package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/karidea/pr.radiator/internal/config"
	"github.com/karidea/pr.radiator/internal/radiator/model"
	"github.com/karidea/pr.radiator/internal/radiator/service"
	settingsrepo "github.com/karidea/pr.radiator/internal/settings/repository"
	"github.com/karidea/pr.radiator/pkg/retry"
)

// Poller periodically fetches the board through the radiator service and
// publishes snapshots. Cycles never overlap; a refresh request during a
// running cycle queues at most one extra cycle.
type Poller struct {
	service  service.Service
	settings settingsrepo.Repository
	cfg      config.PollerConfig
	retryCfg retry.Config
	logger   *zap.SugaredLogger

	mu        sync.RWMutex
	state     Snapshot
	refresh   chan struct{}
	resetNext atomic.Bool
}

// New creates a new poller instance.
func New(
	svc service.Service,
	settings settingsrepo.Repository,
	cfg config.PollerConfig,
	logger *zap.SugaredLogger,
) *Poller {
	return &Poller{
		service:  svc,
		settings: settings,
		cfg:      cfg,
		retryCfg: retry.GitHubConfig(),
		logger:   logger,
		refresh:  make(chan struct{}, 1),
	}
}

// Snapshot returns the current board state.
func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Refresh requests an immediate cycle. It never blocks; if a refresh is
// already queued the request coalesces with it.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// ResetRepositories discards the cached repository list so the next cycle
// walks team resolution and permission verification again, then queues
// that cycle. Ignore flags survive the reset for repositories that remain
// in the team.
func (p *Poller) ResetRepositories() {
	p.resetNext.Store(true)
	p.Refresh()
}

// Run executes fetch cycles until ctx is cancelled. The first cycle starts
// immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Infow("poller stopped", "reason", ctx.Err())
			return
		case <-ticker.C:
			p.runCycle(ctx)
		case <-p.refresh:
			p.runCycle(ctx)
		}
	}
}

// runCycle performs one full fetch: repository list, open pull requests,
// recent merges. Each stage retries transient failures; a stage that still
// fails marks the cycle failed and leaves previous data in place.
func (p *Poller) runCycle(ctx context.Context) {
	cycleID := uuid.NewString()
	started := time.Now()
	p.logger.Infow("poll cycle started", "cycle_id", cycleID)

	repos, err := p.trackedRepos(ctx)
	if err != nil {
		p.fail(cycleID, "resolving repositories", err)
		return
	}
	p.publish(reposResolved{repos: repos})

	active, err := p.activeRepos(ctx, repos)
	if err != nil {
		p.fail(cycleID, "loading ignore list", err)
		return
	}

	open, err := retry.DoWithResult(ctx, p.retryCfg, func() ([]model.PullRequest, error) {
		return p.service.OpenPullRequests(ctx, active)
	})
	if err != nil {
		p.fail(cycleID, "fetching open pull requests", err)
		return
	}
	p.publish(openFetched{cycleID: cycleID, at: time.Now(), prs: open})

	since := time.Now().Add(-p.cfg.RecentWindow)
	recent, err := retry.DoWithResult(ctx, p.retryCfg, func() ([]model.PullRequest, error) {
		return p.service.RecentMerges(ctx, active, since)
	})
	if err != nil {
		p.fail(cycleID, "fetching recent merges", err)
		return
	}
	p.publish(recentFetched{prs: recent})

	p.logger.Infow("poll cycle completed",
		"cycle_id", cycleID,
		"repos", len(active),
		"open", len(open),
		"recent", len(recent),
		"elapsed", time.Since(started))
}

// trackedRepos loads the cached repository list, resolving and persisting
// it on first run or after ResetRepositories. Resolution walks every team
// repository page plus one permission check per repository, so the result
// is cached until the tracked set is explicitly reset.
func (p *Poller) trackedRepos(ctx context.Context) ([]string, error) {
	if !p.resetNext.Swap(false) {
		stored, err := p.settings.ListRepos(ctx)
		if err != nil {
			return nil, err
		}
		if len(stored) > 0 {
			names := make([]string, 0, len(stored))
			for _, r := range stored {
				names = append(names, r.Name)
			}
			return names, nil
		}
	}

	names, err := retry.DoWithResult(ctx, p.retryCfg, func() ([]string, error) {
		return p.service.TeamRepositories(ctx)
	})
	if err != nil {
		// A failed resolution must not silently revive the stale cache.
		p.resetNext.Store(true)
		return nil, err
	}
	if err := p.settings.ReplaceRepos(ctx, names); err != nil {
		return nil, err
	}
	return names, nil
}

// activeRepos filters out ignored repositories, preserving order.
func (p *Poller) activeRepos(ctx context.Context, repos []string) ([]string, error) {
	ignored, err := p.settings.IgnoredNames(ctx)
	if err != nil {
		return nil, err
	}
	if len(ignored) == 0 {
		return repos, nil
	}

	ignoredSet := make(map[string]struct{}, len(ignored))
	for _, name := range ignored {
		ignoredSet[name] = struct{}{}
	}
	active := make([]string, 0, len(repos))
	for _, repo := range repos {
		if _, ok := ignoredSet[repo]; !ok {
			active = append(active, repo)
		}
	}
	return active, nil
}

func (p *Poller) publish(ev event) {
	p.mu.Lock()
	p.state = apply(p.state, ev)
	p.mu.Unlock()
}

func (p *Poller) fail(cycleID, stage string, err error) {
	p.logger.Errorw("poll cycle failed", "cycle_id", cycleID, "stage", stage, "error", err)
	p.publish(cycleFailed{cycleID: cycleID, err: err})
}
