// Package scheduler provides a single-process, single-worker cron
// loop that triggers stat and matchlog sync jobs on a configured
// timezone-aware schedule.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/albapepper/footscout/internal/config"
	"github.com/albapepper/footscout/internal/domain"
	"github.com/albapepper/footscout/internal/fetch"
	"github.com/albapepper/footscout/internal/ingesterr"
	"github.com/albapepper/footscout/internal/notify"
	"github.com/albapepper/footscout/internal/orchestrator"
	"github.com/albapepper/footscout/internal/ratelimit"
	"github.com/albapepper/footscout/internal/store"
)

// Scheduler owns the cron loop and the size-1 job queue that guarantees
// overlapping triggers never run two jobs concurrently.
type Scheduler struct {
	cron     *cron.Cron
	jobs     chan domain.JobKind
	cancel   context.CancelFunc
	pool     *store.Pool
	cfg      *config.Config
	gate     *ratelimit.Gate
	site     orchestrator.Site
	resolver orchestrator.Resolver
	notifier notify.Sender
	logger   *slog.Logger
}

// New builds a Scheduler. Call Start to begin the cron loop and Stop to
// cancel any job in flight and shut the loop down.
func New(cfg *config.Config, pool *store.Pool, notifier notify.Sender, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	loc, err := time.LoadLocation(cfg.SchedulerTimezone)
	if err != nil {
		return nil, &ingesterr.ConfigError{Key: "SCHEDULER_TIMEZONE", Err: err}
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		jobs:     make(chan domain.JobKind, 1),
		pool:     pool,
		cfg:      cfg,
		gate:     ratelimit.New(time.Duration(cfg.RateLimitSeconds) * time.Second),
		site:     orchestrator.DefaultSite{BaseURL: cfg.SourceBaseURL},
		resolver: orchestrator.SearchResolver{BaseURL: cfg.SourceBaseURL},
		notifier: notifier,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(cfg.StatsCronSpec, func() { s.enqueue(domain.JobSyncStats) }); err != nil {
		return nil, &ingesterr.ConfigError{Key: "SCHEDULER_STATS_CRON", Err: err}
	}
	if _, err := s.cron.AddFunc(cfg.MatchlogCronSpec, func() { s.enqueue(domain.JobSyncMatchlogs) }); err != nil {
		return nil, &ingesterr.ConfigError{Key: "SCHEDULER_MATCHLOG_CRON", Err: err}
	}

	return s, nil
}

func (s *Scheduler) enqueue(kind domain.JobKind) {
	select {
	case s.jobs <- kind:
	default:
		s.logger.Warn("job already queued, dropping trigger", "kind", kind)
	}
}

// Start begins the cron loop and the single worker goroutine that drains
// the job queue.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.cron.Start()
	go s.work(ctx)
}

// Stop cancels any job in flight and stops the cron loop. Safe to call
// once.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	<-s.cron.Stop().Done()
}

// Running reports whether the cron loop has been started and not yet
// stopped.
func (s *Scheduler) Running() bool {
	return s.cancel != nil
}

// NextRuns returns the next scheduled fire time for every registered cron
// entry, for the "/" metadata endpoint.
func (s *Scheduler) NextRuns() []time.Time {
	entries := s.cron.Entries()
	out := make([]time.Time, len(entries))
	for i, e := range entries {
		out[i] = e.Next
	}
	return out
}

func (s *Scheduler) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case kind := <-s.jobs:
			s.runJob(ctx, kind)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, kind domain.JobKind) {
	s.RunNow(ctx, kind)
}

// RunNow runs one incremental sync job to completion and returns its
// report, without going through the cron-triggered queue. Used by the
// scraper CLI for one-off/manual runs; the scheduler's own cron callbacks
// go through enqueue/runJob instead so overlapping triggers still
// serialize.
func (s *Scheduler) RunNow(ctx context.Context, kind domain.JobKind) domain.SyncReport {
	return s.runSync(ctx, kind, scopeFor(kind))
}

// RunFull runs a full reconciliation sync across every tracked player,
// covering the last seasonsBack seasons rather than just the current one.
// Used by the scraper CLI to backfill a newly added player's history or
// to repair drift after an extended outage; never triggered by cron.
func (s *Scheduler) RunFull(ctx context.Context, seasonsBack int) domain.SyncReport {
	current := domain.CurrentSeason(time.Now())
	scope := domain.FullScope(domain.SeasonsBack(current, seasonsBack))
	return s.runSync(ctx, domain.JobSyncFull, scope)
}

// runSync drives scope through every tracked player and returns the
// resulting report. Shared by RunNow's per-kind incremental scopes and
// RunFull's multi-season scope.
func (s *Scheduler) runSync(ctx context.Context, kind domain.JobKind, scope domain.SeasonScope) domain.SyncReport {
	jobCtx, cancel := context.WithTimeout(ctx, s.cfg.JobTimeout)
	defer cancel()

	report := domain.SyncReport{Kind: kind, Start: time.Now()}

	players, err := store.ListPlayers(jobCtx, s.pool)
	if err != nil {
		s.logger.Error("list players failed, aborting job", "kind", kind, "error", err)
		report.End = time.Now()
		return report
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	batch := fetch.NewBatch(jobCtx, s.gate, fetch.Config{MaxRetries: s.cfg.FetchMaxRetries, AttemptTimeout: s.cfg.FetchAttemptTimeout}, s.logger)
	defer batch.Close()

	for _, player := range players {
		if jobCtx.Err() != nil {
			break
		}
		report.Attempted++

		dossier, err := orchestrator.ScrapePlayer(jobCtx, batch, s.site, s.resolver, player, scope)
		if err != nil {
			report.Failed++
			report.Failures = append(report.Failures, domain.PlayerFailure{
				Player: domain.PlayerRef{ID: player.ID, Name: player.Name},
				Reason: err.Error(),
			})
			continue
		}

		if _, err := store.Write(jobCtx, s.pool, player, dossier, scope); err != nil {
			var backfillErr *ingesterr.BackfillError
			if errors.As(err, &backfillErr) {
				s.logger.Warn("backfill failed after write", "player_id", player.ID, "error", err)
				report.Succeeded++
				continue
			}
			report.Failed++
			report.Failures = append(report.Failures, domain.PlayerFailure{
				Player: domain.PlayerRef{ID: player.ID, Name: player.Name},
				Reason: err.Error(),
			})
			continue
		}
		report.Succeeded++
	}

	report.End = time.Now()
	s.logger.Info("sync job finished", "summary", report.Summary())

	if err := s.notifier.Notify(ctx, report); err != nil {
		s.logger.Warn("notify failed", "error", err)
	}

	return report
}

// scopeFor applies the season-scope policy: SyncStats incrementally
// refreshes both stats and matches for the current season; SyncMatchlogs
// refreshes only the current season's match rows, leaving stat rows
// untouched.
func scopeFor(kind domain.JobKind) domain.SeasonScope {
	current := domain.CurrentSeason(time.Now())
	if kind == domain.JobSyncMatchlogs {
		return domain.MatchlogOnlyScope(current)
	}
	return domain.IncrementalScope(current)
}
