package feedsync

import (
	"context"
	"errors"
	"time"

	"github.com/partidos/partidos-service/internal/feed"
	"github.com/partidos/partidos-service/internal/partido/repository"
	statusrepo "github.com/partidos/partidos-service/internal/status/repository"
	"github.com/partidos/partidos-service/internal/storage"
	"github.com/partidos/partidos-service/pkg/logger"
	"github.com/partidos/partidos-service/pkg/metrics"
	"github.com/sourcegraph/conc"
)

// DefaultFixtureLimit caps how many of today's fixtures one run stores.
const DefaultFixtureLimit = 20

// Feed is the part of the upstream client the sync job needs.
type Feed interface {
	Status(ctx context.Context) (*feed.StatusPayload, error)
	FixturesByDate(ctx context.Context, day time.Time) (*feed.FixturesPayload, error)
}

// Archiver keeps a copy of each raw payload. Optional.
type Archiver interface {
	Archive(ctx context.Context, key string, payload []byte) error
}

// Syncer copies today's fixtures and the account status from the feed into
// the store. It never retries and never fails the caller: every problem is
// logged and the affected dataset is skipped.
type Syncer struct {
	feed     Feed
	partidos repository.Repository
	status   statusrepo.Repository
	archive  Archiver
	limit    int
	now      func() time.Time
}

// Option customises a Syncer.
type Option func(*Syncer)

// WithArchiver stores every fetched payload through a.
func WithArchiver(a Archiver) Option { return func(s *Syncer) { s.archive = a } }

// WithFixtureLimit overrides DefaultFixtureLimit.
func WithFixtureLimit(n int) Option {
	return func(s *Syncer) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithClock overrides the wall clock used to pick "today".
func WithClock(now func() time.Time) Option { return func(s *Syncer) { s.now = now } }

func New(f Feed, partidos repository.Repository, status statusrepo.Repository, opts ...Option) *Syncer {
	s := &Syncer{
		feed:     f,
		partidos: partidos,
		status:   status,
		limit:    DefaultFixtureLimit,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Report summarises one run.
type Report struct {
	StatusSaved      bool
	FixturesFetched  int
	FixturesInserted int
}

// Run performs both sync actions side by side and waits for them.
func (s *Syncer) Run(ctx context.Context) Report {
	var rep Report
	var wg conc.WaitGroup
	wg.Go(func() { rep.StatusSaved = s.syncStatus(ctx) })
	wg.Go(func() { rep.FixturesFetched, rep.FixturesInserted = s.syncFixtures(ctx) })
	wg.Wait()
	return rep
}

func (s *Syncer) syncStatus(ctx context.Context) bool {
	payload, err := s.feed.Status(ctx)
	if err != nil {
		if errors.Is(err, feed.ErrEmptyPayload) {
			logger.Errorf("sync status: no valid data received from feed")
		} else {
			logger.Errorf("sync status: fetch: %v", err)
		}
		metrics.SyncFailures.WithLabelValues("status").Inc()
		return false
	}
	s.keep(ctx, storage.StatusKey(s.now()), payload.Raw)

	if err := s.status.Insert(ctx, payload.Record); err != nil {
		logger.Errorf("sync status: insert: %v", err)
		metrics.SyncFailures.WithLabelValues("status").Inc()
		return false
	}
	metrics.SyncRecords.WithLabelValues("status").Inc()
	logger.Infof("sync status: saved snapshot plan=%q requests=%d/%d",
		payload.Record.Subscription.Plan, payload.Record.Requests.Current, payload.Record.Requests.LimitDay)
	return true
}

func (s *Syncer) syncFixtures(ctx context.Context) (fetched, inserted int) {
	today := s.now().UTC()
	payload, err := s.feed.FixturesByDate(ctx, today)
	if err != nil {
		if errors.Is(err, feed.ErrEmptyPayload) {
			logger.Infof("sync fixtures: no fixtures found for %s", today.Format("2006-01-02"))
			return 0, 0
		}
		logger.Errorf("sync fixtures: fetch: %v", err)
		metrics.SyncFailures.WithLabelValues("fixtures").Inc()
		return 0, 0
	}
	fixtures := payload.Fixtures
	fetched = len(fixtures)
	if fetched == 0 {
		logger.Infof("sync fixtures: no fixtures found for %s", today.Format("2006-01-02"))
		return 0, 0
	}
	s.keep(ctx, storage.FixturesKey(today), payload.Raw)

	if len(fixtures) > s.limit {
		fixtures = fixtures[:s.limit]
	}
	inserted, err = s.partidos.InsertMany(ctx, fixtures)
	metrics.SyncRecords.WithLabelValues("fixtures").Add(float64(inserted))
	if err != nil {
		logger.Errorf("sync fixtures: stored %d of %d: %v", inserted, len(fixtures), err)
		metrics.SyncFailures.WithLabelValues("fixtures").Inc()
		return fetched, inserted
	}
	logger.Infof("sync fixtures: stored %d fixtures for %s (feed reported %d)",
		inserted, today.Format("2006-01-02"), payload.Results)
	return fetched, inserted
}

// keep archives a raw payload when an archiver is configured. Failures are
// logged only; the sync continues either way.
func (s *Syncer) keep(ctx context.Context, key string, raw []byte) {
	if s.archive == nil || len(raw) == 0 {
		return
	}
	if err := s.archive.Archive(ctx, key, raw); err != nil {
		logger.Warnf("sync: archive %s: %v", key, err)
	}
}
