package poller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/logging"
	"github.com/iammaxlichter/SportScanner/internal/metrics"
)

const defaultInterval = time.Minute

// FollowSource supplies the followed teams, read fresh for every poll.
type FollowSource interface {
	ListTeams(ctx context.Context) ([]domain.FollowedTeam, error)
}

// SnapshotBuilder produces the canonical game list for the followed teams.
type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context, followed []domain.FollowedTeam) []domain.Game
}

// ChangeDetector diffs a new game list against the previous snapshot and
// advances it.
type ChangeDetector interface {
	Detect(next []domain.Game) []domain.Game
}

// Dispatcher delivers notifications and badge updates for a poll's changes.
type Dispatcher interface {
	Dispatch(changes, all []domain.Game)
}

// Broadcaster pushes the completed snapshot to listening surfaces.
type Broadcaster interface {
	Publish(games []domain.Game)
}

// Poller runs the poll cycle on an interval: read follows, build the merged
// game list, detect changes, dispatch, publish.
type Poller struct {
	follows    FollowSource
	builder    SnapshotBuilder
	detector   ChangeDetector
	dispatcher Dispatcher
	hub        Broadcaster
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	now        func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	// Single-in-flight guard: a manual refresh racing a timer fire is
	// dropped instead of running two polls against the snapshot store.
	inFlight atomic.Bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(follows FollowSource, builder SnapshotBuilder, det ChangeDetector, dispatcher Dispatcher, hub Broadcaster, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		follows:    follows,
		builder:    builder,
		detector:   det,
		dispatcher: dispatcher,
		hub:        hub,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial poll to seed the snapshot on boot.
		p.pollOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.pollOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RefreshNow runs a poll cycle outside the timer, for manual refresh
// triggers. It is dropped if a poll is already in flight.
func (p *Poller) RefreshNow(ctx context.Context) {
	p.pollOnce(ctx)
}

func (p *Poller) pollOnce(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		logging.Info(p.logger, "poll already in flight, trigger dropped")
		return
	}
	defer p.inFlight.Store(false)

	start := time.Now()
	p.recordAttempt(start)

	followed, err := p.follows.ListTeams(ctx)
	if err != nil {
		// The previous snapshot stays untouched: stale-but-present
		// data beats no data.
		p.metrics.RecordPollerCycle(time.Since(start), err)
		logging.Error(p.logger, "poll failed reading followed teams", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	games := p.builder.BuildSnapshot(ctx, followed)
	changes := p.detector.Detect(games)
	p.dispatcher.Dispatch(changes, games)
	p.hub.Publish(games)

	p.metrics.RecordPollerCycle(time.Since(start), nil)
	p.metrics.RecordChanges(len(changes))
	p.recordSuccess(start)
	logging.Info(p.logger, "poll cycle complete",
		logging.FieldCount, len(games),
		logging.FieldChanges, len(changes),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
