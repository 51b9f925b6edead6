package metrics

import (
	"sync"
	"time"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

type fetchStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about fetch and poll
// activity. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[domain.League]*fetchStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[domain.League]*fetchStats),
		otel:  otel,
	}
}

// RecordFetchAttempt increments counters for an upstream query and stores the
// last observed latency for the league.
func (r *Recorder) RecordFetchAttempt(league domain.League, mode string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(league)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordFetchAttempt(league, mode, duration, err)
	}
}

// RecordPollerCycle tracks poll cycles and their outcome.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// RecordChanges tracks how many meaningful changes a poll produced.
func (r *Recorder) RecordChanges(count int) {
	if r == nil || r.otel == nil || count <= 0 {
		return
	}
	r.otel.recordChanges(count)
}

// RecordNotification tracks a dispatched notification.
func (r *Recorder) RecordNotification() {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordNotification()
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current per-league fetch stats.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(league domain.League) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(league)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// FetchCalls returns the total upstream queries recorded for a league.
func (r *Recorder) FetchCalls(league domain.League) int {
	return r.Snapshot(league).Calls
}

// FetchErrors returns the total failed queries recorded for a league.
func (r *Recorder) FetchErrors(league domain.League) int {
	return r.Snapshot(league).Errors
}

func (r *Recorder) ensureStats(league domain.League) *fetchStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[league]
	if !ok {
		stats = &fetchStats{}
		r.stats[league] = stats
	}
	return stats
}

func (r *Recorder) snapshot(league domain.League) fetchStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[league]; ok && stats != nil {
		return *stats
	}
	return fetchStats{}
}
