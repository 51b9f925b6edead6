package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

func TestRecorderCountsFetchAttempts(t *testing.T) {
	r := NewRecorder()

	r.RecordFetchAttempt(domain.LeagueNFL, "today", 20*time.Millisecond, nil)
	r.RecordFetchAttempt(domain.LeagueNFL, "next", 30*time.Millisecond, errors.New("boom"))
	r.RecordFetchAttempt(domain.LeagueNBA, "today", 10*time.Millisecond, nil)

	if got := r.FetchCalls(domain.LeagueNFL); got != 2 {
		t.Fatalf("nfl calls = %d, want 2", got)
	}
	if got := r.FetchErrors(domain.LeagueNFL); got != 1 {
		t.Fatalf("nfl errors = %d, want 1", got)
	}
	if got := r.FetchCalls(domain.LeagueNBA); got != 1 {
		t.Fatalf("nba calls = %d, want 1", got)
	}
	if got := r.FetchErrors(domain.LeagueNBA); got != 0 {
		t.Fatalf("nba errors = %d, want 0", got)
	}
}

func TestRecorderSnapshotKeepsLastLatency(t *testing.T) {
	r := NewRecorder()

	r.RecordFetchAttempt(domain.LeagueNFL, "today", 20*time.Millisecond, nil)
	r.RecordFetchAttempt(domain.LeagueNFL, "today", 45*time.Millisecond, nil)

	snap := r.Snapshot(domain.LeagueNFL)
	if snap.LastCallLatency != 45*time.Millisecond {
		t.Fatalf("LastCallLatency = %v, want 45ms", snap.LastCallLatency)
	}
}

func TestRecorderUnknownLeagueIsZero(t *testing.T) {
	r := NewRecorder()

	snap := r.Snapshot(domain.LeagueMLB)
	if snap.Calls != 0 || snap.Errors != 0 || snap.LastCallLatency != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder

	r.RecordFetchAttempt(domain.LeagueNFL, "today", time.Millisecond, nil)
	r.RecordPollerCycle(time.Millisecond, nil)
	r.RecordChanges(3)
	r.RecordNotification()
	r.RecordHTTPRequest("GET", "/games", 200, time.Millisecond)

	if got := r.Snapshot(domain.LeagueNFL); got != (Snapshot{}) {
		t.Fatalf("nil recorder snapshot = %+v", got)
	}
	if r.FetchCalls(domain.LeagueNFL) != 0 {
		t.Fatal("nil recorder must report zero calls")
	}
}
