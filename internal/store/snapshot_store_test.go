package store

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/testutil"
)

func TestSnapshotStoreStartsEmpty(t *testing.T) {
	s := NewSnapshotStore()

	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d games", s.Len())
	}
	if games := s.Games(); len(games) != 0 {
		t.Fatalf("expected no games, got %+v", games)
	}
	if _, ok := s.GameByKey("nfl:DAL-PHI@1"); ok {
		t.Fatal("expected missing key")
	}
}

func TestSnapshotStoreReplaceAndRead(t *testing.T) {
	s := NewSnapshotStore()

	g := testutil.NewGame(domain.LeagueNFL, "DAL", 14, "PHI", 7, domain.PhaseLive, 1700000000000)
	s.Replace([]domain.Game{g}, map[string]domain.Game{"nfl:DAL-PHI@1700000000000": g})

	if s.Len() != 1 {
		t.Fatalf("expected 1 game, got %d", s.Len())
	}
	got, ok := s.GameByKey("nfl:DAL-PHI@1700000000000")
	if !ok {
		t.Fatal("expected key present")
	}
	if diff := cmp.Diff(g, got); diff != "" {
		t.Fatalf("unexpected game (-want +got):\n%s", diff)
	}
}

func TestSnapshotStoreReplaceNilIndexClears(t *testing.T) {
	s := NewSnapshotStore()

	g := testutil.NewGame(domain.LeagueNFL, "DAL", 14, "PHI", 7, domain.PhaseLive, 1)
	s.Replace([]domain.Game{g}, map[string]domain.Game{"k": g})
	s.Replace(nil, nil)

	if s.Len() != 0 {
		t.Fatalf("expected cleared store, got %d games", s.Len())
	}
	if _, ok := s.GameByKey("k"); ok {
		t.Fatal("expected old index discarded")
	}
}

func TestSnapshotStoreGamesReturnsCopy(t *testing.T) {
	s := NewSnapshotStore()

	g := testutil.NewGame(domain.LeagueNBA, "BOS", 10, "LAL", 8, domain.PhaseLive, 1)
	s.Replace([]domain.Game{g}, nil)

	games := s.Games()
	games[0].Home.Score = 99

	if s.Games()[0].Home.Score != 10 {
		t.Fatal("mutating the returned slice must not affect the store")
	}
}

func TestSnapshotStoreConcurrentAccess(t *testing.T) {
	s := NewSnapshotStore()
	g := testutil.NewGame(domain.LeagueNFL, "DAL", 0, "PHI", 0, domain.PhasePre, 1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Replace([]domain.Game{g}, map[string]domain.Game{"k": g})
				s.Games()
				s.GameByKey("k")
				s.Len()
			}
		}()
	}
	wg.Wait()

	if s.Len() != 1 {
		t.Fatalf("expected final snapshot of 1 game, got %d", s.Len())
	}
}
