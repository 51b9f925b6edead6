package store

import (
	"sync"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

// SnapshotStore holds the last completed poll's view of the world: the
// ordered game list plus its by-key index. Both are swapped wholesale so a
// reader can never observe a partially updated snapshot.
type SnapshotStore struct {
	mu    sync.RWMutex
	games []domain.Game
	byKey map[string]domain.Game
}

// NewSnapshotStore constructs an empty SnapshotStore.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		byKey: make(map[string]domain.Game),
	}
}

// Games returns a copy of the current ordered game list.
func (s *SnapshotStore) Games() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, len(s.games))
	copy(result, s.games)
	return result
}

// GameByKey retrieves a game from the previous snapshot by its key.
func (s *SnapshotStore) GameByKey(key string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.byKey[key]
	return g, ok
}

// Len reports how many games the current snapshot holds.
func (s *SnapshotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Replace swaps in a new snapshot. The index must be derived from games by the
// caller; both are installed under one lock acquisition.
func (s *SnapshotStore) Replace(games []domain.Game, byKey map[string]domain.Game) {
	if byKey == nil {
		byKey = make(map[string]domain.Game)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = games
	s.byKey = byKey
}
