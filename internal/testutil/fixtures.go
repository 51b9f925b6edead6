package testutil

import (
	"context"
	"sync"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

// NewGame builds a game fixture with sensible defaults.
func NewGame(league domain.League, homeID string, homeScore int, awayID string, awayScore int, phase domain.Phase, startMillis int64) domain.Game {
	return domain.Game{
		League:    league,
		Home:      domain.TeamSide{TeamID: homeID, Name: homeID, Score: homeScore},
		Away:      domain.TeamSide{TeamID: awayID, Name: awayID, Score: awayScore},
		Status:    domain.GameStatus{Phase: phase},
		StartTime: startMillis,
	}
}

// MemoryFollows is an in-memory follow.Storage for tests.
type MemoryFollows struct {
	mu    sync.Mutex
	Teams []domain.FollowedTeam
	Err   error
}

func (m *MemoryFollows) ListTeams(ctx context.Context) ([]domain.FollowedTeam, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]domain.FollowedTeam(nil), m.Teams...), nil
}

func (m *MemoryFollows) Follow(ctx context.Context, team domain.FollowedTeam) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Teams = append(m.Teams, team)
	return nil
}

func (m *MemoryFollows) Unfollow(ctx context.Context, league domain.League, teamID string) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.Teams[:0]
	for _, t := range m.Teams {
		if t.League.Normalize() != league.Normalize() || t.TeamID != teamID {
			kept = append(kept, t)
		}
	}
	m.Teams = kept
	return nil
}

func (m *MemoryFollows) Close() error { return nil }
