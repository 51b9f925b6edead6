// Package follow persists the user's followed teams. The list is the source
// of truth read fresh at the start of every poll; follow/unfollow happen at
// the HTTP boundary, never inside the pipeline.
package follow

import (
	"context"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

// Storage is the interface for followed-team persistence.
type Storage interface {
	ListTeams(ctx context.Context) ([]domain.FollowedTeam, error)
	Follow(ctx context.Context, team domain.FollowedTeam) error
	Unfollow(ctx context.Context, league domain.League, teamID string) error
	Close() error
}
