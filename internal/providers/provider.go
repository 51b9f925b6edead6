package providers

import (
	"context"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

// Mode selects which feed a query targets.
type Mode string

const (
	// ModeToday asks for games scheduled or played today.
	ModeToday Mode = "today"
	// ModeNext asks for each team's next scheduled game.
	ModeNext Mode = "next"
)

// FeedProvider defines how upstream game data is fetched. Team tokens, when
// provided, are already translated into the source vocabulary; an empty slice
// means the whole league (used by the league-wide today lookup).
type FeedProvider interface {
	FetchGames(ctx context.Context, league domain.League, mode Mode, teamTokens []string) ([]domain.Game, error)
}
