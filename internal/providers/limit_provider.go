package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

// rateLimitedProvider wraps a FeedProvider and enforces a minimum spacing
// between upstream calls, shared across all leagues and modes.
type rateLimitedProvider struct {
	next    FeedProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a FeedProvider that spaces calls by at least
// minGap. Calls block until a token is available so fan-out waves stay under
// the upstream quota.
func NewRateLimitedProvider(next FeedProvider, minGap time.Duration, logger *slog.Logger) FeedProvider {
	if minGap <= 0 {
		minGap = 200 * time.Millisecond
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(minGap), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, league domain.League, mode Mode, teamTokens []string) ([]domain.Game, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("league", string(league)))
		}
		return nil, err
	}
	return p.next.FetchGames(ctx, league, mode, teamTokens)
}
