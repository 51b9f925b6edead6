package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a FeedProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       FeedProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner FeedProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) FeedProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, league domain.League, mode Mode, teamTokens []string) ([]domain.Game, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		games, err := r.inner.FetchGames(ctx, league, mode, teamTokens)
		if err == nil {
			return games, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "feed fetch retry",
			slog.String(logging.FieldLeague, string(league)),
			slog.String(logging.FieldMode, string(mode)),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			"err", err,
		)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "feed fetch failed",
		slog.String(logging.FieldLeague, string(league)),
		slog.String(logging.FieldMode, string(mode)),
		slog.Int("attempts", r.maxAttempts),
		"err", lastErr,
	)
	return nil, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
