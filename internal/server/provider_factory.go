package server

import (
	"log/slog"

	"github.com/iammaxlichter/SportScanner/internal/config"
	"github.com/iammaxlichter/SportScanner/internal/providers"
	"github.com/iammaxlichter/SportScanner/internal/providers/proxy"
)

// providerFactory assembles the feed provider with shared wrappers
// (rate limit + retry).
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) providers.FeedProvider {
	base := proxy.NewClient(proxy.Config{BaseURL: cfg.Proxy.BaseURL})
	limited := providers.NewRateLimitedProvider(base, cfg.Proxy.MinGap, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, 0, 0)
}
