// Package proxy implements the FeedProvider against the SportScanner data
// proxy: a single GET endpoint parameterized by league, mode, and optional
// team tokens, answering {"games": [...]}.
package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/providers"
)

// Config controls how the client reaches the proxy.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches games from the proxy and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a proxy client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchGames queries one league/mode combination. An empty teamTokens slice
// asks for the whole league.
func (c *Client) FetchGames(ctx context.Context, league domain.League, mode providers.Mode, teamTokens []string) ([]domain.Game, error) {
	req, err := c.buildRequest(ctx, league, mode, teamTokens)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("proxy: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload gamesResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("proxy: decode response: %w", decodeErr)
	}

	games := make([]domain.Game, 0, len(payload.Games))
	for _, g := range payload.Games {
		games = append(games, mapGame(league.Normalize(), g))
	}
	return games, nil
}

func (c *Client) buildRequest(ctx context.Context, league domain.League, mode providers.Mode, teamTokens []string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set(paramLeague, string(league.Normalize()))
	q.Set(paramMode, string(mode))
	for _, token := range teamTokens {
		q.Add(paramTeam, token)
	}
	req.URL.RawQuery = q.Encode()

	return req, nil
}
