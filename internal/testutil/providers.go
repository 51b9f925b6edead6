package testutil

import (
	"context"
	"sync"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/providers"
)

// FetchCall records one provider invocation.
type FetchCall struct {
	League domain.League
	Mode   providers.Mode
	Tokens []string
}

// ScriptedProvider returns canned games per league/mode pair and records
// every call.
type ScriptedProvider struct {
	mu        sync.Mutex
	responses map[string][]domain.Game
	errs      map[string]error
	calls     []FetchCall
}

// NewScriptedProvider constructs an empty ScriptedProvider.
func NewScriptedProvider() *ScriptedProvider {
	return &ScriptedProvider{
		responses: make(map[string][]domain.Game),
		errs:      make(map[string]error),
	}
}

// Respond registers the games returned for one league/mode pair.
func (p *ScriptedProvider) Respond(league domain.League, mode providers.Mode, games ...domain.Game) *ScriptedProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses[scriptKey(league, mode)] = games
	return p
}

// Fail registers an error returned for one league/mode pair.
func (p *ScriptedProvider) Fail(league domain.League, mode providers.Mode, err error) *ScriptedProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs[scriptKey(league, mode)] = err
	return p
}

func (p *ScriptedProvider) FetchGames(ctx context.Context, league domain.League, mode providers.Mode, teamTokens []string) ([]domain.Game, error) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, FetchCall{League: league, Mode: mode, Tokens: append([]string(nil), teamTokens...)})
	key := scriptKey(league, mode)
	if err, ok := p.errs[key]; ok {
		return nil, err
	}
	return p.responses[key], nil
}

// Calls returns a copy of the recorded invocations.
func (p *ScriptedProvider) Calls() []FetchCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]FetchCall(nil), p.calls...)
}

func scriptKey(league domain.League, mode providers.Mode) string {
	return string(league.Normalize()) + "|" + string(mode)
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchGames(ctx context.Context, league domain.League, mode providers.Mode, teamTokens []string) ([]domain.Game, error) {
	return nil, p.Err
}

// FlakyProvider fails a fixed number of times before delegating to Games.
type FlakyProvider struct {
	mu       sync.Mutex
	Failures int
	Err      error
	Games    []domain.Game
	calls    int
}

func (p *FlakyProvider) FetchGames(ctx context.Context, league domain.League, mode providers.Mode, teamTokens []string) ([]domain.Game, error) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.calls <= p.Failures {
		return nil, p.Err
	}
	return p.Games, nil
}

// CallCount reports how many times the provider was invoked.
func (p *FlakyProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
