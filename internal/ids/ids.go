// Package ids resolves the gap between the application's canonical team-id
// vocabulary and the token vocabulary used by the upstream proxy. Most teams
// use the same token on both sides; the registry only stores the exceptions.
package ids

import (
	"fmt"
	"strings"
	"sync"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

// Registry holds per-league alias tables in both directions. Unknown
// identifiers pass through unchanged, so an empty table is valid for the
// overwhelming majority of teams.
type Registry struct {
	mu         sync.RWMutex
	toSource   map[domain.League]map[string]string
	fromSource map[domain.League]map[string]string
}

// NewRegistry returns a Registry seeded with the known proxy mismatches.
func NewRegistry() *Registry {
	r := &Registry{
		toSource:   make(map[domain.League]map[string]string),
		fromSource: make(map[domain.League]map[string]string),
	}
	// Texas A&M's proxy token carries the ampersand its canonical
	// abbreviation drops.
	r.RegisterAliases(domain.LeagueNCAAF, map[string]string{"TAMU": "TA&M"})
	return r
}

// RegisterAliases records canonical->source pairs for a league, updating both
// lookup directions together.
func (r *Registry) RegisterAliases(league domain.League, pairs map[string]string) {
	league = league.Normalize()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.toSource[league] == nil {
		r.toSource[league] = make(map[string]string)
		r.fromSource[league] = make(map[string]string)
	}
	for canonical, source := range pairs {
		r.toSource[league][canonical] = source
		r.fromSource[league][source] = canonical
	}
}

// SourceID translates a canonical team id into the proxy's token. Ids without
// a registered alias are returned unchanged.
func (r *Registry) SourceID(league domain.League, canonicalID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if token, ok := r.toSource[league.Normalize()][canonicalID]; ok {
		return token
	}
	return canonicalID
}

// CanonicalID translates a proxy token back into the canonical id. Tokens
// without a registered alias are returned unchanged.
func (r *Registry) CanonicalID(league domain.League, sourceToken string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if canonical, ok := r.fromSource[league.Normalize()][sourceToken]; ok {
		return canonical
	}
	return sourceToken
}

// Canonical is the one function used to compare team identity anywhere in the
// pipeline: alias resolution followed by uppercasing. Raw tokens must never be
// compared directly since casing and source-vs-canonical mismatches are both
// possible and silent.
func (r *Registry) Canonical(league domain.League, id string) string {
	return strings.ToUpper(r.CanonicalID(league, id))
}

// GameKey derives the identity used for dedup, snapshot diffing, and
// notification identity: league, both canonical team ids, and start time.
// Two games with the same key are the same real-world matchup regardless of
// which feed call produced them.
func (r *Registry) GameKey(g domain.Game) string {
	league := g.League.Normalize()
	home := r.Canonical(league, g.Home.TeamID)
	away := r.Canonical(league, g.Away.TeamID)
	return fmt.Sprintf("%s:%s-%s@%d", league, home, away, g.StartTime)
}
