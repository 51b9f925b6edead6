// Package merge builds the canonical game list for a poll: it fans out per
// league to the "today" and "next" feeds, keeps the games relevant to the
// followed teams, backfills upcoming games for idle teams, and returns one
// deduplicated, ranked list.
package merge

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/ids"
	"github.com/iammaxlichter/SportScanner/internal/logging"
	"github.com/iammaxlichter/SportScanner/internal/metrics"
	"github.com/iammaxlichter/SportScanner/internal/providers"
)

// Finals older than this stop being shown for a followed team. Pre and live
// games are relevant regardless of age.
const stalenessWindow = 2 * 24 * time.Hour

const defaultFetchTimeout = 5 * time.Second

// fallbackFollows keeps the pipeline demonstrable with an empty follow list.
var fallbackFollows = []domain.FollowedTeam{
	{League: domain.LeagueNFL, TeamID: "DAL", Name: "Dallas Cowboys"},
	{League: domain.LeagueNFL, TeamID: "PHI", Name: "Philadelphia Eagles"},
}

// Engine merges upstream feeds into the canonical game list.
type Engine struct {
	provider     providers.FeedProvider
	ids          *ids.Registry
	logger       *slog.Logger
	metrics      *metrics.Recorder
	fetchTimeout time.Duration
	now          func() time.Time
}

// New constructs an Engine. A zero fetchTimeout falls back to the default.
func New(provider providers.FeedProvider, registry *ids.Registry, logger *slog.Logger, recorder *metrics.Recorder, fetchTimeout time.Duration) *Engine {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Engine{
		provider:     provider,
		ids:          registry,
		logger:       logger,
		metrics:      recorder,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

// leagueGroup is one league's slice of followed canonical team ids.
type leagueGroup struct {
	league  domain.League
	teamIDs []string
}

// waveResult pairs a league group with the games one feed call returned.
type waveResult struct {
	group leagueGroup
	games []domain.Game
}

// BuildSnapshot produces the ranked, deduplicated game list for the followed
// teams. Every feed failure degrades to an empty result for that query; the
// returned list is always best-effort, never an error.
func (e *Engine) BuildSnapshot(ctx context.Context, followed []domain.FollowedTeam) []domain.Game {
	groups := e.groupByLeague(followed)

	today := e.fetchWave(ctx, groups, providers.ModeToday)
	next := e.fetchWave(ctx, groups, providers.ModeNext)

	upcoming := e.indexUpcoming(next)
	merged := e.mergeRelevant(today, upcoming)
	deduped := e.dedupe(merged)
	e.sortGames(deduped)
	return deduped
}

// TodayForLeagues fetches all of today's games for the given leagues, with no
// team filtering, canonicalizing team ids and deduplicating by game key. It
// backs UI lookups that are independent of the follow list.
func (e *Engine) TodayForLeagues(ctx context.Context, leagues []domain.League) []domain.Game {
	all := make([]domain.Game, 0)
	for _, league := range leagues {
		league = league.Normalize()
		games, err := e.fetch(ctx, league, providers.ModeToday, nil)
		if err != nil {
			logging.Warn(e.logger, "league-wide fetch failed",
				slog.String(logging.FieldLeague, string(league)), "error", err)
			continue
		}
		for _, g := range games {
			g.League = league
			g.Home.TeamID = e.ids.Canonical(league, g.Home.TeamID)
			g.Away.TeamID = e.ids.Canonical(league, g.Away.TeamID)
			all = append(all, g)
		}
	}
	return e.dedupe(all)
}

// groupByLeague buckets the follow list per league with canonical, uppercased
// ids. An empty follow list falls back to the demo pair, which keeps a fresh
// install showing something.
func (e *Engine) groupByLeague(followed []domain.FollowedTeam) []leagueGroup {
	if len(followed) == 0 {
		followed = fallbackFollows
	}

	index := make(map[domain.League]int)
	groups := make([]leagueGroup, 0)
	for _, t := range followed {
		league := t.League.Normalize()
		id := e.ids.Canonical(league, t.TeamID)
		i, ok := index[league]
		if !ok {
			index[league] = len(groups)
			groups = append(groups, leagueGroup{league: league})
			i = len(groups) - 1
		}
		if !contains(groups[i].teamIDs, id) {
			groups[i].teamIDs = append(groups[i].teamIDs, id)
		}
	}
	return groups
}

// fetchWave issues one feed call per league group concurrently. Each task
// captures its own failure; a league outage yields an empty result without
// touching its siblings.
func (e *Engine) fetchWave(ctx context.Context, groups []leagueGroup, mode providers.Mode) []waveResult {
	results := make([]waveResult, len(groups))

	var wg sync.WaitGroup
	for i, group := range groups {
		wg.Add(1)
		go func(i int, group leagueGroup) {
			defer wg.Done()

			tokens := make([]string, 0, len(group.teamIDs))
			for _, id := range group.teamIDs {
				tokens = append(tokens, e.ids.SourceID(group.league, id))
			}

			games, err := e.fetch(ctx, group.league, mode, tokens)
			if err != nil {
				logging.Warn(e.logger, "feed fetch degraded to empty",
					slog.String(logging.FieldLeague, string(group.league)),
					slog.String(logging.FieldMode, string(mode)),
					"error", err,
				)
				games = nil
			}
			results[i] = waveResult{group: group, games: games}
		}(i, group)
	}
	wg.Wait()

	return results
}

func (e *Engine) fetch(ctx context.Context, league domain.League, mode providers.Mode, tokens []string) ([]domain.Game, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	defer cancel()

	start := e.now()
	games, err := e.provider.FetchGames(fetchCtx, league, mode, tokens)
	e.metrics.RecordFetchAttempt(league, string(mode), e.now().Sub(start), err)
	return games, err
}

// indexUpcoming builds the league:team -> next game lookup from the "next"
// wave. A game is reachable from either participant.
func (e *Engine) indexUpcoming(next []waveResult) map[string]domain.Game {
	upcoming := make(map[string]domain.Game)
	for _, res := range next {
		for _, g := range res.games {
			league := g.League.Normalize()
			upcoming[teamKey(league, e.ids.Canonical(league, g.Home.TeamID))] = g
			upcoming[teamKey(league, e.ids.Canonical(league, g.Away.TeamID))] = g
		}
	}
	return upcoming
}

// mergeRelevant walks the "today" results keeping games that involve a
// followed team and are not stale finals, then injects each uncovered team's
// next scheduled game. Every followed team contributes at most one entry.
func (e *Engine) mergeRelevant(today []waveResult, upcoming map[string]domain.Game) []domain.Game {
	now := e.now().UnixMilli()
	merged := make([]domain.Game, 0)

	for _, res := range today {
		league := res.group.league
		covered := make(map[string]bool)

		for _, g := range res.games {
			home := e.ids.Canonical(league, g.Home.TeamID)
			away := e.ids.Canonical(league, g.Away.TeamID)

			recentEnough := true
			if g.Status.Phase == domain.PhaseFinal {
				recentEnough = now-g.StartTime <= stalenessWindow.Milliseconds()
			}
			involvesFollowed := contains(res.group.teamIDs, home) || contains(res.group.teamIDs, away)

			if involvesFollowed && recentEnough {
				merged = append(merged, g)
				if contains(res.group.teamIDs, home) {
					covered[home] = true
				}
				if contains(res.group.teamIDs, away) {
					covered[away] = true
				}
			}
		}

		for _, id := range res.group.teamIDs {
			if covered[id] {
				continue
			}
			if g, ok := upcoming[teamKey(league, id)]; ok {
				merged = append(merged, g)
			}
		}
	}

	return merged
}

// dedupe collapses games sharing a key. The first occurrence keeps its
// position; a later duplicate overwrites the value (the fresher feed entry
// wins without reordering).
func (e *Engine) dedupe(games []domain.Game) []domain.Game {
	position := make(map[string]int, len(games))
	out := make([]domain.Game, 0, len(games))
	for _, g := range games {
		key := e.ids.GameKey(g)
		if i, ok := position[key]; ok {
			out[i] = g
			continue
		}
		position[key] = len(out)
		out = append(out, g)
	}
	return out
}

// sortGames ranks live before pre before final, then by ascending start time.
func (e *Engine) sortGames(games []domain.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		ri, rj := games[i].Status.Phase.SortRank(), games[j].Status.Phase.SortRank()
		if ri != rj {
			return ri < rj
		}
		return games[i].StartTime < games[j].StartTime
	})
}

func teamKey(league domain.League, teamID string) string {
	return string(league) + ":" + teamID
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
