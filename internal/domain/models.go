package domain

import "strings"

// League identifies a supported competition. Closed set: adding a league means
// adding a member here plus its alias table in the ids package.
type League string

const (
	LeagueNBA   League = "nba"
	LeagueNFL   League = "nfl"
	LeagueMLB   League = "mlb"
	LeagueNHL   League = "nhl"
	LeagueNCAAF League = "ncaaf"
)

// Leagues returns all known leagues.
func Leagues() []League {
	return []League{LeagueNBA, LeagueNFL, LeagueMLB, LeagueNHL, LeagueNCAAF}
}

// ParseLeague normalizes a raw league string and reports whether it is known.
func ParseLeague(raw string) (League, bool) {
	l := League(strings.ToLower(strings.TrimSpace(raw)))
	switch l {
	case LeagueNBA, LeagueNFL, LeagueMLB, LeagueNHL, LeagueNCAAF:
		return l, true
	}
	return l, false
}

// Normalize lowercases the league value. Feed responses are not consistent
// about casing, so every comparison goes through this first.
func (l League) Normalize() League {
	return League(strings.ToLower(string(l)))
}

// Phase is the lifecycle stage of a game. Transitions are monotonic in
// practice: pre -> live -> final.
type Phase string

const (
	PhasePre   Phase = "pre"
	PhaseLive  Phase = "live"
	PhaseFinal Phase = "final"
)

// SortRank orders phases for display: live games first, then upcoming, then finals.
func (p Phase) SortRank() int {
	switch p {
	case PhaseLive:
		return 0
	case PhasePre:
		return 1
	default:
		return 2
	}
}

// GameStatus carries the phase plus sport-specific situational fields. The
// upstream proxy treats these as an optional bag; only the fields relevant to
// the game's sport are populated.
type GameStatus struct {
	Phase      Phase  `json:"phase"`
	Clock      string `json:"clock,omitempty"`
	Possession string `json:"possession,omitempty"`
	Down       int    `json:"down,omitempty"`
	Distance   int    `json:"distance,omitempty"`
	YardLine   string `json:"yardLine,omitempty"`
	Outs       int    `json:"outs,omitempty"`
	OnFirst    bool   `json:"onFirst,omitempty"`
	OnSecond   bool   `json:"onSecond,omitempty"`
	OnThird    bool   `json:"onThird,omitempty"`
}

// TeamSide is one participant of a game. Values are immutable once attached to
// a snapshot; a new poll produces fresh TeamSide values.
type TeamSide struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Logo   string `json:"logo,omitempty"`
	Score  int    `json:"score"`
}

// Game is the canonical game shape flowing through the pipeline.
// StartTime is epoch milliseconds and is stable for a matchup across polls,
// which makes it usable as part of game identity.
type Game struct {
	League    League     `json:"league"`
	Home      TeamSide   `json:"home"`
	Away      TeamSide   `json:"away"`
	Status    GameStatus `json:"status"`
	StartTime int64      `json:"startTime"`
}

// FollowedTeam is a team the user has chosen to track.
type FollowedTeam struct {
	League League `json:"league"`
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Logo   string `json:"logo,omitempty"`
}

// LeagueGame is the simplified, team-agnostic shape served to UI surfaces
// that only need "does league L have games today".
type LeagueGame struct {
	League   League `json:"league"`
	HomeID   string `json:"homeId"`
	AwayID   string `json:"awayId"`
	StartUTC string `json:"startUtc"`
	Status   string `json:"status"`
}

// SimpleStatus flattens a phase into the coarse status vocabulary used by
// LeagueGame consumers.
func SimpleStatus(p Phase) string {
	switch Phase(strings.ToLower(string(p))) {
	case PhaseLive, Phase("in_progress"):
		return "in_progress"
	case PhaseFinal:
		return "final"
	case Phase("postponed"):
		return "postponed"
	default:
		return "scheduled"
	}
}
