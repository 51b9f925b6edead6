package proxy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/providers"
)

const samplePayload = `{
	"games": [
		{
			"league": "nfl",
			"home": {"teamId": "DAL", "name": "Dallas Cowboys", "logo": "dal.png", "score": 14},
			"away": {"teamId": "PHI", "name": "Philadelphia Eagles", "logo": "phi.png", "score": 7},
			"status": {"phase": "live", "clock": "Q2 10:32", "possession": "DAL", "down": 2, "distance": 7, "yardLine": "PHI 34"},
			"startTime": 1700000000000
		}
	]
}`

func TestFetchGamesQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"games": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := c.FetchGames(context.Background(), domain.League("NFL"), providers.ModeToday, []string{"DAL", "PHI"}); err != nil {
		t.Fatalf("FetchGames: %v", err)
	}

	want := map[string][]string{
		"league": {"nfl"},
		"mode":   {"today"},
		"team":   {"DAL", "PHI"},
	}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Fatalf("unexpected query (-want +got):\n%s", diff)
	}
}

func TestFetchGamesOmitsTeamParamForLeagueWide(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"games": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := c.FetchGames(context.Background(), domain.LeagueNBA, providers.ModeNext, nil); err != nil {
		t.Fatalf("FetchGames: %v", err)
	}

	if _, ok := gotQuery["team"]; ok {
		t.Fatalf("expected no team parameter, got %v", gotQuery["team"])
	}
	if gotQuery["mode"][0] != "next" {
		t.Fatalf("mode = %q, want %q", gotQuery["mode"][0], "next")
	}
}

func TestFetchGamesMapsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	games, err := c.FetchGames(context.Background(), domain.LeagueNFL, providers.ModeToday, nil)
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}

	want := []domain.Game{{
		League: domain.LeagueNFL,
		Home:   domain.TeamSide{TeamID: "DAL", Name: "Dallas Cowboys", Logo: "dal.png", Score: 14},
		Away:   domain.TeamSide{TeamID: "PHI", Name: "Philadelphia Eagles", Logo: "phi.png", Score: 7},
		Status: domain.GameStatus{
			Phase: domain.PhaseLive, Clock: "Q2 10:32", Possession: "DAL",
			Down: 2, Distance: 7, YardLine: "PHI 34",
		},
		StartTime: 1700000000000,
	}}
	if diff := cmp.Diff(want, games); diff != "" {
		t.Fatalf("unexpected games (-want +got):\n%s", diff)
	}
}

func TestFetchGamesNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	_, err := c.FetchGames(context.Background(), domain.LeagueNFL, providers.ModeToday, nil)
	if err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestFetchGamesMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"games": [`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	_, err := c.FetchGames(context.Background(), domain.LeagueNFL, providers.ModeToday, nil)
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchGamesContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := c.FetchGames(ctx, domain.LeagueNFL, providers.ModeToday, nil); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL("https://example.com/"); got != "https://example.com" {
		t.Fatalf("trailing slash kept: %q", got)
	}
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("empty base = %q, want default", got)
	}
}

func TestMapPhase(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.Phase
	}{
		{"live", domain.PhaseLive},
		{"LIVE", domain.PhaseLive},
		{"in_progress", domain.PhaseLive},
		{"in progress", domain.PhaseLive},
		{"final", domain.PhaseFinal},
		{"Ended", domain.PhaseFinal},
		{"pre", domain.PhasePre},
		{"scheduled", domain.PhasePre},
		{"", domain.PhasePre},
		{"  final  ", domain.PhaseFinal},
	}
	for _, tc := range cases {
		if got := mapPhase(tc.raw); got != tc.want {
			t.Errorf("mapPhase(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestMapGameLeagueFallback(t *testing.T) {
	// A payload entry missing its own league inherits the query's league.
	g := mapGame(domain.LeagueNHL, gameResponse{
		Home: sideResponse{TeamID: " NYR "},
		Away: sideResponse{TeamID: "BOS"},
	})
	if g.League != domain.LeagueNHL {
		t.Fatalf("league = %q, want nhl", g.League)
	}
	if g.Home.TeamID != "NYR" {
		t.Fatalf("expected trimmed team id, got %q", g.Home.TeamID)
	}
}
