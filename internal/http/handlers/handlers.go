package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/follow"
	"github.com/iammaxlichter/SportScanner/internal/ids"
	"github.com/iammaxlichter/SportScanner/internal/logging"
	"github.com/iammaxlichter/SportScanner/internal/notify"
	"github.com/iammaxlichter/SportScanner/internal/poller"
)

// SnapshotSource serves the last completed poll's game list.
type SnapshotSource interface {
	Games() []domain.Game
}

// LeagueFetcher serves the league-wide, team-agnostic today lookup.
type LeagueFetcher interface {
	TodayForLeagues(ctx context.Context, leagues []domain.League) []domain.Game
}

// Refresher triggers an out-of-schedule poll.
type Refresher interface {
	RefreshNow(ctx context.Context)
}

// Subscriber hands out snapshot update channels for the event stream.
type Subscriber interface {
	Subscribe() (<-chan []domain.Game, func())
}

// Handler wires HTTP routes to the pipeline.
type Handler struct {
	snapshots SnapshotSource
	fetcher   LeagueFetcher
	follows   follow.Storage
	ids       *ids.Registry
	refresher Refresher
	hub       Subscriber
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(snapshots SnapshotSource, fetcher LeagueFetcher, follows follow.Storage, registry *ids.Registry, refresher Refresher, hub Subscriber, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		snapshots: snapshots,
		fetcher:   fetcher,
		follows:   follows,
		ids:       registry,
		refresher: refresher,
		hub:       hub,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on poller health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Games returns the current snapshot of games for the followed teams.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	games := h.snapshots.Games()
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served snapshot", logging.FieldCount, len(games))
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": games}, h.logger)
}

// LeagueGames returns today's games for the requested leagues, league-wide,
// in the simplified shape UI filters consume.
func (h *Handler) LeagueGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	raw := r.URL.Query().Get("leagues")
	leagues := make([]domain.League, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		league, ok := domain.ParseLeague(part)
		if !ok {
			writeError(w, r, http.StatusBadRequest, "unknown league: "+part, h.logger)
			return
		}
		leagues = append(leagues, league)
	}

	simplified := make([]domain.LeagueGame, 0)
	if len(leagues) > 0 {
		for _, g := range h.fetcher.TodayForLeagues(r.Context(), leagues) {
			league := g.League.Normalize()
			simplified = append(simplified, domain.LeagueGame{
				League:   league,
				HomeID:   h.ids.Canonical(league, g.Home.TeamID),
				AwayID:   h.ids.Canonical(league, g.Away.TeamID),
				StartUTC: time.UnixMilli(g.StartTime).UTC().Format(time.RFC3339),
				Status:   domain.SimpleStatus(g.Status.Phase),
			})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": simplified}, h.logger)
}

// Badge returns the current badge text and color.
func (h *Handler) Badge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	games := h.snapshots.Games()
	writeJSON(w, http.StatusOK, map[string]string{
		"text":  notify.BadgeText(games),
		"color": notify.BadgeColor(games),
	}, h.logger)
}

// Refresh triggers a poll outside the timer. The poll runs in the background;
// an in-flight cycle quietly absorbs the trigger.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh unavailable", h.logger)
		return
	}
	go h.refresher.RefreshNow(context.Background())
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refreshing"}, h.logger)
}
