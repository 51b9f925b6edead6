package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

// Teams lists or adds followed teams depending on method.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTeams(w, r)
	case http.MethodPost:
		h.followTeam(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// TeamByPath handles DELETE /teams/{league}/{teamId}.
func (h *Handler) TeamByPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/teams"), "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, r, http.StatusBadRequest, "expected /teams/{league}/{teamId}", h.logger)
		return
	}
	league, ok := domain.ParseLeague(parts[0])
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown league: "+parts[0], h.logger)
		return
	}

	if err := h.follows.Unfollow(r.Context(), league, parts[1]); err != nil {
		writeError(w, r, http.StatusInternalServerError, "unfollow failed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "unfollowed"}, h.logger)
}

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.follows.ListTeams(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "listing followed teams failed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"teams": teams}, h.logger)
}

func (h *Handler) followTeam(w http.ResponseWriter, r *http.Request) {
	var team domain.FollowedTeam
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid body", h.logger)
		return
	}

	league, ok := domain.ParseLeague(string(team.League))
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown league: "+string(team.League), h.logger)
		return
	}
	team.League = league
	team.TeamID = strings.TrimSpace(team.TeamID)
	if team.TeamID == "" {
		writeError(w, r, http.StatusBadRequest, "teamId required", h.logger)
		return
	}
	if team.Name == "" {
		team.Name = team.TeamID
	}

	if err := h.follows.Follow(r.Context(), team); err != nil {
		writeError(w, r, http.StatusInternalServerError, "follow failed", h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "followed"}, h.logger)
}
