package http

import (
	nethttp "net/http"

	"github.com/iammaxlichter/SportScanner/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games", handler.Games)
	mux.HandleFunc("/games/leagues", handler.LeagueGames)
	mux.HandleFunc("/badge", handler.Badge)
	mux.HandleFunc("/events", handler.Events)
	mux.HandleFunc("/refresh", handler.Refresh)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/", handler.TeamByPath)
	return mux
}
