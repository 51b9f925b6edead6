package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Events streams snapshot updates as server-sent events. Each completed poll
// produces one "games" event. Delivery is best-effort; a client that
// disconnects simply resubscribes.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.hub == nil {
		writeError(w, r, http.StatusServiceUnavailable, "events unavailable", h.logger)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, http.StatusInternalServerError, "streaming unsupported", h.logger)
		return
	}

	updates, cancel := h.hub.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case games, open := <-updates:
			if !open {
				return
			}
			payload, err := json.Marshal(map[string]any{"games": games})
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: games\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
