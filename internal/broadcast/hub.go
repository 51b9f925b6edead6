// Package broadcast fans completed snapshots out to interested listeners
// (UI surfaces, the event stream endpoint). Delivery is fire-and-forget: a
// slow subscriber misses an update rather than blocking the poll cycle.
package broadcast

import (
	"sync"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

const subscriberBuffer = 4

// Hub is a minimal in-process publish/subscribe fan-out.
type Hub struct {
	mu   sync.Mutex
	subs map[chan []domain.Game]struct{}
}

// NewHub constructs an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan []domain.Game]struct{})}
}

// Subscribe registers a listener. The returned cancel function must be called
// to release the subscription; the channel is closed by it.
func (h *Hub) Subscribe() (<-chan []domain.Game, func()) {
	ch := make(chan []domain.Game, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish sends the snapshot to every subscriber without blocking. A
// subscriber whose buffer is full is skipped; it will catch up on the next
// poll.
func (h *Hub) Publish(games []domain.Game) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- games:
		default:
		}
	}
}

// Subscribers reports the current listener count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
