package broadcast

import (
	"testing"
	"time"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/testutil"
)

func TestHubDeliversToSubscriber(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	want := []domain.Game{
		testutil.NewGame(domain.LeagueNFL, "DAL", 14, "PHI", 7, domain.PhaseLive, 1),
	}
	h.Publish(want)

	select {
	case got := <-ch:
		if len(got) != 1 || got[0].Home.TeamID != "DAL" {
			t.Fatalf("unexpected snapshot: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for publish")
	}
}

func TestHubPublishNeverBlocks(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe()
	defer cancel()

	// Overflow the buffer; each publish must return immediately.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer+10; i++ {
			h.Publish(nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()

	cancel()

	if _, open := <-ch; open {
		t.Fatal("expected channel closed after cancel")
	}
	if h.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", h.Subscribers())
	}
}

func TestHubCancelIsIdempotent(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe()

	cancel()
	cancel()

	if h.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", h.Subscribers())
	}
}

func TestHubFansOutToAllSubscribers(t *testing.T) {
	h := NewHub()
	a, cancelA := h.Subscribe()
	b, cancelB := h.Subscribe()
	defer cancelA()
	defer cancelB()

	if h.Subscribers() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", h.Subscribers())
	}

	h.Publish(nil)

	for _, ch := range []<-chan []domain.Game{a, b} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the publish")
		}
	}
}

func TestHubCancelledSubscriberNoLongerReceives(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	cancel()

	h.Publish([]domain.Game{
		testutil.NewGame(domain.LeagueNFL, "DAL", 0, "PHI", 0, domain.PhasePre, 1),
	})

	if games, open := <-ch; open {
		t.Fatalf("expected closed channel, received %+v", games)
	}
}
