// Package notify turns detected changes into user-facing notifications and
// badge updates. It holds no state of its own: the platform's notification
// system deduplicates by the identity string.
package notify

import (
	"fmt"
	"log/slog"

	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/ids"
	"github.com/iammaxlichter/SportScanner/internal/metrics"
)

// Notification is one user-facing alert. ID embeds the game key and both
// scores so a repeat at the same score cannot duplicate.
type Notification struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Sink receives notifications and badge updates. Implementations are expected
// to be fast; the dispatcher calls them inline from the poll cycle.
type Sink interface {
	Notify(n Notification)
	SetBadge(text, color string)
}

// Dispatcher fans detected changes out to a Sink.
type Dispatcher struct {
	ids     *ids.Registry
	sink    Sink
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewDispatcher constructs a Dispatcher. A nil sink falls back to logging.
func NewDispatcher(registry *ids.Registry, sink Sink, logger *slog.Logger, recorder *metrics.Recorder) *Dispatcher {
	if sink == nil {
		sink = &LogSink{Logger: logger}
	}
	return &Dispatcher{
		ids:     registry,
		sink:    sink,
		logger:  logger,
		metrics: recorder,
	}
}

// Dispatch emits one notification per meaningful change and refreshes the
// badge from the full game list.
func (d *Dispatcher) Dispatch(changes, all []domain.Game) {
	for _, g := range changes {
		d.sink.Notify(d.Build(g))
		d.metrics.RecordNotification()
	}
	d.sink.SetBadge(BadgeText(all), BadgeColor(all))
}

// Build derives the notification for one changed game.
func (d *Dispatcher) Build(g domain.Game) Notification {
	return Notification{
		ID:    fmt.Sprintf("%s:%d-%d", d.ids.GameKey(g), g.Home.Score, g.Away.Score),
		Title: title(g.Status.Phase),
		Body:  fmt.Sprintf("%s %d @ %s %d", g.Away.Name, g.Away.Score, g.Home.Name, g.Home.Score),
	}
}

func title(p domain.Phase) string {
	switch p {
	case domain.PhaseFinal:
		return "Final"
	case domain.PhaseLive:
		return "Score update"
	default:
		return "Game update"
	}
}

// LogSink writes notifications to the structured log. It is the default sink
// when no platform binding is wired.
type LogSink struct {
	Logger *slog.Logger
}

func (s *LogSink) Notify(n Notification) {
	if s.Logger != nil {
		s.Logger.Info("notification", slog.String("id", n.ID), slog.String("title", n.Title), slog.String("body", n.Body))
	}
}

func (s *LogSink) SetBadge(text, color string) {
	if s.Logger != nil {
		s.Logger.Debug("badge", slog.String("text", text), slog.String("color", color))
	}
}
