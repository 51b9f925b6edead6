package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even when disabled")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupEnabledExportsPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		Port:    "0",
	})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	rec.RecordFetchAttempt(domain.LeagueNFL, "today", 25*time.Millisecond, nil)
	rec.RecordPollerCycle(30*time.Millisecond, nil)
	rec.RecordChanges(2)
	rec.RecordNotification()
	rec.RecordHTTPRequest(http.MethodGet, "/games", 200, 5*time.Millisecond)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := recorder.Body.String()
	for _, metricName := range []string{
		"feed_fetch_attempts_total",
		"poller_cycles_total",
		"game_changes_total",
		"notifications_dispatched_total",
		"http_requests_total",
	} {
		if !strings.Contains(body, metricName) {
			t.Errorf("scrape output missing %s", metricName)
		}
	}
}

func TestSetupPropagatesExporterFailure(t *testing.T) {
	orig := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("exporter init failed")
	}
	defer func() { promReaderFactory = orig }()

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil {
		t.Fatal("expected setup error")
	}
}
