package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Errorf("Port = %q, want 4000", cfg.Port)
	}
	if cfg.PollInterval != time.Minute {
		t.Errorf("PollInterval = %v, want 1m", cfg.PollInterval)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v, want 5s", cfg.FetchTimeout)
	}
	if cfg.FollowDB != "data/follows.db" {
		t.Errorf("FollowDB = %q", cfg.FollowDB)
	}
	if cfg.Proxy.BaseURL == "" {
		t.Error("Proxy.BaseURL must have a default")
	}
	if cfg.Proxy.MinGap != 200*time.Millisecond {
		t.Errorf("Proxy.MinGap = %v, want 200ms", cfg.Proxy.MinGap)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics enabled by default")
	}
	if cfg.Metrics.Port != "9090" {
		t.Errorf("Metrics.Port = %q, want 9090", cfg.Metrics.Port)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("POLL_INTERVAL", "2m")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("FOLLOW_DB", ":memory:")
	t.Setenv("PROXY_URL", "http://localhost:9999")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.PollInterval != 2*time.Minute {
		t.Errorf("PollInterval = %v", cfg.PollInterval)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if cfg.FollowDB != ":memory:" {
		t.Errorf("FollowDB = %q", cfg.FollowDB)
	}
	if cfg.Proxy.BaseURL != "http://localhost:9999" {
		t.Errorf("Proxy.BaseURL = %q", cfg.Proxy.BaseURL)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled")
	}
}

func TestLoadEnforcesPollFloor(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "5s")

	if got := Load().PollInterval; got != time.Minute {
		t.Fatalf("PollInterval = %v, want floor of 1m", got)
	}
}

func TestDurationEnvOrDefaultRejectsGarbage(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")
	if got := Load().FetchTimeout; got != 5*time.Second {
		t.Fatalf("FetchTimeout = %v, want default on parse failure", got)
	}

	t.Setenv("FETCH_TIMEOUT", "-2s")
	if got := Load().FetchTimeout; got != 5*time.Second {
		t.Fatalf("FetchTimeout = %v, want default on negative", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"0", true, false},
		{"false", true, false},
		{"off", true, false},
		{"maybe", true, true},
	}
	for _, tc := range cases {
		t.Setenv("TEST_BOOL", tc.raw)
		if got := boolEnvOrDefault("TEST_BOOL", tc.def); got != tc.want {
			t.Errorf("boolEnvOrDefault(%q, %v) = %v, want %v", tc.raw, tc.def, got, tc.want)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := intEnvOrDefault("TEST_INT", 7); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	t.Setenv("TEST_INT", "not a number")
	if got := intEnvOrDefault("TEST_INT", 7); got != 7 {
		t.Fatalf("got %d, want default", got)
	}
}
