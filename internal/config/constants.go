package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envFetchTimeout = "FETCH_TIMEOUT"
	envFollowDB     = "FOLLOW_DB"
	envProxyURL     = "PROXY_URL"
	envProxyMinGap  = "PROXY_MIN_GAP"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The pipeline is poll-based with a one minute floor; anything faster
	// gains nothing from the upstream proxy.
	defaultPollInterval = Duration(time.Minute)
	minPollInterval     = Duration(time.Minute)
	// Bounded per-query timeout so one slow league cannot stretch a poll
	// cycle past the interval.
	defaultFetchTimeout = 5 * Duration(time.Second)
	defaultFollowDB     = "data/follows.db"
	defaultProxyURL     = "https://sportscanner-proxy.semiultra.workers.dev"
	// Minimum spacing between proxy calls, shared across leagues.
	defaultProxyMinGap = 200 * Duration(time.Millisecond)
	defaultMetricsPort = "9090"
)
