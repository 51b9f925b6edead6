package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	FetchTimeout Duration
	FollowDB     string
	Proxy        ProxyConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	poll := durationEnvOrDefault(envPollInterval, defaultPollInterval)
	// Polling below one minute is not supported; the upstream proxy caches
	// at that granularity anyway.
	if poll < minPollInterval {
		poll = minPollInterval
	}
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: poll,
		FetchTimeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		FollowDB:     envOrDefault(envFollowDB, defaultFollowDB),
		Proxy:        loadProxy(),
		Metrics:      loadMetrics(),
	}
}
