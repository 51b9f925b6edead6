package proxy

import "time"

const (
	defaultBaseURL     = "https://sportscanner-proxy.semiultra.workers.dev"
	defaultHTTPTimeout = 10 * time.Second

	paramLeague = "league"
	paramMode   = "mode"
	paramTeam   = "team"
)
