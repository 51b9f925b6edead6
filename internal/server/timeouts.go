package server

import "time"

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 0 // unlimited: /events holds the response open
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 10 * time.Second
)
