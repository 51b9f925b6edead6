package server

import (
	"context"

	"github.com/iammaxlichter/SportScanner/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	RefreshNow(ctx context.Context)
	Status() poller.Status
}
