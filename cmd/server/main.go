package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iammaxlichter/SportScanner/internal/config"
	"github.com/iammaxlichter/SportScanner/internal/logging"
	"github.com/iammaxlichter/SportScanner/internal/server"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "sportscanner",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server startup failed", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
