package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iammaxlichter/SportScanner/internal/broadcast"
	"github.com/iammaxlichter/SportScanner/internal/config"
	"github.com/iammaxlichter/SportScanner/internal/detector"
	"github.com/iammaxlichter/SportScanner/internal/follow"
	httpserver "github.com/iammaxlichter/SportScanner/internal/http"
	"github.com/iammaxlichter/SportScanner/internal/http/handlers"
	"github.com/iammaxlichter/SportScanner/internal/http/middleware"
	"github.com/iammaxlichter/SportScanner/internal/ids"
	"github.com/iammaxlichter/SportScanner/internal/logging"
	"github.com/iammaxlichter/SportScanner/internal/merge"
	"github.com/iammaxlichter/SportScanner/internal/metrics"
	"github.com/iammaxlichter/SportScanner/internal/notify"
	"github.com/iammaxlichter/SportScanner/internal/poller"
	"github.com/iammaxlichter/SportScanner/internal/providers"
	"github.com/iammaxlichter/SportScanner/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the pipeline wiring: follow store, merge engine, detector,
// dispatcher, poller, and the HTTP surfaces.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	follows       follow.Storage
	snapshots     *store.SnapshotStore
	hub           *broadcast.Hub
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	provider := newProviderFactory(logger).build(cfg)
	follows, err := follow.NewSQLite(cfg.FollowDB)
	if err != nil {
		return nil, err
	}
	return newServerWithDeps(cfg, logger, provider, follows, nil), nil
}

// newServerWithDeps wires the pipeline around injectable provider/follow
// store/metrics, which tests use to avoid real upstreams.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, provider providers.FeedProvider, follows follow.Storage, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	registry := ids.NewRegistry()
	snapshots := store.NewSnapshotStore()
	hub := broadcast.NewHub()

	engine := merge.New(provider, registry, logger, recorder, cfg.FetchTimeout)
	det := detector.New(registry, snapshots)
	dispatcher := notify.NewDispatcher(registry, nil, logger, recorder)
	plr := poller.New(follows, engine, det, dispatcher, hub, logger, recorder, cfg.PollInterval)

	httpSrv := buildHTTPServer(cfg, snapshots, engine, follows, registry, hub, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		follows:       follows,
		snapshots:     snapshots,
		hub:           hub,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, snapshots *store.SnapshotStore, engine *merge.Engine, follows follow.Storage, registry *ids.Registry, hub *broadcast.Hub, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(snapshots, engine, follows, registry, plr, hub, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.follows != nil {
		if err := s.follows.Close(); err != nil {
			logging.Warn(s.logger, "follow store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
