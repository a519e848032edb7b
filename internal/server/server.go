package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/config"
	"github.com/jackzampolin/docreview/internal/export"
	"github.com/jackzampolin/docreview/internal/home"
	"github.com/jackzampolin/docreview/internal/review"
	"github.com/jackzampolin/docreview/internal/server/endpoints"
	"github.com/jackzampolin/docreview/internal/shell"
	"github.com/jackzampolin/docreview/internal/svcctx"
)

// Server hosts one review session over HTTP.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// Session is the review session to serve
	Session *review.SyncSession
	// Presenter builds view models (default: "_" internal prefix, no schema)
	Presenter *shell.Presenter
	// Exports saves export documents (default: {home}/exports, JSON)
	Exports *export.Writer
	// Home is the docreview home directory
	Home *home.Dir
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
	// LogLevel, when set, follows log.level on config reload
	LogLevel *slog.LevelVar
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Presenter == nil {
		cfg.Presenter = shell.NewPresenter(shell.Options{})
	}
	if cfg.Home == nil {
		h, err := home.New("")
		if err != nil {
			return nil, err
		}
		cfg.Home = h
	}
	if cfg.Exports == nil {
		cfg.Exports = export.NewWriter(cfg.Home.ExportsDir(), export.FormatJSON, cfg.Logger)
	}

	s := &Server{
		logger:   cfg.Logger,
		services: &svcctx.Services{
			Session:   cfg.Session,
			Presenter: cfg.Presenter,
			Exports:   cfg.Exports,
			Config:    cfg.ConfigManager,
			Logger:    cfg.Logger,
			Home:      cfg.Home,
		},
	}

	// Apply export and log settings on config changes
	if cfg.ConfigManager != nil {
		cfg.ConfigManager.OnChange(func(c *config.Config) {
			s.applyConfig(c, cfg.LogLevel)
		})
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All() {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(s.logRequests(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// applyConfig updates the export writer and log level from a reloaded config.
func (s *Server) applyConfig(c *config.Config, level *slog.LevelVar) {
	exports := s.services.Exports
	format, err := export.ParseFormat(c.Review.ExportFormat)
	if err != nil {
		s.logger.Warn("ignoring export format from config", "error", err)
		format = ""
	}
	dir := ""
	if s.services.Home != nil {
		dir = c.ResolveExportDir(s.services.Home.ExportsDir())
	}
	exports.Configure(dir, format)

	if level != nil {
		if l, err := config.ParseLevel(c.Log.Level); err == nil {
			level.Set(l)
		}
	}
	s.logger.Info("config reloaded",
		"export_dir", exports.Dir(),
		"export_format", exports.Format(),
		"log_level", c.Log.Level,
	)
}

// Handler returns the server's root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return err
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Exports returns the export writer.
func (s *Server) Exports() *export.Writer {
	return s.services.Exports
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := svcctx.WithServices(r.Context(), s.services)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures a review session is loaded.
// Returns 503 Service Unavailable otherwise.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.services.Session == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"review session not loaded"}`))
			return
		}
		next(w, r)
	}
}
