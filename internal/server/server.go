package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osa911/contact-api/internal/api/handlers"
	"github.com/osa911/contact-api/internal/api/middleware"
	"github.com/osa911/contact-api/internal/config"
	"github.com/osa911/contact-api/internal/email"
	"github.com/osa911/contact-api/internal/logging"
	"github.com/osa911/contact-api/internal/server/routes"
	"github.com/osa911/contact-api/internal/tasks"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Server represents the HTTP server
type Server struct {
	cfg        *config.Config
	logger     *logging.Logger
	router     *gin.Engine
	background *tasks.Runner
	newSender  email.Factory
}

// Option customizes a Server.
type Option func(*Server)

// WithSenderFactory replaces the Resend-backed sender factory.
func WithSenderFactory(f email.Factory) Option {
	return func(s *Server) {
		s.newSender = f
	}
}

// NewServer creates a new server instance with all routes registered
func NewServer(cfg *config.Config, logger *logging.Logger, opts ...Option) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own access log is replaced by middleware.RequestLogger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	s := &Server{
		cfg:        cfg,
		logger:     logger,
		router:     gin.New(),
		background: tasks.NewRunner(logger),
		newSender:  email.NewResendFactory(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(otelgin.Middleware(cfg.ServiceName))
	routes.SetupGlobalMiddleware(s.router, logger, routes.GlobalMiddleware{
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			Development:    !cfg.IsProduction(),
		},
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	routes.Setup(s.router, &routes.Handlers{
		Contact: handlers.NewContactHandler(cfg.ResendAPIKey, s.newSender, s.background, logger),
		Health:  handlers.NewHealthHandler(cfg.EmailConfigured()),
	}, logger)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully and gives
// pending confirmation emails until the shutdown deadline to finish.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server on %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.logger.Warn("Shutdown signal received, closing server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown: %v", err)
		_ = srv.Close()
	}

	if err := s.background.Wait(shutdownCtx); err != nil {
		s.logger.Warn("Abandoning pending background tasks: %v", err)
	}

	s.logger.Info("Server stopped cleanly")
	return nil
}
