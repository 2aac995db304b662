package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osa911/contact-api/internal/server"
	"github.com/osa911/contact-api/internal/tracing"
	"github.com/osa911/contact-api/internal/version"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		defer logger.Close()

		logger.Info("Starting contact-api %s in %s mode", version.Version, cfg.Environment)
		if !cfg.EmailConfigured() {
			logger.Warn("RESEND_API_KEY is not set; contact submissions will be rejected with 500")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := tracing.Init(ctx, tracing.Config{
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    cfg.OTLPInsecure,
			ServiceName: cfg.ServiceName,
			Environment: cfg.Environment,
			Version:     version.Version,
		}, logger)
		if err != nil {
			logger.Warn("Tracing disabled: %v", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				logger.Warn("Failed to flush traces: %v", err)
			}
		}()

		srv := server.NewServer(cfg, logger)
		if err := srv.Run(ctx); err != nil {
			logger.Error("Server stopped with error: %v", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}
