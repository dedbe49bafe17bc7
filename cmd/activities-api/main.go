// Package main is the entry point for the Mergington High School activities API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/api"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/registry"
)

func main() {
	// Load configuration
	cfg := config.Get()

	// Setup logging
	setupLogging(cfg.LogLevel)

	log.Info().
		Str("version", cfg.Version).
		Str("listen", cfg.ListenAddr()).
		Msg("Starting activities API server")

	// Seed the in-memory activity registry. State is process-local and
	// resets on restart.
	reg := registry.New(registry.Default())
	log.Info().Int("activities", reg.Len()).Msg("Activity catalog seeded")

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      api.NewRouter(cfg, reg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", cfg.ListenAddr()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// setupLogging configures zerolog based on log level.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
