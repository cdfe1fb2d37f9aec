package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TestRank-hq/testrank/internal/api"
	"github.com/TestRank-hq/testrank/internal/config"
	"github.com/TestRank-hq/testrank/internal/priority"
	"github.com/TestRank-hq/testrank/internal/store"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	scoring, err := config.LoadScoring(cfg.ScoringFile, cfg.BulkWorkers)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.ScoringFile).Msg("failed to load scoring configuration")
	}
	enhancer := priority.NewEnhancer(scoring)

	// Run persistence is optional; the server works without a database.
	var st *store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.Open(cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("database unavailable, run persistence disabled")
			st = nil
		} else {
			defer st.Close()
			if err := st.EnsureSchema(context.Background()); err != nil {
				log.Fatal().Err(err).Msg("failed to ensure database schema")
			}
		}
	}

	// Create server
	srv, err := api.NewServer(cfg, enhancer, st)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	// Start server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not gracefully shutdown the server")
		}
		close(done)
	}()

	log.Info().Int("port", cfg.Port).Msg("starting API server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("could not listen on port")
	}

	<-done
	log.Info().Msg("server stopped")
}
