// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/clubkit/clubkit/internal/config"
	"github.com/clubkit/clubkit/internal/db"
	"github.com/clubkit/clubkit/internal/email"
	"github.com/clubkit/clubkit/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	var emailClient email.Sender
	if cfg.Email.Enabled {
		sesClient, err := email.NewSESClient(
			cfg.Email.AccessKeyID,
			cfg.Email.SecretAccessKey,
			cfg.Email.Region,
			cfg.Email.Sender,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize email client")
		}
		emailClient = sesClient
	}

	if err := scheduler.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	if cfg.Reminders.Enabled {
		if err := scheduler.RegisterReminderJobs(database, emailClient, int(cfg.Reminders.HoursBefore)); err != nil {
			log.Fatal().Err(err).Msg("Failed to register reminder jobs")
		}
	}
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	server, limiter := newServer(cfg, database)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().
			Str("app", cfg.App.Name).
			Int("port", cfg.App.Port).
			Str("environment", cfg.App.Environment).
			Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := scheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("Scheduler shutdown error")
		}
		limiter.Close()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
