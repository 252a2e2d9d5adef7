package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jointbank/backend/api"
	"jointbank/backend/config"
	"jointbank/backend/database"
	"jointbank/backend/logging"
	"jointbank/backend/migrations"
	"jointbank/backend/security"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	// Parse command line flags
	configPath := flag.StringP("config", "c", "", "Path to a YAML config file")
	port := flag.StringP("port", "p", "", "Port to listen on (overrides PORT)")
	resetDB := flag.Bool("reset-db", false, "Reset the sample data")
	noExit := flag.Bool("no-exit", false, "Don't exit after database reset")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *port != "" {
		cfg.Port = *port
	}

	logging.Init(cfg.LogLevel, logging.Format(cfg.LogFormat, cfg.Env))
	log.Info().Str("env", cfg.Env).Msg("Starting jointbank backend")

	if cfg.EncryptionKey == config.DefaultEncryptionKey {
		log.Warn().Msg("ENCRYPTION_KEY not set, using a default key. This is NOT secure for production!")
	}
	security.InitializeEncryption(cfg.EncryptionKey)

	if err := database.InitDB(cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer database.DB.Close()

	log.Info().Msg("Running migrations...")
	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// If running in reset mode, exit after the reset unless --no-exit is given
	if *resetDB {
		if err := migrations.ResetSampleData(database.DB); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset sample data")
		}
		if !*noExit {
			log.Info().Msg("Database reset completed successfully. Exiting.")
			return
		}
	} else if cfg.SeedSampleData {
		if err := migrations.SeedSampleData(database.DB); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed sample data")
		}
	}

	server := api.NewServer(api.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Development:    cfg.IsDevelopment(),
		Logger:         log.Logger,
	})

	srv := &http.Server{
		Handler:      server.Handler(),
		Addr:         cfg.Addr(),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
