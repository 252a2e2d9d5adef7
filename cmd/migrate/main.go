package main

import (
	"fmt"
	"os"

	"jointbank/backend/config"
	"jointbank/backend/database"
	"jointbank/backend/logging"
	"jointbank/backend/migrations"
	"jointbank/backend/security"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	configPath := flag.StringP("config", "c", "", "Path to a YAML config file")
	seed := flag.Bool("seed", false, "Seed the sample data after migrating")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, logging.Format(cfg.LogFormat, cfg.Env))

	// Initialize database connection
	if err := database.InitDB(cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer database.DB.Close()

	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if *seed {
		security.InitializeEncryption(cfg.EncryptionKey)
		if err := migrations.SeedSampleData(database.DB); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed sample data")
		}
	}

	fmt.Println("Migrations completed successfully!")
}
