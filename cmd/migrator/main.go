package main

import (
	"wallet-settlement/internal/config"
	"wallet-settlement/internal/database"
	"wallet-settlement/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(true, "info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)

	if err := database.Migrate(cfg.Database.DSN()); err != nil {
		log.Fatal().Err(err).Msg("Migration run failed")
	}

	log.Info().Str("database", cfg.Database.Name).Msg("Migrations applied")
}
