package main

import (
	"os"

	"github.com/oggyb/matchcore/internal/config"
	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger.InitFromConfig(cfg)
	log := logger.With("component", "seed")

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	if err := db.SeedTestData(database, log); err != nil {
		log.Error("failed to seed", "err", err)
		os.Exit(1)
	}

	log.Info("seeding completed")
}
