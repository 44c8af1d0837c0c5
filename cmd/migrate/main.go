package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"trivia-backend/infrastructure/config"
	"trivia-backend/infrastructure/di"
)

func main() {
	seed := flag.Bool("seed", true, "insert the default categories when the table is empty")
	timeout := flag.Duration("timeout", time.Minute, "give up after this long")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("Migrations need the %s driver, got %s", config.DriverPostgres, cfg.Database.Driver)
	}

	cfg.Database.AutoMigrate = true
	cfg.Database.SeedCategories = false

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	level, err := di.ProvideLogLevel(cfg)
	if err != nil {
		log.Fatalf("Failed to parse log level: %v", err)
	}
	logger, syncLogger, err := di.ProvideLogger(cfg, level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer syncLogger()

	store, closeStore, err := di.ProvideStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
	defer closeStore()
	logger.Info("Schema migrated")

	if *seed {
		created, err := di.SeedCategories(ctx, store, logger)
		if err != nil {
			logger.Error("Seeding failed", zap.Error(err))
			return
		}
		logger.Info("Seed complete", zap.Int("categories_created", created))
	}
}
