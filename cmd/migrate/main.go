package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"wealthyways/internal/config"
	"wealthyways/internal/database"
	"wealthyways/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: migrate <up|down|version> [N]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	m, err := database.NewMigrate(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer database.CloseMigrate(m)

	log := logger.Get()

	switch command := args[0]; command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
		log.Infof("Migrations applied successfully (%s)", dbConfig.Driver)

	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		log.Infof("Rolled back %d migration(s)", steps)

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info("No migrations applied")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		log.Infof("Version: %d, Dirty: %v", version, dirty)

	default:
		return fmt.Errorf("unknown command: %s (use up, down, or version)", command)
	}

	return nil
}
