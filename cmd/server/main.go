// Package main implements the entry point for the meetup API server,
// which manages users, venues, meetups, and their events.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meetuphub/meetup-api/internal/config"
	"github.com/meetuphub/meetup-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status, version) and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to set up database", "error", err)
		os.Exit(1)
	}

	if *migrateCmd != "" {
		if err := runMigrations(db, *migrateCmd, appLogger); err != nil {
			appLogger.Error("migration failed", "error", err)
			os.Exit(1)
		}
		if err := db.Close(); err != nil {
			appLogger.Error("error closing database connection", "error", err)
		}
		return
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		appLogger.Error("failed to initialize application", "error", err)
		if cerr := db.Close(); cerr != nil {
			appLogger.Error("error closing database connection", "error", cerr)
		}
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("server exited with error: %v", err))
		os.Exit(1)
	}
}
