package main

import (
	"context"
	"log"

	"course-platform/cmd"
	"course-platform/internal/data/repository"
	"course-platform/internal/wire"
	"course-platform/pkg/database"
	"course-platform/pkg/mailer"
	"course-platform/pkg/storage"
	"course-platform/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Apply schema migrations
	if err := database.RunMigrations(config.Database, "migrations"); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound mail and lecture media storage
	mail := mailer.NewSMTPMailer(config.Email, logger)

	store, err := storage.NewStorage(config.Storage)
	if err != nil {
		logger.Fatal("Failed to init storage", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, mail, store, logger)

	// Seed the first admin account when none exists
	if err := app.Service.User.EnsureInitialAdmin(context.Background()); err != nil {
		logger.Fatal("Failed to ensure initial admin", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
