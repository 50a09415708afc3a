package main

import (
	"context"
	"log"
	"time"

	"train-booking/cmd"
	"train-booking/internal/data/repository"
	"train-booking/internal/seed"
	"train-booking/internal/wire"
	"train-booking/pkg/database"
	"train-booking/pkg/mailer"
	"train-booking/pkg/scheduler"
	"train-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.Migrate(ctx, db)
		cancel()
		if err != nil {
			logger.Fatal("Failed to apply schema", zap.Error(err))
		}
		logger.Info("Schema applied")
	}

	// Connect to Redis (wizard booking)
	rdb, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))

	// Initialize all repositories
	repos := repository.NewRepository(db, rdb, config.Session.WizardTTL, logger)

	// Katalog kereta & rute
	seeder := seed.NewSeeder(repos, nil, logger)
	if config.Seed.OnStart {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		created, err := seeder.SeedNetwork(ctx, config.Seed.Stations)
		cancel()
		if err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		logger.Info("Catalog seeded", zap.Int("routes_created", created))
	}

	// Background jobs
	jobs, err := scheduler.New(logger)
	if err != nil {
		logger.Fatal("Failed to init scheduler", zap.Error(err))
	}
	if err := jobs.RegisterSessionCleanup(config.Session.CleanupCron, repos.Session); err != nil {
		logger.Fatal("Failed to register session cleanup", zap.Error(err))
	}
	jobs.Start()
	defer func() {
		if err := jobs.Shutdown(); err != nil {
			logger.Warn("Scheduler shutdown error", zap.Error(err))
		}
	}()

	// Wire all dependencies
	app := wire.Wiring(repos, config, mailer.New(config.Email, logger), seeder, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("HTTP server stopped", zap.Error(err))
	}
}
