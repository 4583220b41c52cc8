package main

import (
	"context"
	"log"
	"time"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/utils"

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Session janitor: drop long-expired sessions in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := repos.Session.CleanExpiredSessions(context.Background()); err != nil {
				logger.Warn("Session cleanup failed", zap.Error(err))
			}
		}
	}()

	// Payment gateway double. Seed 0 means non-deterministic.
	seed := config.Gateway.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gw := gateway.NewSimulated(seed, config.Gateway.ApprovalRate, time.Duration(config.Gateway.LatencyMs)*time.Millisecond)

	// Wire all dependencies
	app := wire.Wiring(repos, config, gw, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
