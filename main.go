// main.go
package main

import (
	"context"
	"log"
	"time"

	"shop-backend/cmd"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/wire"
	"shop-backend/pkg/database"
	"shop-backend/pkg/utils"

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
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Warn("Failed to disconnect from database", zap.Error(err))
		}
	}()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db.Database(), logger)

	// Token issuer is process-wide and immutable after startup
	tokens := utils.NewTokenIssuer(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
	)

	// Wire all dependencies
	app := wire.Wiring(repos, config, tokens, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
