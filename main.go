package main

import (
	"context"
	"log"

	"movie-reviews/cmd"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/wire"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using zap production logger.", err)
		if logger, err = zap.NewProduction(); err != nil {
			log.Fatalf("Failed to init fallback logger: %v", err)
		}
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if config.Database.AutoMigrate {
		if err := database.Migrate(config.Database, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	db, err := database.InitDB(context.Background(), config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	router := wire.Wiring(repos, db, config, logger)

	if err := cmd.APIServer(router, config, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
