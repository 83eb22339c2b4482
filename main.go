package main

import (
	"context"
	"log"
	"time"

	"mentor-booking/cmd"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/usecase"
	"mentor-booking/internal/wire"
	"mentor-booking/pkg/database"
	"mentor-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	store := repository.NewMemoryStore()

	var repos *repository.Repository
	switch config.Storage.Driver {
	case utils.StoragePostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := database.Migrate(context.Background(), db); err != nil {
			logger.Fatal("Failed to apply schema", zap.Error(err))
		}
		logger.Info("Database connected successfully")

		repos = repository.NewPostgresRepository(db, store, logger)
	default:
		repos = repository.NewMemoryRepository(store)
	}

	if err := usecase.Seed(context.Background(), repos, config.App.SeedDemo, time.Now(), logger); err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
