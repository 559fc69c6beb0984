package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"taskflow/internal/config"
	"taskflow/internal/db"
	"taskflow/internal/handler"
	"taskflow/internal/httpserver"
	"taskflow/internal/repository"
	"taskflow/internal/service"
	"taskflow/pkg/logger"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := logger.NewLogger()
	defer logger.Sync()

	// Init document store
	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	database := client.Database(cfg.Mongo.Name)

	// Init Repositories
	userRepo := repository.NewUserRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	taskRepo := repository.NewTaskRepository(database)

	// Init Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute)

	// Init Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler()
	projectHandler := handler.NewProjectHandler(projectRepo, taskRepo, logger)
	taskHandler := handler.NewTaskHandler(taskRepo, projectRepo, logger)

	// Router
	router := httpserver.NewRouter(
		authHandler,
		userHandler,
		projectHandler,
		taskHandler,
		cfg.JWT.Secret,
		userRepo,
		func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		cfg.CORS.Origins,
	)

	// Start API server
	logger.Info("Starting TaskFlow API", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}
