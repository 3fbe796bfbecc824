package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yaakydd/DriveGreen-sub000/internal/api"
	"github.com/yaakydd/DriveGreen-sub000/internal/api/handlers"
	"github.com/yaakydd/DriveGreen-sub000/internal/engine"
	"github.com/yaakydd/DriveGreen-sub000/internal/repository"
	"github.com/yaakydd/DriveGreen-sub000/internal/service"
	"github.com/yaakydd/DriveGreen-sub000/pkg/config"
	"github.com/yaakydd/DriveGreen-sub000/pkg/logger"
	"github.com/yaakydd/DriveGreen-sub000/pkg/postgres"

	"go.uber.org/zap"
)

// @title DriveGreen Eco-Copilot API
// @version 1.0
// @description Rule-based emissions assistant and prediction proxy for the DriveGreen CO2 estimator

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting DriveGreen Eco-Copilot service")

	// Optional analytics store
	var eventRepo *repository.ChatEventRepository
	if cfg.Database.Enabled {
		ctx := context.Background()
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		eventRepo = repository.NewChatEventRepository(db, appLogger)
	} else {
		appLogger.Info("Chat analytics disabled")
	}

	// The knowledge base is built once and stays read-only for the process
	// lifetime.
	kb := engine.DefaultKnowledgeBase()
	eng := engine.New(kb)
	appLogger.Info("Knowledge base loaded", zap.Int("entries", kb.Len()))

	// Initialize services
	chatService := service.NewChatService(eng, eventRepo, &cfg.Chat, appLogger)
	predictionService := service.NewPredictionService(&cfg.Predictor, appLogger)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	predictHandler := handlers.NewPredictHandler(predictionService, appLogger)

	// Setup router
	app := api.SetupRouter(chatHandler, predictHandler)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
