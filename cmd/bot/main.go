package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mroshb/quiz_bot/internal/api"
	"github.com/mroshb/quiz_bot/internal/config"
	"github.com/mroshb/quiz_bot/internal/database"
	"github.com/mroshb/quiz_bot/internal/repositories"
	"github.com/mroshb/quiz_bot/pkg/logger"
	"github.com/mroshb/quiz_bot/telegram"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Starting Telegram Quiz Bot...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	// Validate production security settings
	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("Production security validation failed", err)
		}
		logger.Info("Production security validation passed")
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	// Run GORM auto-migration
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed default admin and starter catalog
	if err := database.SeedAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed admin", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		logger.Warn("Failed to seed catalog", "error", err)
	}

	// Initialize and start Telegram bot
	bot, err := telegram.InitBot(cfg, db)
	if err != nil {
		logger.Fatal("Failed to initialize bot", err)
	}

	// Start admin API
	apiServer := api.NewServer(cfg, repositories.NewQuizRepository(db), repositories.NewAdminRepository(db))
	httpServer := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: apiServer.Router(),
	}
	go func() {
		logger.Info("Admin API listening", "port", cfg.APIPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Admin API failed", err)
		}
	}()

	logger.Info("Bot started successfully", "env", cfg.AppEnv)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	bot.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Admin API shutdown failed", "error", err)
	}

	logger.Info("Bot stopped")
}
