package main

import (
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"rentfolio/server/config"
	"rentfolio/server/internal/api"
	"rentfolio/server/internal/database"
	"rentfolio/server/internal/processor"
	"rentfolio/server/internal/queue"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Get the current working directory
	currentDir, err := os.Getwd()
	if err != nil {
		logger.WithError(err).Fatal("Failed to get current directory")
	}

	// Construct database path relative to the server directory
	dbPath := filepath.Join(currentDir, cfg.Server.DatabasePath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", dbPath)

	// Initialize database
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	// Run database migrations
	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	// Start the transaction ingest pipeline
	ingestQueue := queue.NewTransactionQueue(cfg.BatchProcessing.QueueSize, logger)
	ingestQueue.Start()
	defer ingestQueue.Close()

	batchProcessor := processor.NewBatchProcessor(db, ingestQueue, cfg, logger)
	batchProcessor.Start()
	defer batchProcessor.Stop()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	api.SetupRoutes(router, db, ingestQueue, cfg)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
