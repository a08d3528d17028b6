package main

import (
	"guessdle/config"
	"guessdle/handlers"
	"guessdle/middleware"
	"guessdle/models"
	"guessdle/routes"
	"guessdle/services"
	"guessdle/utils/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogFormat)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.UserGameHistory{},
	)
	if err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	gameService := services.NewGameService(db, redisClient)
	historyService := services.NewHistoryService(db, gameService)
	rotationService := services.NewRotationService(db, redisClient, gameService)

	// Image hosting is optional; the icon endpoint reports unavailable
	// when it is not configured.
	var iconUploader services.IconUploader
	if cloudinaryService, err := services.NewCloudinaryService(cfg); err != nil {
		logger.Warnf("Cloudinary disabled: %v", err)
	} else {
		iconUploader = cloudinaryService
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(gameService, iconUploader)
	historyHandler := handlers.NewHistoryHandler(historyService)
	rotationHandler := handlers.NewRotationHandler(rotationService, cfg.CronSecret)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, gameHandler, historyHandler, rotationHandler, cfg.JWTSecret)

	// Start server
	logger.Infof("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
