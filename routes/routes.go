package routes

import (
	"net/http"

	"guessdle/handlers"
	"guessdle/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	gameHandler *handlers.GameHandler,
	historyHandler *handlers.HistoryHandler,
	rotationHandler *handlers.RotationHandler,
	jwtSecret string,
) {
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public game routes
		games := api.Group("/games")
		{
			games.GET("", gameHandler.ListGames)
			games.GET("/:id", gameHandler.GetGameByID)
			games.POST("/:id/guess", gameHandler.SubmitGuess)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Game authoring
			authoring := protected.Group("/games")
			{
				authoring.POST("", gameHandler.CreateGame)
				authoring.PUT("/:id", gameHandler.UpdateGame)
				authoring.DELETE("/:id", gameHandler.DeleteGame)
				authoring.POST("/:id/publish", gameHandler.PublishGame)
				authoring.POST("/:id/icon", gameHandler.UploadIcon)
				authoring.PUT("/:id/attributes/:name", gameHandler.RenameAttribute)
			}

			// Caller-scoped reads; kept off /games/:id's subtree so the
			// static segment cannot collide with the id wildcard
			protected.GET("/users/me/games", gameHandler.ListMyGames)

			// Play history
			protected.POST("/history", historyHandler.RecordPlay)
			protected.GET("/history", historyHandler.GetMyHistory)
		}

		// Scheduled trigger, guarded by shared secret instead of a user token
		api.POST("/internal/rotate", rotationHandler.RotateGames)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
