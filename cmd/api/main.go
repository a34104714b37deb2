package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pranshu911/jams/internal/auth"
	"github.com/pranshu911/jams/internal/database"
	"github.com/pranshu911/jams/internal/handlers"
	"github.com/pranshu911/jams/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. Core Services
	appService := services.NewApplicationService(db)
	session := auth.NewSessionProvider()

	// 4. Handlers
	appHandler := handlers.NewApplicationHandler(appService)
	analyticsHandler := handlers.NewAnalyticsHandler(appService)

	// 5. Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 6. Routes
	api := r.Group("/api/v1")
	api.GET("/health", handlers.HealthCheck)

	authed := api.Group("", session.Middleware())
	{
		authed.GET("/applications", appHandler.List)
		authed.POST("/applications", appHandler.Create)
		authed.PATCH("/applications", appHandler.BulkUpdate)
		authed.DELETE("/applications", appHandler.BulkDelete)
		authed.GET("/applications/archived", appHandler.ListArchived)
		authed.GET("/applications/export", appHandler.Export)

		authed.GET("/analytics/timeline", analyticsHandler.Timeline)
		authed.GET("/analytics/breakdown", analyticsHandler.Breakdown)
		authed.GET("/analytics/metrics", analyticsHandler.Metrics)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on port " + port + "...")
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
