package main

import (
	"MedAnalysis/config/environment"
	"MedAnalysis/middleware"
	v1 "MedAnalysis/routes/v1"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
)

func main() {

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using default values")
	}

	// Setup Gin router
	r := gin.Default()

	// Global error handler middleware
	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Allow all origins
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Single-page UI
	r.StaticFile("/", "./web/index.html")
	r.Static("/assets", "./web/assets")

	// Register all routes
	v1.RegisterRoutes(r)

	// Start server
	port := environment.GetPort()
	log.Println("🩺 MedAnalysis running on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
