package route

import (
	"MedAnalysis/controllers"
	"MedAnalysis/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	analysisController := controllers.NewAnalysisController()
	ollamaController := controllers.NewOllamaController()

	// Register the routes
	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAnalysisRoutes(v1Routes, analysisController)
		handlers.RegisterOllamaRoutes(v1Routes, ollamaController)
	}
}
