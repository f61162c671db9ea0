package handlers

import (
	"MedAnalysis/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAnalysisRoutes sets up the analysis-related routes
func RegisterAnalysisRoutes(router *gin.RouterGroup, analysisController *controllers.AnalysisController) {
	analysisGroup := router.Group("/analysis")
	{
		analysisGroup.POST("/image", analysisController.AnalyzeImage)
		analysisGroup.POST("/text", analysisController.AnalyzeText)
	}
}
