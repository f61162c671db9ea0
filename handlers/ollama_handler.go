package handlers

import (
	"MedAnalysis/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterOllamaRoutes(router *gin.RouterGroup, ollamaController *controllers.OllamaController) {
	ollamaGroup := router.Group("/ollama")
	{
		ollamaGroup.GET("/status", ollamaController.GetStatus)
	}
}
