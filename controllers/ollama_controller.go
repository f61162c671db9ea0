package controllers

import (
	"MedAnalysis/services"
	"MedAnalysis/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type OllamaController struct {
	OllamaService *services.OllamaService
}

func NewOllamaController() *OllamaController {
	return &OllamaController{
		OllamaService: services.NewOllamaService(),
	}
}

// GetStatus reports whether the local Ollama server is reachable and
// which models it has loaded. The UI polls this to gate the Analyze
// buttons, so an unreachable server is a 200 with connected=false.
func (oc *OllamaController) GetStatus(c *gin.Context) {
	status := oc.OllamaService.Status(c.Request.Context())
	utils.SuccessResponse(c, http.StatusOK, "Ollama status fetched successfully", status)
}
