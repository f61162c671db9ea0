package controllers

import (
	"MedAnalysis/models"
	"MedAnalysis/services"
	"MedAnalysis/utils"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps medical image uploads at 25 MB.
const maxUploadSize = 25 << 20

// AnalysisController struct
type AnalysisController struct {
	AnalysisService *services.AnalysisService
}

// NewAnalysisController initializes AnalysisController with the service layer
func NewAnalysisController() *AnalysisController {
	return &AnalysisController{
		AnalysisService: services.NewAnalysisService(services.NewOllamaService()),
	}
}

// AnalyzeImage accepts a multipart upload under the "image" field and
// returns the generated analysis report.
func (ac *AnalysisController) AnalyzeImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Image file is required")
		return
	}

	if fileHeader.Size > maxUploadSize {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Image file is too large (max 25 MB)")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	log.Println("Analyzing medical image:", fileHeader.Filename)

	result, err := ac.AnalysisService.AnalyzeImage(c.Request.Context(), data)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Medical image analyzed successfully", result)
}

// AnalyzeText accepts a block of clinical text and returns the
// generated analysis. Blank input is rejected before any network call.
func (ac *AnalysisController) AnalyzeText(c *gin.Context) {
	var req models.TextAnalysisRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Medical text is required")
		return
	}

	result, err := ac.AnalysisService.AnalyzeText(c.Request.Context(), text)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Medical text analyzed successfully", result)
}
