package services

import (
	"MedAnalysis/models"
	"MedAnalysis/utils"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/anthonynsimon/bild/transform"
	"github.com/google/uuid"
	ollama "github.com/ollama/ollama/api"
)

// targetWidth is what uploads get resized to before encoding. Keeps
// payloads small without losing diagnostic detail at screen scale.
const targetWidth = 800

const jpegQuality = 90

// AnalysisService builds prompts, prepares uploads and shapes the
// generated report for display.
type AnalysisService struct {
	OllamaService *OllamaService
}

func NewAnalysisService(ollamaService *OllamaService) *AnalysisService {
	return &AnalysisService{
		OllamaService: ollamaService,
	}
}

// AnalyzeImage runs the full image pipeline: decode, resize, re-encode
// as JPEG, send to the model with the imaging prompt, clean the report.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, data []byte) (*models.AnalysisResult, error) {
	jpegData, err := s.PrepareImage(data)
	if err != nil {
		return nil, err
	}

	report, err := s.OllamaService.Generate(ctx, imageSystemPrompt, imageAnalysisPrompt, []ollama.ImageData{jpegData})
	if err != nil {
		return nil, err
	}

	cleaned := CleanReport(report)
	return &models.AnalysisResult{
		ID:       uuid.NewString(),
		Model:    s.OllamaService.Model,
		Report:   cleaned,
		Sections: SplitSections(cleaned),
	}, nil
}

// AnalyzeText interpolates the clinical text into the report-analysis
// prompt verbatim and sends it. The caller rejects empty input before
// this point, so no network call happens for blank text.
func (s *AnalysisService) AnalyzeText(ctx context.Context, text string) (*models.AnalysisResult, error) {
	prompt := fmt.Sprintf(textAnalysisPromptTemplate, text)

	report, err := s.OllamaService.Generate(ctx, "", prompt, nil)
	if err != nil {
		return nil, err
	}

	return &models.AnalysisResult{
		ID:       uuid.NewString(),
		Model:    s.OllamaService.Model,
		Report:   report,
		Sections: SplitSections(report),
	}, nil
}

// PrepareImage decodes an upload (JPEG/PNG/GIF/BMP/TIFF), resizes it to
// targetWidth preserving aspect ratio and re-encodes it as JPEG. The
// resize also normalizes any color model to RGB.
func (s *AnalysisService) PrepareImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Uploaded file could not be decoded as an image")
	}

	bounds := img.Bounds()
	aspectRatio := float64(bounds.Dx()) / float64(bounds.Dy())
	targetHeight := int(float64(targetWidth) / aspectRatio)
	if targetHeight < 1 {
		targetHeight = 1
	}

	resized := transform.Resize(img, targetWidth, targetHeight, transform.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to encode image")
	}
	return buf.Bytes(), nil
}

// CleanReport trims any preamble the model emits before the structured
// report. Anything before the first "### 1." heading is chatter.
func CleanReport(report string) string {
	if idx := strings.Index(report, "### 1."); idx != -1 {
		return report[idx:]
	}
	return report
}

// SplitSections splits a report on its "### " headings into
// heading/body pairs for display. The raw report stays untouched; this
// is a derived view only. Reports without headings yield no sections.
func SplitSections(report string) []models.AnalysisSection {
	var sections []models.AnalysisSection

	lines := strings.Split(report, "\n")
	var current *models.AnalysisSection
	var body strings.Builder

	flush := func() {
		if current != nil {
			current.Body = strings.TrimSpace(body.String())
			sections = append(sections, *current)
			body.Reset()
		}
	}

	for _, line := range lines {
		if heading, ok := strings.CutPrefix(line, "### "); ok {
			flush()
			current = &models.AnalysisSection{Heading: strings.TrimSpace(heading)}
			continue
		}
		if current != nil {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()

	return sections
}
