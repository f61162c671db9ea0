package services

import (
	"MedAnalysis/config/environment"
	"MedAnalysis/models"
	"MedAnalysis/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

// statusTimeout bounds the connection/model listing check, which should
// answer quickly even when a generate call would take minutes.
const statusTimeout = 10 * time.Second

// OllamaService handles the request/response exchange with the local
// Ollama inference server. One synchronous call per analysis, no
// retries; the user retries manually on failure.
type OllamaService struct {
	Client *ollama.Client
	Model  string
}

// NewOllamaService builds a client for the configured Ollama base URL.
func NewOllamaService() *OllamaService {
	baseURL := environment.GetOllamaBaseURL()
	u, err := url.Parse(baseURL)
	if err != nil {
		log.Println("Invalid OLLAMA_BASE_URL, falling back to default:", err)
		u, _ = url.Parse(environment.DefaultOllamaBaseURL)
	}

	httpClient := &http.Client{
		Timeout: environment.GetOllamaTimeout(),
	}

	return &OllamaService{
		Client: ollama.NewClient(u, httpClient),
		Model:  environment.GetModel(),
	}
}

// Generate sends one prompt (plus optional image attachments) to the
// model and returns the generated text. Failures come back as
// CustomError with a status code suitable for the HTTP layer.
func (s *OllamaService) Generate(ctx context.Context, systemPrompt string, prompt string, images []ollama.ImageData) (string, error) {
	stream := false
	req := &ollama.GenerateRequest{
		Model:  s.Model,
		Prompt: prompt,
		System: systemPrompt,
		Stream: &stream,
		Images: images,
	}

	var sb strings.Builder
	err := s.Client.Generate(ctx, req, func(resp ollama.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", s.classifyError(err)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", utils.NewCustomError(http.StatusBadGateway, "Model returned an empty response")
	}
	return text, nil
}

// Status checks whether Ollama is reachable and whether the configured
// model is loaded. Unreachable is a valid answer, not an error.
func (s *OllamaService) Status(ctx context.Context) *models.OllamaStatus {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	status := &models.OllamaStatus{Model: s.Model, Models: []string{}}

	list, err := s.Client.List(ctx)
	if err != nil {
		log.Println("Ollama connection check failed:", err)
		return status
	}

	status.Connected = true
	for _, m := range list.Models {
		status.Models = append(status.Models, m.Name)
		// Substring match so tag-less configs still count as loaded.
		if strings.Contains(m.Name, s.Model) || strings.Contains(s.Model, m.Name) {
			status.ModelLoaded = true
		}
	}
	return status
}

// classifyError maps client failures onto the user-facing taxonomy:
// unreachable, timed out, or a bad reply from the server.
func (s *OllamaService) classifyError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return utils.NewCustomError(http.StatusGatewayTimeout,
				"Request to the model took too long. Try again or increase OLLAMA_TIMEOUT_SECONDS.")
		}
		return utils.NewCustomError(http.StatusServiceUnavailable,
			fmt.Sprintf("Cannot connect to Ollama. Please ensure it is running at %s", environment.GetOllamaBaseURL()))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return utils.NewCustomError(http.StatusGatewayTimeout,
			"Request to the model took too long. Try again or increase OLLAMA_TIMEOUT_SECONDS.")
	}

	var statusErr ollama.StatusError
	if errors.As(err, &statusErr) {
		msg := statusErr.ErrorMessage
		if msg == "" {
			msg = statusErr.Status
		}
		return utils.NewCustomError(http.StatusBadGateway, fmt.Sprintf("Ollama request failed: %s", msg))
	}

	// Server-reported errors and undecodable bodies land here.
	return utils.NewCustomError(http.StatusBadGateway, fmt.Sprintf("Ollama request failed: %v", err))
}
