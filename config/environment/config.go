package environment

import (
	"os"
	"strconv"
	"time"
)

// Defaults match a stock local Ollama install.
const (
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultModel         = "amsaravi/medgemma-4b-it:q6"
	DefaultTimeout       = 180 * time.Second
)

func GetOllamaBaseURL() string {
	if url := os.Getenv("OLLAMA_BASE_URL"); url != "" {
		return url
	}
	return DefaultOllamaBaseURL
}

func GetModel() string {
	if model := os.Getenv("MEDGEMMA_MODEL"); model != "" {
		return model
	}
	return DefaultModel
}

// GetOllamaTimeout returns the per-request budget for generate calls.
// Local models can take minutes on CPU, so the default is generous.
func GetOllamaTimeout() time.Duration {
	if raw := os.Getenv("OLLAMA_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return DefaultTimeout
}

func GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
