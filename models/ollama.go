package models

// OllamaStatus reports whether the local inference server is reachable
// and whether the configured model is among the loaded ones.
type OllamaStatus struct {
	Connected   bool     `json:"connected"`
	Models      []string `json:"models"`
	Model       string   `json:"model"`
	ModelLoaded bool     `json:"model_loaded"`
}
