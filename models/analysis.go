package models

// TextAnalysisRequest is the payload for clinical text analysis.
type TextAnalysisRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnalysisSection is one "### ..." block of the generated report,
// split out for display purposes only.
type AnalysisSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// AnalysisResult is what the UI renders. Report is the model output
// verbatim (after the leading-chatter trim); Sections is derived from
// it and never replaces it.
type AnalysisResult struct {
	ID       string            `json:"id"`
	Model    string            `json:"model"`
	Report   string            `json:"report"`
	Sections []AnalysisSection `json:"sections,omitempty"`
}
