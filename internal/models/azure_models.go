package models

// Request body for the Text Analytics v3.1 sentiment endpoint.
type (
	SentimentRequest struct {
		Documents []SentimentDocument `json:"documents"`
	}
	SentimentDocument struct {
		ID       string `json:"id"`
		Language string `json:"language"`
		Text     string `json:"text"`
	}
)

// Document-level response shape. The Azure client passes responses through
// untouched; these types are used by the offline analyzer, which mimics it.
type (
	SentimentResponse struct {
		Documents    []DocumentSentiment `json:"documents"`
		Errors       []DocumentError     `json:"errors"`
		ModelVersion string              `json:"modelVersion"`
	}
	DocumentSentiment struct {
		ID               string           `json:"id"`
		Sentiment        string           `json:"sentiment"`
		ConfidenceScores ConfidenceScores `json:"confidenceScores"`
		Warnings         []any            `json:"warnings"`
	}
	ConfidenceScores struct {
		Positive float64 `json:"positive"`
		Neutral  float64 `json:"neutral"`
		Negative float64 `json:"negative"`
	}
	DocumentError struct {
		ID    string `json:"id"`
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
)
