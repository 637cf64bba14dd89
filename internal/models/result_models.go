package models

import "encoding/json"

// ResultRecord pairs an input line with whatever the analyzer returned for it.
type ResultRecord struct {
	Sentence string          `json:"sentence"`
	Analysis json.RawMessage `json:"analysis"`
}

// ErrorAnalysis is stored as the analysis when the service answers with a
// non-200 status. Error holds the raw response body.
type ErrorAnalysis struct {
	Error string `json:"error"`
}
