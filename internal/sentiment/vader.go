package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/sentilines/internal/models"
)

const (
	VADER_MODEL_VERSION = "vader"
	LABEL_THRESHOLD     = 0.20
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// VaderAnalyzer scores text locally and answers in the same document-level
// shape as the remote sentiment service. Useful for dry runs without Azure
// credentials.
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := RemoveLinks(tagPattern.ReplaceAllString(string(output), ""))
	return strings.Join(strings.Fields(plainText), " ")
}

// Label maps a compound score to positive, negative or neutral.
func Label(score float64) string {
	switch {
	case score >= LABEL_THRESHOLD:
		return "positive"
	case score <= -LABEL_THRESHOLD:
		return "negative"
	default:
		return "neutral"
	}
}

func (v *VaderAnalyzer) Score(text string) (float64, models.ConfidenceScores) {
	plain := ConvertMarkdownToText(text)
	if plain == "" {
		return 0, models.ConfidenceScores{Neutral: 1}
	}

	s := v.analyzer.PolarityScores(plain)
	return s.Compound, models.ConfidenceScores{
		Positive: round(s.Positive),
		Neutral:  round(s.Neutral),
		Negative: round(s.Negative),
	}
}

func (v *VaderAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	compound, scores := v.Score(strings.TrimSpace(text))
	resp := models.SentimentResponse{
		Documents: []models.DocumentSentiment{{
			ID:               "1",
			Sentiment:        Label(compound),
			ConfidenceScores: scores,
			Warnings:         []any{},
		}},
		Errors:       []models.DocumentError{},
		ModelVersion: VADER_MODEL_VERSION,
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vader response: %w", err)
	}
	return out, nil
}

func round(f float64) float64 {
	return math.Round(f*100) / 100
}
