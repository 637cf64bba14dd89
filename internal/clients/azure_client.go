package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spacesedan/sentilines/config"
	"github.com/spacesedan/sentilines/internal/models"
)

// Analyzer returns the analysis payload for a single piece of text.
type Analyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (json.RawMessage, error)
}

type AzureClient struct {
	Client *http.Client
	cfg    config.AzureConfig
}

// NewAzureClient builds a client for the Text Analytics sentiment endpoint.
// A nil httpClient means http.DefaultClient, with no timeout override.
func NewAzureClient(cfg config.AzureConfig, httpClient *http.Client) *AzureClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	slog.Info("[AzureClient] Initializing Client", slog.Any("config", cfg))

	return &AzureClient{
		Client: httpClient,
		cfg:    cfg,
	}
}

// AnalyzeSentiment sends text as a single Portuguese document. A 200 body is
// returned verbatim; any other status is folded into {"error": <body>}.
// Only transport failures are returned as errors.
func (a *AzureClient) AnalyzeSentiment(ctx context.Context, text string) (json.RawMessage, error) {
	endpoint := a.cfg.Endpoint + AZURE_SENTIMENT_PATH
	start := time.Now()

	payload := models.SentimentRequest{
		Documents: []models.SentimentDocument{{
			ID:       DOCUMENT_ID,
			Language: DOCUMENT_LANGUAGE,
			Text:     strings.TrimSpace(text),
		}},
	}

	status, respBody, err := a.postJSON(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		slog.Warn("[AzureClient] Sentiment request rejected",
			slog.Int("status", status),
			slog.Duration("elapsed", time.Since(start)))
		return ErrorPayload(string(respBody))
	}

	if !json.Valid(respBody) {
		slog.Error("[AzureClient] Invalid JSON in response",
			slog.String("endpoint", endpoint),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return nil, fmt.Errorf("invalid JSON in response from %s", endpoint)
	}

	slog.Debug("[AzureClient] Sentiment request successful",
		slog.Duration("elapsed", time.Since(start)))

	return json.RawMessage(respBody), nil
}

func (a *AzureClient) postJSON(ctx context.Context, endpoint string, input interface{}) (int, []byte, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("[AzureClient] Failed to build request",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(AZURE_KEY_HEADER, a.cfg.Key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := a.Client.Do(req)
	if err != nil {
		slog.Error("[AzureClient] Request failed",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[AzureClient] Failed to read response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// ErrorPayload encodes {"error": body} without HTML escaping so the body text
// reaches the output file as-is.
func ErrorPayload(body string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(models.ErrorAnalysis{Error: body}); err != nil {
		return nil, fmt.Errorf("failed to encode error payload: %w", err)
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
