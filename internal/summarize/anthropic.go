package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/news-digest/internal/types"
)

const (
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"
	anthropicModel    = "claude-haiku-4-5-20251001"
	anthropicTimeout  = 30 * time.Second

	// maxDigestTokens bounds the generation; the digest is capped at ~500
	// words anyway.
	maxDigestTokens = 2000
)

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Anthropic calls the Anthropic messages API over HTTPS with a bounded
// timeout. One attempt per run, no retries.
type Anthropic struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewAnthropic creates the Anthropic provider.
func NewAnthropic(apiKey string) *Anthropic {
	return &Anthropic{
		apiKey:   apiKey,
		model:    anthropicModel,
		endpoint: anthropicEndpoint,
		client:   &http.Client{Timeout: anthropicTimeout},
	}
}

// Name identifies the provider in logs and the resulting Digest.
func (a *Anthropic) Name() string {
	return "anthropic"
}

// Summarize sends the digest prompt and returns the cleaned HTML.
func (a *Anthropic) Summarize(ctx context.Context, articles []types.Article) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("anthropic API key is missing")
	}

	payload := anthropicRequest{
		Model:     a.model,
		MaxTokens: maxDigestTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: BuildPrompt(articles)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("anthropic returned HTTP %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return "", fmt.Errorf("no content in response")
	}

	return CleanHTMLBlock(parsed.Content[0].Text), nil
}

// truncate bounds diagnostic strings included in error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
