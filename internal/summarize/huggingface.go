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
	huggingFaceEndpoint = "https://router.huggingface.co/v1/chat/completions"
	huggingFaceModel    = "openai/gpt-oss-120b:groq"
	huggingFaceTimeout  = 30 * time.Second
)

type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// HuggingFace calls the Hugging Face inference router, which exposes an
// OpenAI-compatible chat endpoint on its free tier.
type HuggingFace struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewHuggingFace creates the Hugging Face provider.
func NewHuggingFace(apiKey string) *HuggingFace {
	return &HuggingFace{
		apiKey:   apiKey,
		model:    huggingFaceModel,
		endpoint: huggingFaceEndpoint,
		client:   &http.Client{Timeout: huggingFaceTimeout},
	}
}

// Name identifies the provider in logs and the resulting Digest.
func (h *HuggingFace) Name() string {
	return "huggingface"
}

// Summarize sends the digest prompt with the journalist persona and returns
// the cleaned HTML.
func (h *HuggingFace) Summarize(ctx context.Context, articles []types.Article) (string, error) {
	if h.apiKey == "" {
		return "", fmt.Errorf("hugging face API key is missing")
	}

	payload := chatRequest{
		Model:     h.model,
		MaxTokens: maxDigestTokens,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt()},
			{Role: "user", Content: BuildPrompt(articles)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", h.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hugging face request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("hugging face returned HTTP %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("hugging face returned error: %s", parsed.Error.Message)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content in response")
	}

	return CleanHTMLBlock(parsed.Choices[0].Message.Content), nil
}
