package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/news-digest/internal/types"
)

const geminiModel = "gemini-2.5-flash"

// Gemini calls Google Gemini through the official SDK. It sits last in the
// default chain as a second paid fallback.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini creates the Gemini provider.
func NewGemini(apiKey string) *Gemini {
	return &Gemini{apiKey: apiKey, model: geminiModel}
}

// Name identifies the provider in logs and the resulting Digest.
func (g *Gemini) Name() string {
	return "gemini"
}

// Summarize sends the digest prompt and returns the cleaned HTML. The client
// is created per call; a run invokes each provider at most once.
func (g *Gemini) Summarize(ctx context.Context, articles []types.Article) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini API key is missing")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer func() { _ = client.Close() }()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0.1)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(articles)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	return CleanHTMLBlock(text), nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
