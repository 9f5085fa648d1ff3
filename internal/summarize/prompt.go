package summarize

import (
	"fmt"
	"strings"

	"github.com/jonathan/news-digest/internal/prompts"
	"github.com/jonathan/news-digest/internal/types"
)

// Placeholders substituted when an article field is empty, matching the
// defaults the model is told to expect.
const (
	noDescription = "No description available"
	noDate        = "Unknown date"
)

// BuildPrompt renders the digest instruction with every article embedded as
// a numbered block. The rendering is deterministic: the same article slice
// produces a byte-identical prompt.
func BuildPrompt(articles []types.Article) string {
	return prompts.Format(prompts.MustGet("digest.json", "digest"), map[string]string{
		"Articles": renderArticles(articles),
	})
}

// SystemPrompt returns the journalist persona sent to chat-style providers.
func SystemPrompt() string {
	return prompts.MustGet("digest.json", "system")
}

func renderArticles(articles []types.Article) string {
	blocks := make([]string, 0, len(articles))
	for i, article := range articles {
		description := article.Description
		if description == "" {
			description = noDescription
		}
		published := article.Published
		if published == "" {
			published = noDate
		}

		blocks = append(blocks, fmt.Sprintf(
			"Article %d:\nHeadline: %s\nSource: %s\nSummary: %s\nURL: %s\nPublished: %s",
			i+1, article.Title, article.Source, description, article.URL, published))
	}
	return strings.Join(blocks, "\n\n")
}
