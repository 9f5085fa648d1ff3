// Package summarize - util.go provides shared utilities for model response processing.
package summarize

import "strings"

// CleanHTMLBlock removes markdown code-fence wrappers from an HTML response.
// Models often wrap HTML in ```html ... ``` blocks even when instructed not
// to. The function is idempotent and leaves unfenced input unchanged.
func CleanHTMLBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```html") {
		text = strings.TrimPrefix(text, "```html")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}

	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}

	return strings.TrimSpace(text)
}
