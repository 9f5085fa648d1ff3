package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DigestPrompt(t *testing.T) {
	prompt, err := Get("digest.json", "digest")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Articles}}")
	assert.Contains(t, prompt, "Keep under 500 words")
	assert.Contains(t, prompt, "at most 10 key stories")
}

func TestGet_SystemPrompt(t *testing.T) {
	prompt, err := Get("digest.json", "system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "journalist")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("digest.json", "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "digest")
	require.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("digest.json", "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	template := "Articles:\n{{.Articles}}\nEnd."
	result := Format(template, map[string]string{"Articles": "Article 1: ..."})
	assert.Equal(t, "Articles:\nArticle 1: ...\nEnd.", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	assert.Equal(t, "unchanged", Format("unchanged", map[string]string{"Articles": "x"}))
}
