package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.Feeds, 3)
	assert.Equal(t, 5, cfg.MaxPerFeed)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPServer)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"feeds": ["https://example.com/feed.xml"],
		"max_per_feed": 3,
		"news_query": "markets",
		"email_to": "reader@example.com"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/feed.xml"}, cfg.Feeds)
	assert.Equal(t, 3, cfg.MaxPerFeed)
	assert.Equal(t, "markets", cfg.NewsQuery)
	assert.Equal(t, "reader@example.com", cfg.EmailTo)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("HF_KEY", "hf-test")
	t.Setenv("NEWSDATAIO_API_KEY", "nd-test")
	t.Setenv("EMAIL_TO", "reader@example.com")
	t.Setenv("EMAIL_FROM", "digest@example.com")
	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_PASSWORD", "secret")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "sk-test", cfg.AnthropicKey)
	assert.Equal(t, "hf-test", cfg.HuggingFaceKey)
	assert.Equal(t, "nd-test", cfg.NewsAPIKey)
	assert.Equal(t, "reader@example.com", cfg.EmailTo)
	assert.Equal(t, "digest@example.com", cfg.EmailFrom)
	assert.Equal(t, "smtp.example.com", cfg.SMTPServer)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "secret", cfg.SMTPPassword)
}

func TestApplyEnv_InvalidPortIgnored(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestMerge_FileOverridesDefaults(t *testing.T) {
	base := Default()
	overrides := &Config{
		Feeds:      []string{"https://example.com/feed.xml"},
		NewsQuery:  "politics",
		SMTPServer: "smtp.example.com",
	}

	merged := base.Merge(overrides)
	assert.Equal(t, []string{"https://example.com/feed.xml"}, merged.Feeds)
	assert.Equal(t, "politics", merged.NewsQuery)
	assert.Equal(t, "smtp.example.com", merged.SMTPServer)
	// Untouched fields keep defaults
	assert.Equal(t, 5, merged.MaxPerFeed)
	assert.Equal(t, 587, merged.SMTPPort)
}

func TestMerge_NilIsNoop(t *testing.T) {
	base := Default()
	merged := base.Merge(nil)
	assert.Equal(t, base, merged)
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadEmail(t *testing.T) {
	cfg := Default()
	cfg.EmailTo = "not-an-email"
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.SMTPPort = 70000
	require.Error(t, cfg.Validate())
}

func TestWarnings_MissingCredentials(t *testing.T) {
	cfg := Default()
	warnings := cfg.Warnings()

	assert.Contains(t, warnings, "HF_KEY not set; Hugging Face provider disabled")
	assert.Contains(t, warnings, "ANTHROPIC_API_KEY not set; Anthropic provider disabled")
	assert.Contains(t, warnings, "NEWSDATAIO_API_KEY not set; news API source disabled")
	assert.Contains(t, warnings, "SMTP_PASSWORD not set; delivery will fail")
}

func TestWarnings_DryRunSkipsDeliveryChecks(t *testing.T) {
	cfg := Default()
	cfg.DryRun = true

	for _, w := range cfg.Warnings() {
		assert.NotContains(t, w, "EMAIL")
		assert.NotContains(t, w, "SMTP")
	}
}
