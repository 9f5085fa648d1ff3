package summarize

import (
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/news-digest/internal/config"
	"github.com/jonathan/news-digest/internal/types"
)

// stubProvider records whether it was invoked and returns a fixed result.
type stubProvider struct {
	name   string
	html   string
	err    error
	called bool
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Summarize(_ context.Context, _ []types.Article) (string, error) {
	s.called = true
	return s.html, s.err
}

func newTestChain(providers ...Provider) (*Chain, *logrustest.Hook) {
	logger, hook := logrustest.NewNullLogger()
	return NewChainFromProviders(logrus.NewEntry(logger), providers...), hook
}

func TestChain_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", html: "<p>First</p>"}
	second := &stubProvider{name: "second", html: "<p>Second</p>"}
	chain, _ := newTestChain(first, second)

	digest, ok := chain.Summarize(context.Background(), sampleArticles())
	require.True(t, ok)
	assert.Equal(t, "<p>First</p>", digest.HTML)
	assert.Equal(t, "first", digest.Provider)
	assert.True(t, first.called)
	assert.False(t, second.called, "second provider must not run when the first succeeds")
}

func TestChain_EmptyResultTriggersFallback(t *testing.T) {
	free := &stubProvider{name: "free-tier", html: ""}
	primary := &stubProvider{name: "primary", html: "<p>Primary</p>"}
	chain, _ := newTestChain(free, primary)

	digest, ok := chain.Summarize(context.Background(), sampleArticles())
	require.True(t, ok)
	assert.Equal(t, "primary", digest.Provider)
	assert.True(t, free.called)
	assert.True(t, primary.called, "primary must be invoked when the free tier returns an empty string")
}

func TestChain_ErrorTriggersFallback(t *testing.T) {
	failing := &stubProvider{name: "failing", err: fmt.Errorf("quota exceeded")}
	primary := &stubProvider{name: "primary", html: "<p>Primary</p>"}
	chain, hook := newTestChain(failing, primary)

	digest, ok := chain.Summarize(context.Background(), sampleArticles())
	require.True(t, ok)
	assert.Equal(t, "primary", digest.Provider)

	var loggedFailure bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel && entry.Data["provider"] == "failing" {
			loggedFailure = true
		}
	}
	assert.True(t, loggedFailure, "provider failure must be logged")
}

func TestChain_AllProvidersFail(t *testing.T) {
	first := &stubProvider{name: "first", err: fmt.Errorf("down")}
	second := &stubProvider{name: "second", html: ""}
	chain, _ := newTestChain(first, second)

	digest, ok := chain.Summarize(context.Background(), sampleArticles())
	assert.False(t, ok)
	assert.True(t, digest.Empty())
}

func TestChain_NoProvidersConfigured(t *testing.T) {
	chain, hook := newTestChain()

	digest, ok := chain.Summarize(context.Background(), sampleArticles())
	assert.False(t, ok)
	assert.True(t, digest.Empty())
	assert.NotEmpty(t, hook.AllEntries())
}

func TestNewChain_OrderAndGating(t *testing.T) {
	cfg := config.Default()
	cfg.HuggingFaceKey = "hf"
	cfg.AnthropicKey = "sk"

	chain := NewChain(cfg, nil)
	require.Len(t, chain.providers, 2)
	assert.Equal(t, "huggingface", chain.providers[0].Name())
	assert.Equal(t, "anthropic", chain.providers[1].Name())
}

func TestNewChain_GeminiWhenConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.HuggingFaceKey = "hf"
	cfg.AnthropicKey = "sk"
	cfg.GeminiKey = "gm"

	chain := NewChain(cfg, nil)
	require.Len(t, chain.providers, 3)
	assert.Equal(t, "gemini", chain.providers[2].Name())
}
