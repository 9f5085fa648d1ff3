// Package summarize turns collected articles into an HTML digest by calling
// a language-model provider. Providers share one prompt and one
// fence-stripping contract, so delivery can treat any provider's output
// identically, and they are tried in a fixed order until one succeeds.
package summarize

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/news-digest/internal/config"
	"github.com/jonathan/news-digest/internal/types"
)

// Provider is an external language-model service that condenses articles
// into an HTML digest. Implementations return the cleaned HTML or an error;
// they never return a fenced or padded response.
type Provider interface {
	// Name identifies the provider in logs and in the resulting Digest.
	Name() string
	// Summarize produces the digest HTML for the given articles.
	Summarize(ctx context.Context, articles []types.Article) (string, error)
}

// Chain tries an ordered list of providers until one yields a non-empty
// digest. Provider failures are logged and absorbed.
type Chain struct {
	providers []Provider
	logger    *logrus.Entry
}

// NewChain assembles the provider chain from the configured credentials:
// the free-tier Hugging Face router first, then Anthropic, then Gemini.
// Providers without a key are left out.
func NewChain(cfg config.Config, logger *logrus.Entry) *Chain {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	var providers []Provider
	if cfg.HuggingFaceKey != "" {
		providers = append(providers, NewHuggingFace(cfg.HuggingFaceKey))
	}
	if cfg.AnthropicKey != "" {
		providers = append(providers, NewAnthropic(cfg.AnthropicKey))
	}
	if cfg.GeminiKey != "" {
		providers = append(providers, NewGemini(cfg.GeminiKey))
	}

	return &Chain{providers: providers, logger: logger}
}

// NewChainFromProviders builds a chain with an explicit provider list.
func NewChainFromProviders(logger *logrus.Entry, providers ...Provider) *Chain {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Chain{providers: providers, logger: logger}
}

// Summarize invokes each provider in order and returns the first non-empty
// digest. The second return value is false when every provider failed or
// none was configured.
func (c *Chain) Summarize(ctx context.Context, articles []types.Article) (types.Digest, bool) {
	if len(c.providers) == 0 {
		c.logger.Warn("no summarization providers configured")
		return types.Digest{}, false
	}

	for _, provider := range c.providers {
		html, err := provider.Summarize(ctx, articles)
		if err != nil {
			c.logger.WithError(err).WithField("provider", provider.Name()).Error("summarization failed, trying next provider")
			continue
		}
		if html == "" {
			c.logger.WithField("provider", provider.Name()).Warn("provider returned empty digest, trying next provider")
			continue
		}
		c.logger.WithField("provider", provider.Name()).Info("summary generated successfully")
		return types.Digest{HTML: html, Provider: provider.Name()}, true
	}

	return types.Digest{}, false
}
