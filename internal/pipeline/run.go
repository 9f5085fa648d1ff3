// Package pipeline provides the high-level orchestration for one digest run:
// collect articles, summarize them through the provider chain, deliver the
// result. Execution is strictly sequential and the process holds no state
// across runs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/news-digest/internal/collector"
	"github.com/jonathan/news-digest/internal/config"
	"github.com/jonathan/news-digest/internal/email"
	"github.com/jonathan/news-digest/internal/observability"
	"github.com/jonathan/news-digest/internal/summarize"
	"github.com/jonathan/news-digest/internal/types"
)

// ErrNothingToSend is returned when every summarization provider failed or
// produced an empty digest. Delivery is skipped in that case rather than
// mailing an empty body.
var ErrNothingToSend = errors.New("no digest content to send")

// ArticleCollector gathers articles from the configured sources.
type ArticleCollector interface {
	Collect(ctx context.Context) []types.Article
}

// Summarizer produces a digest from collected articles. The boolean is
// false when no provider yielded content.
type Summarizer interface {
	Summarize(ctx context.Context, articles []types.Article) (types.Digest, bool)
}

// Deliverer sends the digest to the configured recipient.
type Deliverer interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// Options holds the configuration and optional stage overrides for a run.
// Unset stages default to the real collector, provider chain and SMTP sender.
type Options struct {
	Config config.Config
	Logger *logrus.Entry
	// Out receives verbose and dry-run output; defaults to stdout.
	Out io.Writer

	Collector  ArticleCollector
	Summarizer Summarizer
	Deliverer  Deliverer
}

// Subject renders the email subject line for a run date.
func Subject(now time.Time) string {
	return "Daily News for " + now.Format("02/01/2006")
}

// Run executes one collect → summarize → deliver pass. Collection and
// summarization failures degrade to partial or empty results; only an empty
// digest or a delivery failure yields a non-nil error.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config

	logger := opts.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	logger = logger.WithField("run_id", uuid.New().String())

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	articleCollector := opts.Collector
	if articleCollector == nil {
		articleCollector = collector.New(cfg, logger)
	}
	summarizer := opts.Summarizer
	if summarizer == nil {
		summarizer = summarize.NewChain(cfg, logger)
	}
	deliverer := opts.Deliverer
	if deliverer == nil {
		deliverer = email.NewSender(cfg, logger)
	}

	printer := observability.NewPrinter(out)

	articles := articleCollector.Collect(ctx)
	logger.WithField("articles", len(articles)).Info("collection complete")
	if cfg.Verbose {
		printer.PrintArticles(articles)
	}

	digest, ok := summarizer.Summarize(ctx, articles)
	if !ok || digest.Empty() {
		logger.Error("all providers failed or returned empty output, nothing to send")
		return ErrNothingToSend
	}
	if cfg.Verbose {
		printer.PrintDigest(digest)
	}

	if cfg.DryRun {
		logger.Info("dry run, skipping delivery")
		_, _ = fmt.Fprintln(out, digest.HTML)
		return nil
	}

	subject := Subject(time.Now())
	if err := deliverer.Send(ctx, subject, digest.HTML); err != nil {
		return fmt.Errorf("delivery failed: %w", err)
	}

	return nil
}
