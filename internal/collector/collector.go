// Package collector gathers articles from the configured RSS feeds and the
// news API and normalizes them into the common Article record. Collection
// never fails as a whole: a broken source is logged and skipped, and the
// collector returns whatever the remaining sources produced.
package collector

import (
	"context"

	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/news-digest/internal/config"
	"github.com/jonathan/news-digest/internal/types"
)

// Collector queries the configured sources in order.
type Collector struct {
	cfg    config.Config
	logger *logrus.Entry
	parser *gofeed.Parser

	// newsAPIBase is overridable for tests.
	newsAPIBase string
}

// New creates a Collector for the given configuration.
func New(cfg config.Config, logger *logrus.Entry) *Collector {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Collector{
		cfg:         cfg,
		logger:      logger,
		parser:      gofeed.NewParser(),
		newsAPIBase: defaultNewsAPIBase,
	}
}

// Collect queries each source one after another and returns every article
// that was successfully collected. It never returns an error; an all-fail
// run yields an empty slice.
func (c *Collector) Collect(ctx context.Context) []types.Article {
	var articles []types.Article

	for _, feedURL := range c.cfg.Feeds {
		items, err := c.collectFeed(ctx, feedURL)
		if err != nil {
			c.logger.WithError(err).WithField("feed", feedURL).Error("RSS request incomplete")
			continue
		}
		c.logger.WithFields(logrus.Fields{
			"feed":     feedURL,
			"articles": len(items),
		}).Info("RSS request complete")
		articles = append(articles, items...)
	}

	if c.cfg.NewsAPIKey == "" {
		c.logger.Warn("news API key not configured, skipping news API source")
		return articles
	}

	items, err := c.collectNewsAPI(ctx)
	if err != nil {
		c.logger.WithError(err).WithField("query", c.cfg.NewsQuery).Error("news API request failed")
		return articles
	}
	c.logger.WithFields(logrus.Fields{
		"query":    c.cfg.NewsQuery,
		"articles": len(items),
	}).Info("news API request complete")

	return append(articles, items...)
}
