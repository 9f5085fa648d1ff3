package collector

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/jonathan/news-digest/internal/fetch"
	"github.com/jonathan/news-digest/internal/types"
)

// collectFeed fetches and parses one RSS/Atom feed and maps its entries to
// Articles, capped to MaxPerFeed when configured.
func (c *Collector) collectFeed(ctx context.Context, feedURL string) ([]types.Article, error) {
	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := feed.Items
	if c.cfg.MaxPerFeed > 0 && len(items) > c.cfg.MaxPerFeed {
		items = items[:c.cfg.MaxPerFeed]
	}

	articles := make([]types.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, feedItemToArticle(item, feed.Title))
	}

	return articles, nil
}

// feedItemToArticle maps one feed entry to the Article shape, substituting
// defaults for missing fields.
func feedItemToArticle(item *gofeed.Item, feedTitle string) types.Article {
	article := types.Article{
		Title:       item.Title,
		Description: fetch.StripHTML(item.Description),
		URL:         item.Link,
		Source:      feedTitle,
		Published:   item.Published,
		Author:      authorName(item),
	}

	if article.Title == "" {
		article.Title = types.DefaultTitle
	}
	if article.Source == "" {
		article.Source = types.DefaultSource
	}

	return article
}

func authorName(item *gofeed.Item) string {
	for _, author := range item.Authors {
		if author != nil && author.Name != "" {
			return author.Name
		}
	}
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	return types.DefaultAuthor
}
