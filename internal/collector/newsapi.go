package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/jonathan/news-digest/internal/fetch"
	"github.com/jonathan/news-digest/internal/types"
)

// defaultNewsAPIBase is the newsdata.io latest-news endpoint.
const defaultNewsAPIBase = "https://newsdata.io/api/1/latest"

// newsAPISource is the source name recorded for API-provided articles.
const newsAPISource = "NewsData"

type newsResponse struct {
	Status  string       `json:"status"`
	Results []newsResult `json:"results"`
}

type newsResult struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	SourceID    string   `json:"source_id"`
	PubDate     string   `json:"pubDate"`
	Creator     []string `json:"creator"`
}

// collectNewsAPI issues one GET against the news API and maps each result to
// an Article. A response with a non-success status contributes zero articles.
func (c *Collector) collectNewsAPI(ctx context.Context) ([]types.Article, error) {
	query := url.Values{}
	query.Set("apikey", c.cfg.NewsAPIKey)
	query.Set("q", c.cfg.NewsQuery)
	query.Set("language", "en")

	opts := fetch.DefaultOptions()
	opts.Headers = map[string]string{"Accept": "application/json"}

	result, err := fetch.URL(ctx, c.newsAPIBase+"?"+query.Encode(), opts)
	if err != nil {
		return nil, err
	}

	var resp newsResponse
	if err := json.Unmarshal(result.Body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode news API response: %w", err)
	}

	if resp.Status != "success" {
		return nil, fmt.Errorf("news API returned status %q", resp.Status)
	}

	articles := make([]types.Article, 0, len(resp.Results))
	for _, item := range resp.Results {
		articles = append(articles, newsResultToArticle(item))
	}

	return articles, nil
}

func newsResultToArticle(item newsResult) types.Article {
	article := types.Article{
		Title:       item.Title,
		Description: fetch.StripHTML(item.Description),
		URL:         item.Link,
		Source:      item.SourceID,
		Published:   item.PubDate,
		Author:      types.DefaultAuthor,
	}

	if article.Title == "" {
		article.Title = types.DefaultTitle
	}
	if article.Source == "" {
		article.Source = newsAPISource
	}
	if len(item.Creator) > 0 && item.Creator[0] != "" {
		article.Author = item.Creator[0]
	}

	return article
}
