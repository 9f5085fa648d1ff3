// Package types provides type definitions for the data flowing through the
// news-digest pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Default values substituted for fields a source did not provide.
const (
	DefaultTitle  = "Untitled"
	DefaultSource = "RSS Feed"
	DefaultAuthor = "Unknown"
)

// Article is a normalized record for a single news item, regardless of
// whether it came from an RSS feed or a news API query. No identity or
// uniqueness is enforced; the same story appearing in two sources yields
// two Articles.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	// Published is kept in whatever format the source provided; it is
	// embedded verbatim in the summarization prompt, never parsed.
	Published string `json:"published,omitempty"`
	Author    string `json:"author"`
}

// Digest is the HTML summary produced by a summarization provider,
// consumed once by delivery and then discarded.
type Digest struct {
	HTML string `json:"html"`
	// Provider names the service that generated the HTML.
	Provider string `json:"provider"`
}

// Empty reports whether the digest carries no content worth sending.
func (d Digest) Empty() bool {
	return d.HTML == ""
}
