package news

import "time"

type Article struct {
	ExternalID  string
	Headline    string
	Detail      string
	URL         string
	Source      string
	PublishedAt time.Time
	Symbols     []string
	Publisher   string
}

// NewsClient fetches recent articles from an external news provider.
type NewsClient interface {
	Fetch(limit int) ([]Article, error)
	Name() string
}

// Source is a candidate article found while cross-checking a headline.
type Source struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	IsTrusted   bool   `json:"isTrusted"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LookupResult is the outcome of a headline cross-check against a news
// search API. Sources are deduplicated by URL and capped at 8 entries;
// TrustedSourceCount counts matches from the trusted-domain allow-list
// across all results, not just the capped slice.
type LookupResult struct {
	TotalResults       int
	TrustedSourceCount int
	Sources            []Source
}
