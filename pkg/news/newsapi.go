package news

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const newsAPIBaseURL = "https://newsapi.org/v2"

// Domains presumed to have high editorial standards. A headline confirmed
// by one of these counts as a trusted hit during verification.
var trustedDomains = []string{
	"reuters.com", "apnews.com", "bloomberg.com", "cnbc.com",
	"wsj.com", "ft.com", "forbes.com", "nytimes.com",
	"theguardian.com", "bbc.co.uk", "economist.com",
}

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

type NewsAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

// Fetch pulls recent market-related articles for the dashboard feed.
func (c *NewsAPIClient) Fetch(limit int) ([]Article, error) {
	raw, err := c.everything(context.Background(), "stocks OR market OR economy", limit, "publishedAt")
	if err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		if item.URL == "" {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			ExternalID:  generateExternalID(item.URL),
			Headline:    item.Title,
			Detail:      item.Description,
			URL:         item.URL,
			Publisher:   item.Source.Name,
			PublishedAt: publishedAt,
			Symbols:     []string{},
			Source:      c.Name(),
		})
	}

	return articles, nil
}

// Search cross-checks a headline: an exact-phrase query first, then a broader
// unquoted query when the exact search returns nothing.
func (c *NewsAPIClient) Search(ctx context.Context, query string) (LookupResult, error) {
	if c.apiKey == "" {
		return LookupResult{}, fmt.Errorf("newsapi key is not configured")
	}

	cleaned := strings.TrimSpace(nonWordPattern.ReplaceAllString(query, ""))

	raw, err := c.everything(ctx, `"`+cleaned+`"`, 5, "relevancy")
	if err != nil {
		return LookupResult{}, err
	}

	if raw.TotalResults == 0 {
		raw, err = c.everything(ctx, cleaned, 10, "relevancy")
		if err != nil {
			return LookupResult{}, err
		}
	}

	return buildLookupResult(raw), nil
}

func (c *NewsAPIClient) everything(ctx context.Context, query string, pageSize int, sortBy string) (*newsAPIResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("sortBy", sortBy)
	params.Set("language", "en")
	params.Set("from", time.Now().AddDate(0, 0, -30).Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, newsAPIBaseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi fetch: unexpected status %d", resp.StatusCode)
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	return &raw, nil
}

func buildLookupResult(raw *newsAPIResponse) LookupResult {
	var sources []Source
	seenURLs := make(map[string]bool)
	trustedCount := 0

	for _, article := range raw.Articles {
		if article.URL == "" || seenURLs[article.URL] {
			continue
		}
		seenURLs[article.URL] = true

		domain := domainOf(article.URL)
		trusted := isTrustedDomain(domain)
		if trusted {
			trustedCount++
		}

		name := article.Source.Name
		if name == "" {
			name = domain
		}

		sources = append(sources, Source{
			Name:        name,
			URL:         article.URL,
			PublishedAt: article.PublishedAt,
			IsTrusted:   trusted,
			Title:       article.Title,
			Description: article.Description,
		})
	}

	if len(sources) > 8 {
		sources = sources[:8]
	}

	return LookupResult{
		TotalResults:       raw.TotalResults,
		TrustedSourceCount: trustedCount,
		Sources:            sources,
	}
}

func domainOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

func isTrustedDomain(domain string) bool {
	for _, trusted := range trustedDomains {
		if domain == trusted {
			return true
		}
	}
	return false
}

func generateExternalID(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", sum)[:16]
}

type newsAPIResponse struct {
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
	Source      newsAPISource `json:"source"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
