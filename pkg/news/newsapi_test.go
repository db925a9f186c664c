package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newTestNewsAPIClient(srv *httptest.Server) *NewsAPIClient {
	client := &NewsAPIClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}
	return client
}

func searchPayload(total int, articles ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"status":       "ok",
		"totalResults": total,
		"articles":     articles,
	}
}

func article(url, sourceName string) map[string]interface{} {
	return map[string]interface{}{
		"title":       "Some headline",
		"description": "Some description",
		"url":         url,
		"publishedAt": "2026-03-01T09:00:00Z",
		"source":      map[string]interface{}{"name": sourceName},
	}
}

func TestSearchExactMatch(t *testing.T) {
	var queries []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchPayload(2,
			article("https://www.reuters.com/markets/a", "Reuters"),
			article("https://example.com/blog/a", "Some Blog"),
		))
	}))
	defer srv.Close()

	client := newTestNewsAPIClient(srv)

	result, err := client.Search(context.Background(), "Central bank holds rates steady!")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(queries))
	// Punctuation stripped, exact-phrase quoted.
	assert.Equal(t, `"Central bank holds rates steady"`, queries[0])

	assert.Equal(t, 2, result.TotalResults)
	assert.Equal(t, 1, result.TrustedSourceCount)
	assert.Equal(t, 2, len(result.Sources))
	assert.Equal(t, true, result.Sources[0].IsTrusted)
	assert.Equal(t, "Reuters", result.Sources[0].Name)
	assert.Equal(t, false, result.Sources[1].IsTrusted)
}

func TestSearchFallsBackToBroadQuery(t *testing.T) {
	var queries []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		w.Header().Set("Content-Type", "application/json")

		if strings.HasPrefix(q, `"`) {
			json.NewEncoder(w).Encode(searchPayload(0))
			return
		}
		json.NewEncoder(w).Encode(searchPayload(1, article("https://apnews.com/b", "AP News")))
	}))
	defer srv.Close()

	client := newTestNewsAPIClient(srv)

	result, err := client.Search(context.Background(), "obscure local story")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(queries))
	assert.Equal(t, "obscure local story", queries[1])
	assert.Equal(t, 1, result.TotalResults)
	assert.Equal(t, 1, result.TrustedSourceCount)
}

func TestSearchDeduplicatesAndCapsSources(t *testing.T) {
	articles := []map[string]interface{}{
		article("https://www.reuters.com/a", "Reuters"),
		article("https://www.reuters.com/a", "Reuters"), // duplicate URL
	}
	for i := 0; i < 10; i++ {
		articles = append(articles, article(fmt.Sprintf("https://example.com/%d", i), "Example"))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchPayload(11, articles...))
	}))
	defer srv.Close()

	client := newTestNewsAPIClient(srv)

	result, err := client.Search(context.Background(), "busy news day")

	assert.Equal(t, nil, err)
	assert.Equal(t, 8, len(result.Sources))
	assert.Equal(t, 1, result.TrustedSourceCount)

	seen := make(map[string]bool)
	for _, source := range result.Sources {
		assert.Equal(t, false, seen[source.URL])
		seen[source.URL] = true
	}
}

func TestSearchWithoutAPIKey(t *testing.T) {
	client := NewNewsAPIClient("")

	_, err := client.Search(context.Background(), "anything")

	assert.NotEqual(t, nil, err)
}

func TestSearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestNewsAPIClient(srv)

	_, err := client.Search(context.Background(), "anything")

	assert.NotEqual(t, nil, err)
}

func TestNewsAPIFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchPayload(1,
			article("https://example.com/markets", "Example News"),
		))
	}))
	defer srv.Close()

	client := newTestNewsAPIClient(srv)

	articles, err := client.Fetch(10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Some headline", a.Headline)
	assert.Equal(t, "Some description", a.Detail)
	assert.Equal(t, "https://example.com/markets", a.URL)
	assert.Equal(t, "Example News", a.Publisher)
	assert.Equal(t, "NewsAPI", a.Source)
	assert.Equal(t, generateExternalID("https://example.com/markets"), a.ExternalID)
	assert.Equal(t, 2026, a.PublishedAt.Year())
}

func TestGenerateExternalID(t *testing.T) {
	url := "https://example.com/article/123"

	id1 := generateExternalID(url)
	id2 := generateExternalID(url)

	assert.Equal(t, id1, id2)
	assert.Equal(t, 16, len(id1))

	other := generateExternalID("https://example.com/article/456")
	assert.NotEqual(t, id1, other)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
