package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"
const defaultCacheTTL = 24 * time.Hour

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	language   string
	baseURL    string
	httpClient *http.Client
	cache      *cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithLanguage sets the result language (default "en").
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithCacheTTL sets the search cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		language: "en",
		baseURL:  defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchMovies queries TMDB for movies matching the given title.
// Results come back in TMDB's own relevance order; an empty slice means
// no candidates, which is not an error.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]SearchResult, error) {
	// Check cache first
	if results, ok := c.cache.get(query); ok {
		return results, nil
	}

	// Build request
	reqURL := fmt.Sprintf("%s/3/search/movie?api_key=%s&language=%s&query=%s",
		c.baseURL, c.apiKey, url.QueryEscape(c.language), url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// Execute
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	// Decode
	var envelope searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// Cache and return
	c.cache.set(query, envelope.Results)
	return envelope.Results, nil
}
