// Package subtitles provides a client for the OpenSubtitles REST API.
package subtitles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.opensubtitles.com"
const userAgent = "reelcat v1.0"

// Cap on bytes read from a subtitle download.
const maxSubtitleSize = 10 << 20

// ErrNoSubtitles is returned when the provider has no candidate for a query.
var ErrNoSubtitles = errors.New("no subtitles found")

// Client is an OpenSubtitles API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new OpenSubtitles client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			Language string `json:"language"`
			Release  string `json:"release"`
			Files    []struct {
				FileID   int    `json:"file_id"`
				FileName string `json:"file_name"`
			} `json:"files"`
		} `json:"attributes"`
	} `json:"data"`
}

type downloadResponse struct {
	Link     string `json:"link"`
	FileName string `json:"file_name"`
}

// Fetch retrieves the best subtitle for (title, year, lang) and returns its
// raw payload. Returns ErrNoSubtitles when the provider has no candidate.
func (c *Client) Fetch(ctx context.Context, title string, year int, lang string) ([]byte, error) {
	fileID, err := c.search(ctx, title, year, lang)
	if err != nil {
		return nil, err
	}

	link, err := c.downloadLink(ctx, fileID)
	if err != nil {
		return nil, err
	}

	return c.fetchFile(ctx, link)
}

// search returns the file ID of the first candidate for the query.
func (c *Client) search(ctx context.Context, title string, year int, lang string) (int, error) {
	q := url.Values{}
	q.Set("query", title)
	q.Set("languages", lang)
	q.Set("order_by", "votes")
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/subtitles?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("subtitle search error: %s", resp.Status)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	for _, d := range result.Data {
		if len(d.Attributes.Files) > 0 {
			return d.Attributes.Files[0].FileID, nil
		}
	}
	return 0, ErrNoSubtitles
}

// downloadLink exchanges a file ID for a short-lived download URL.
func (c *Client) downloadLink(ctx context.Context, fileID int) (string, error) {
	payload, _ := json.Marshal(map[string]int{"file_id": fileID})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/download", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("subtitle download request error: %s", resp.Status)
	}

	var result downloadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if result.Link == "" {
		return "", errors.New("empty download link")
	}
	return result.Link, nil
}

func (c *Client) fetchFile(ctx context.Context, link string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subtitle file error: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSubtitleSize))
	if err != nil {
		return nil, fmt.Errorf("read subtitle: %w", err)
	}
	return data, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
}
