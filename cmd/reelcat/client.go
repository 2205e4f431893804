package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP calls to the reelcat server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new reelcat API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Movies  int    `json:"movies"`
}

type MovieResponse struct {
	Filename  string            `json:"filename"`
	Title     string            `json:"title"`
	Year      *int              `json:"year,omitempty"`
	Poster    *string           `json:"poster,omitempty"`
	Subtitles map[string]string `json:"subtitles,omitempty"`
	Duration  *float64          `json:"duration,omitempty"`
	Width     *int              `json:"width,omitempty"`
	Height    *int              `json:"height,omitempty"`
	Codec     *string           `json:"codec,omitempty"`
}

type RefreshAck struct {
	Status string `json:"status"`
}

type RefreshRecord struct {
	ID         int64  `json:"id"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
	EntryCount int    `json:"entry_count"`
	Error      string `json:"error,omitempty"`
}

// Status fetches server health and catalog size.
func (c *Client) Status() (*StatusResponse, error) {
	var status StatusResponse
	if err := c.get("/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Movies fetches the current catalog.
func (c *Client) Movies() ([]MovieResponse, error) {
	var movies []MovieResponse
	if err := c.get("/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// TriggerRefresh enqueues a background library refresh.
func (c *Client) TriggerRefresh() (*RefreshAck, error) {
	var ack RefreshAck
	if err := c.post("/refresh", nil, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// RefreshHistory fetches recent refresh runs, newest first.
func (c *Client) RefreshHistory(limit int) ([]RefreshRecord, error) {
	var records []RefreshRecord
	path := "/refresh/history"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	if err := c.get(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}
