package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// FetchError reports a non-2xx response from the query API.
type FetchError struct {
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("sanity fetch failed: %d", e.Status)
}

type queryResponse struct {
	Result []Post `json:"result"`
}

// Client runs GROQ queries against the Sanity HTTP API. A Client makes a
// single attempt per query and keeps nothing between calls.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for cfg. Empty fields of cfg take the
// production defaults.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	cfg = cfg.WithDefaults()
	c := &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Fetch performs a GET on queryURL and returns the result array. A missing
// or null result is an empty slice, not an error.
func (c *Client) Fetch(ctx context.Context, queryURL string) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sanity request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Status: resp.StatusCode}
	}

	var body queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode sanity response: %w", err)
	}
	if body.Result == nil {
		return []Post{}, nil
	}
	return body.Result, nil
}

// LatestPosts returns up to limit of the newest posts.
func (c *Client) LatestPosts(ctx context.Context, limit int) ([]Post, error) {
	return c.Fetch(ctx, c.cfg.QueryURL(LatestPostsQuery(limit)))
}

// RoomPosts returns up to limit of the newest posts for room.
func (c *Client) RoomPosts(ctx context.Context, room string, limit int) ([]Post, error) {
	return c.Fetch(ctx, c.cfg.QueryURL(RoomPostsQuery(room, limit)))
}
