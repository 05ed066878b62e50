package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/selvamraja700/mymusic/internal/library"
)

// ErrNotFound is returned when the service has no track with the given ID.
var ErrNotFound = errors.New("track not found")

// Client talks to the music service's HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Verify Client implements Source at compile time.
var _ Source = (*Client)(nil)

// NewClient creates a catalog client for the given base URL
// (e.g. "http://localhost:5000/api").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// songsEnvelope is the service's paginated list response.
type songsEnvelope struct {
	Data  []library.Track `json:"data"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int             `json:"total"`
}

func (c *Client) Songs(ctx context.Context, params SongsParams) ([]library.Track, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Genre != "" {
		q.Set("genre", params.Genre)
	}
	if params.Artist != "" {
		q.Set("artist", params.Artist)
	}
	sort := params.Sort
	if sort == "" {
		sort = "plays"
	}
	q.Set("sort", sort)
	order := params.Order
	if order == "" {
		order = "desc"
	}
	q.Set("order", order)

	var env songsEnvelope
	if err := c.getJSON(ctx, "/songs?"+q.Encode(), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) Trending(ctx context.Context, limit int) ([]library.Track, error) {
	if limit <= 0 {
		limit = 10
	}
	var env songsEnvelope
	if err := c.getJSON(ctx, "/songs/trending?limit="+strconv.Itoa(limit), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) Song(ctx context.Context, id string) (*library.Track, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var t library.Track
	if err := c.getJSON(ctx, "/songs/"+url.PathEscape(id), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]library.Track, error) {
	var env songsEnvelope
	if err := c.getJSON(ctx, "/search?q="+url.QueryEscape(query), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
