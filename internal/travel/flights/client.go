package flights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/core/error"
)

type Config struct {
	BaseURL string `envconfig:"FLIGHTS_BASE_URL" required:"true"`
	Timeout int    `envconfig:"FLIGHTS_TIMEOUT" default:"30"`
}

// Client talks to the flight search service. The wire contract is opaque and
// versioned upstream; this client only shapes requests and decodes result
// sets.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchOneWay issues one one-way flight search. Failures carry the search
// error kind.
func (c *Client) SearchOneWay(ctx context.Context, q Query) (*Result, error) {
	result, err := c.searchOneWay(ctx, q)
	if err != nil {
		return nil, errx.WrapSearch(err)
	}
	return result, nil
}

func (c *Client) searchOneWay(ctx context.Context, q Query) (*Result, error) {
	q.Trip = "one-way"
	if q.FetchMode == "" {
		q.FetchMode = "fallback"
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("flights: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("flights: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flights: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("flights: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flights: search returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("flights: decode response: %w", err)
	}
	return &result, nil
}
