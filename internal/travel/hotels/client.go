package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	errx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/core/error"
)

type Config struct {
	APIKey    string `envconfig:"AMADEUS_API_KEY" required:"true"`
	APISecret string `envconfig:"AMADEUS_API_SECRET" required:"true"`
	BaseURL   string `envconfig:"AMADEUS_BASE_URL" default:"https://test.api.amadeus.com"`
	Timeout   int    `envconfig:"AMADEUS_TIMEOUT" default:"30"`
}

// Client talks to the hotel search service (Amadeus-shaped API): a
// client-credentials token endpoint, a city-to-hotel-ids lookup, and a
// hotel-ids-to-offers search.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a cached access token, fetching a fresh one when the cached
// token is within a minute of expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExpiry) > time.Minute {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("hotels: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("hotels: token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("hotels: token endpoint returned status %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("hotels: decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("hotels: token endpoint returned empty token")
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("hotels: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hotels: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("hotels: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("hotels: %s returned status %d", path, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("hotels: decode %s response: %w", path, err)
	}
	return nil
}

// HotelsByCity resolves a 3-letter city code to the properties listed there.
// Failures carry the search error kind.
func (c *Client) HotelsByCity(ctx context.Context, cityCode string) ([]Hotel, error) {
	q := url.Values{}
	q.Set("cityCode", cityCode)

	var list struct {
		Data []Hotel `json:"data"`
	}
	if err := c.get(ctx, "/v1/reference-data/locations/hotels/by-city", q, &list); err != nil {
		return nil, errx.WrapSearch(err)
	}
	return list.Data, nil
}

// SearchOffers requests bookable offers for the given hotels and stay.
// Failures carry the search error kind.
func (c *Client) SearchOffers(ctx context.Context, req OffersRequest) ([]HotelOffers, error) {
	q := url.Values{}
	q.Set("hotelIds", strings.Join(req.HotelIDs, ","))
	q.Set("checkInDate", req.CheckInDate)
	q.Set("checkOutDate", req.CheckOutDate)
	q.Set("adults", strconv.Itoa(req.Adults))

	var offers struct {
		Data []HotelOffers `json:"data"`
	}
	if err := c.get(ctx, "/v3/shopping/hotel-offers", q, &offers); err != nil {
		return nil, errx.WrapSearch(err)
	}
	return offers.Data, nil
}
