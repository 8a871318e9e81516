package nhl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
	"github.com/preston-bernstein/nhl-standings-service/internal/normalize"
	"github.com/preston-bernstein/nhl-standings-service/internal/providers"
)

// Config controls how the NHL client reaches the upstream API.
type Config struct {
	BaseURL    string
	Date       string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the standings document for one date from the NHL web API
// and normalizes it into a snapshot.
type Client struct {
	baseURL    string
	date       string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an NHL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		date:       resolveDate(cfg.Date),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// StandingsURL returns the endpoint queried by FetchStandings.
func (c *Client) StandingsURL() string {
	return c.baseURL + "/standings/" + c.date
}

// FetchStandings issues a single GET for the configured date. Transport failures,
// non-2xx responses and non-object bodies return a *providers.TransportError;
// malformed rows return the normalizer's coercion error.
func (c *Client) FetchStandings(ctx context.Context) (standings.StandingsSnapshot, error) {
	url := c.StandingsURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return standings.StandingsSnapshot{}, c.transportError(url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return standings.StandingsSnapshot{}, c.transportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return standings.StandingsSnapshot{}, &providers.TransportError{
			Provider:   ProviderName,
			URL:        url,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	payload, err := normalize.DecodePayload(resp.Body)
	if err != nil {
		return standings.StandingsSnapshot{}, c.transportError(url, fmt.Errorf("decode response: %w", err))
	}

	snap, err := normalize.BuildSnapshot(payload)
	if err != nil {
		return standings.StandingsSnapshot{}, fmt.Errorf("%s: normalize standings: %w", ProviderName, err)
	}
	return snap, nil
}

func (c *Client) transportError(url string, err error) error {
	return &providers.TransportError{Provider: ProviderName, URL: url, Err: err}
}
