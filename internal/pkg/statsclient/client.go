// Package statsclient fetches the dashboard stats payload over HTTP and runs
// the aggregation layer on it. Fetching is the only asynchronous boundary:
// when it fails the aggregator is never invoked, and nothing is retried here.
package statsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"carservice/internal/analytics"
	"carservice/internal/domain"
)

// FetchError reports a transport or status failure while retrieving the
// payload. Distinct from a ValidationError: the payload never arrived.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchStats retrieves the raw payload from GET /dashboard-stats.
func (c *Client) FetchStats(ctx context.Context) (*domain.DashboardStats, error) {
	url := c.baseURL + "/dashboard-stats"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	var payload domain.DashboardStats
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return &payload, nil
}

// FetchReport fetches the payload and aggregates it for rendering. Validation
// failures surface as-is so a caller can tell "failed to load" from a
// malformed payload.
func (c *Client) FetchReport(ctx context.Context, ref time.Time) (*analytics.Report, error) {
	payload, err := c.FetchStats(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Aggregate(ref, payload)
}
