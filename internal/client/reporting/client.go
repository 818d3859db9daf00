package reporting

// Package reporting is the HTTP client for the upstream reporting API,
// the service that owns server-side analytics aggregation. The dashboard
// prefers its numbers and degrades to local aggregation when it is
// unavailable.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"docdash/internal/config"
	"docdash/internal/model"
)

// ErrSessionExpired is returned when the upstream rejects the bearer
// token. The stored token is cleared before this is returned.
var ErrSessionExpired = errors.New("reporting session expired")

// StatusError is a non-2xx upstream response other than 401.
type StatusError struct {
	Operation  string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("reporting %s status: %s", e.Operation, e.Status)
	}
	return fmt.Sprintf("reporting %s status: %s: %s", e.Operation, e.Status, strings.TrimSpace(e.Body))
}

// Client talks to the upstream reporting API with bearer-token auth.
// All calls go through the circuit breaker configured in resilience.go.
// No automatic retries: a failed fetch surfaces to the caller, who
// decides whether to degrade.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    breaker

	mu    sync.Mutex
	token string
}

// New validates the base URL and constructs a client. A missing base URL
// is a configuration error, not a panic.
func New(cfg config.ReportingConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("reporting base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid reporting base URL: %w", err)
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    newBreaker(),
		token:      cfg.Token,
	}, nil
}

// UploadTrends fetches the dense daily upload series for a period.
func (c *Client) UploadTrends(ctx context.Context, period string) ([]model.TimeSeriesPoint, error) {
	var out struct {
		Trends []model.TimeSeriesPoint `json:"trends"`
	}
	if err := c.getJSON(ctx, "/api/analytics/upload-trends", period, &out, "upload-trends"); err != nil {
		return nil, err
	}
	return out.Trends, nil
}

// TypeDistribution fetches per-type counts for a period.
func (c *Client) TypeDistribution(ctx context.Context, period string) ([]model.TypeCount, error) {
	var out struct {
		Types []model.TypeCount `json:"types"`
	}
	if err := c.getJSON(ctx, "/api/analytics/type-distribution", period, &out, "type-distribution"); err != nil {
		return nil, err
	}
	return out.Types, nil
}

// Activity fetches the day-of-week and hour-of-day histograms.
func (c *Client) Activity(ctx context.Context, period string) ([]model.ActivityBucket, []model.ActivityBucket, error) {
	var out struct {
		Weekdays []model.ActivityBucket `json:"weekdays"`
		Hours    []model.ActivityBucket `json:"hours"`
	}
	if err := c.getJSON(ctx, "/api/analytics/activity", period, &out, "activity"); err != nil {
		return nil, nil, err
	}
	return out.Weekdays, out.Hours, nil
}

// ModelUsage fetches LLM API consumption for a period.
func (c *Client) ModelUsage(ctx context.Context, period string) ([]model.ModelUsage, error) {
	var out struct {
		Models []model.ModelUsage `json:"models"`
	}
	if err := c.getJSON(ctx, "/api/analytics/model-usage", period, &out, "model-usage"); err != nil {
		return nil, err
	}
	return out.Models, nil
}

// StorageSummary fetches the account storage snapshot.
func (c *Client) StorageSummary(ctx context.Context) (model.StorageSummary, error) {
	var out model.StorageSummary
	if err := c.getJSON(ctx, "/api/profile/storage", "", &out, "storage-summary"); err != nil {
		return model.StorageSummary{}, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path, period string, out any, operation string) error {
	_, err := c.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, c.doGet(ctx, path, period, out, operation)
	})
	return err
}

func (c *Client) doGet(ctx context.Context, path, period string, out any, operation string) error {
	u := c.baseURL + path
	if period != "" {
		u += "?period=" + url.QueryEscape(period)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	if tok := c.currentToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reporting %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearToken()
		return ErrSessionExpired
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) clearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// SetToken installs a fresh bearer token, e.g. after re-authentication.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}
