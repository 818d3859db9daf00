package llm

// Package llm is the HTTP client for the model API that performs the
// actual summarization. All heavy computation happens upstream; this
// client only ships text and decodes the result.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"docdash/internal/config"
)

// ErrUnauthorized is returned when the model API rejects the request.
var ErrUnauthorized = errors.New("llm API unauthorized")

// Result is a completed summarization.
type Result struct {
	Summary string `json:"summary"`
	Model   string `json:"model"`
	Tokens  int64  `json:"tokens"`
}

// Client talks to the summary-generation API.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// New validates configuration and constructs a client.
func New(cfg config.LLMConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("llm base URL is required")
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Summarize sends text upstream and returns the generated summary.
// No retries: summarization is expensive and the caller surfaces errors.
func (c *Client) Summarize(ctx context.Context, text string, maxWords int) (Result, error) {
	payload := map[string]any{
		"model":     c.model,
		"text":      text,
		"max_words": maxWords,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("marshal summarize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/summarize/", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("create summarize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("llm summarize request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return Result{}, ErrUnauthorized
	}
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if s := strings.TrimSpace(string(msg)); s != "" {
			return Result{}, fmt.Errorf("llm summarize status: %s: %s", resp.Status, s)
		}
		return Result{}, fmt.Errorf("llm summarize status: %s", resp.Status)
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("decode summarize response: %w", err)
	}
	return out, nil
}
