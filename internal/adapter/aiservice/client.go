// Package aiservice is the client for the analytics microservice. Each call
// carries its own deadline sized to the cost of the inference behind it.
package aiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Per-call deadlines. Training is by far the slowest operation.
const (
	healthTimeout    = 5 * time.Second
	sentimentTimeout = 15 * time.Second
	recommendTimeout = 20 * time.Second
	predictTimeout   = 25 * time.Second
	behaviorTimeout  = 30 * time.Second
	finetuneTimeout  = 60 * time.Second
)

// Client talks to the analytics service.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an analytics client. The shared http.Client carries no
// timeout of its own; every call sets a per-request deadline instead.
func NewClient(baseURL string, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse ai service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("ai service url must be absolute")
	}
	return &Client{
		baseURL:    parsed,
		logger:     logger,
		httpClient: &http.Client{},
	}, nil
}

// Name identifies the client in logs and health reports.
func (c *Client) Name() string { return "aiservice" }

// Health pings the service. Used by the connectivity monitor; a failure here
// never blocks anything else.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	return c.post(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) post(ctx context.Context, method, p string, body, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), payload)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("ai service request failed",
			slog.String("path", p),
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("ai service error: %s", resp.Status)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
