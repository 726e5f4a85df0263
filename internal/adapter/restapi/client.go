// Package restapi is the client for the conventional REST backend. It is the
// fallback for auth and point operations and the only provider for the
// management, quiz, partner, payment, and QR surfaces.
package restapi

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

// TokenSource yields the bearer token attached to every request. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StatusError is returned for any non-2xx backend response. There is no
// finer-grained taxonomy; an expired token surfaces the same way a server
// fault does.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
}

// authTransport injects the current bearer token into outgoing requests.
type authTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokens.Token(); token != "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("Authorization", "Bearer "+token)
		return t.next.RoundTrip(clone)
	}
	return t.next.RoundTrip(req)
}

// Client talks to the custom REST backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client with default timeout. Every call made
// through it carries the token the session store currently holds.
func NewClient(baseURL string, tokens TokenSource, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("backend url must be absolute")
	}
	return &Client{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: &authTransport{tokens: tokens, next: http.DefaultTransport},
		},
	}, nil
}

// Name identifies this link of the fallback chain in logs.
func (c *Client) Name() string { return "restapi" }

// Health checks the backend's public health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/public/health", nil, nil)
}

// do performs one request. A non-nil body is sent as JSON; a non-nil out has
// the response decoded into it.
func (c *Client) do(ctx context.Context, method, p string, body, out any) error {
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
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("backend request failed",
			slog.String("method", method),
			slog.String("path", p),
			slog.Int("status", resp.StatusCode),
		)
		return &StatusError{Status: resp.StatusCode, Body: string(raw)}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
