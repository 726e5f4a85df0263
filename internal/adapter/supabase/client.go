// Package supabase talks to the managed auth/data provider over its plain
// HTTP surface: GoTrue for identity, PostgREST for the profile and point
// ledger rows.
package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"context"
)

// APIError carries a non-2xx reply from the provider.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.Status)
}

// Client implements the managed provider over HTTP.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a provider client with the default timeout.
func NewClient(baseURL, apiKey string, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse supabase url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("supabase url must be absolute")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("supabase api key must be provided")
	}
	return &Client{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Name identifies this link of the fallback chain in logs.
func (c *Client) Name() string { return "supabase" }

// Health checks the auth service health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/health", nil, nil, "")
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return APIError{Status: resp.StatusCode, Message: "health check failed"}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, p string, query url.Values, body any, bearer string) (*http.Request, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("apikey", c.apiKey)
	if bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	return req, nil
}

// do executes the request and decodes a 2xx JSON reply into out.
func (c *Client) do(req *http.Request, out any) error {
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
		return APIError{Status: resp.StatusCode, Message: errorMessage(raw, resp.Status)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage digs the human-readable message out of a provider error
// payload; GoTrue and PostgREST use different field names.
func errorMessage(raw []byte, fallback string) string {
	var payload struct {
		Msg         string `json:"msg"`
		Message     string `json:"message"`
		Description string `json:"error_description"`
		Err         string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		for _, candidate := range []string{payload.Msg, payload.Message, payload.Description, payload.Err} {
			if candidate != "" {
				return candidate
			}
		}
	}
	return fallback
}
