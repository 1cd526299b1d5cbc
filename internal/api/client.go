// Package api is the typed HTTP client for the inventory backend. All
// persistence and business rules live on the other side of it; this
// package only shapes requests, decodes responses and applies the one
// cross-cutting rule the client owns: any 401 invalidates the session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current bearer token, or "" when anonymous.
type TokenSource func() string

// Client issues requests against the backend. OnUnauthorized is invoked
// once per 401 response, before the error is returned to the caller; the
// session store registers itself there so that an authorization denial
// from ANY endpoint clears the persisted token and profile.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    TokenSource
	onUnauthorized func()
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetTokenSource installs the token provider. Requests made while the
// source returns "" are sent unauthenticated.
func (c *Client) SetTokenSource(source TokenSource) {
	c.tokenSource = source
}

// SetUnauthorizedHook installs the global 401 policy.
func (c *Client) SetUnauthorizedHook(hook func()) {
	c.onUnauthorized = hook
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	data, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
	}
	return nil
}

// doRaw performs the request and returns the response body bytes. Blob
// endpoints (documents, excel, RIS) use it directly.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, newAPIError(resp.StatusCode, data)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	return data, nil
}
