// Package remote is the HTTP client for the key-value content store.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/repositories"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
)

const maxBodyBytes = 8 << 20

// StatusError is returned when the store answers with a non-2xx status.
type StatusError struct {
	Key    repositories.RecordKey
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("content store returned %d for %q: %s", e.Status, e.Key, e.Body)
}

// Client fetches and publishes content records over HTTP at
// {baseURL}/content/{key}.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logging.ChanneledLogger
}

// NewClient creates a client for the store at baseURL. An empty token sends
// no Authorization header.
func NewClient(baseURL, token string, httpClient *http.Client, logger *logging.ChanneledLogger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, token: token, httpClient: httpClient, logger: logger}
}

func (c *Client) recordURL(key repositories.RecordKey) string {
	return c.baseURL + "/content/" + url.PathEscape(string(key))
}

// Fetch retrieves the raw JSON body of record key.
func (c *Client) Fetch(ctx context.Context, key repositories.RecordKey) (json.RawMessage, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recordURL(key), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %q: %w", key, err)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	body, err := c.do(req, key)
	if err != nil {
		c.logger.Remote().Error("Content fetch failed", "key", key, "error", err, "duration", time.Since(start))
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("content store returned invalid JSON for %q", key)
	}

	c.logger.Remote().Debug("Content fetched", "key", key, "bytes", len(body), "duration", time.Since(start))
	return json.RawMessage(body), nil
}

// Publish replaces record key with body.
func (c *Client) Publish(ctx context.Context, key repositories.RecordKey, body json.RawMessage) error {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.recordURL(key), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %q: %w", key, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	if _, err := c.do(req, key); err != nil {
		c.logger.Remote().Error("Content publish failed", "key", key, "error", err, "duration", time.Since(start))
		return err
	}

	c.logger.Remote().Info("Content published", "key", key, "bytes", len(body), "duration", time.Since(start))
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) do(req *http.Request, key repositories.RecordKey) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach content store for %q: %w", key, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read content store response for %q: %w", key, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(body)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, &StatusError{Key: key, Status: resp.StatusCode, Body: snippet}
	}
	return body, nil
}
